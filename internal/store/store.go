// Package store holds the shared per-step configuration applied by wizard steps.
package store

// Config is the applied state of a single wizard step: named settings plus the
// derived text buffers as they stood at apply time. Shapes are not validated;
// steps store whatever they like.
type Config struct {
	Settings map[string]string
	Buffers  map[string]string
}

// Empty returns a Config with initialized, empty maps.
func Empty() Config {
	return Config{
		Settings: map[string]string{},
		Buffers:  map[string]string{},
	}
}

// Clone returns a deep copy of the config.
func (c Config) Clone() Config {
	out := Empty()
	for k, v := range c.Settings {
		out.Settings[k] = v
	}
	for k, v := range c.Buffers {
		out.Buffers[k] = v
	}
	return out
}

// IsEmpty reports whether the config holds no settings and no buffers.
func (c Config) IsEmpty() bool {
	return len(c.Settings) == 0 && len(c.Buffers) == 0
}

// Store maps step identifiers to their last-applied configuration. It is an
// explicit object constructed once per session and passed to whoever needs it;
// there is no package-level instance. Mutations happen only from the UI event
// loop, so no locking is required.
type Store struct {
	configs      map[string]Config
	observers    map[int]func(stepID string)
	nextObserver int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		configs:   map[string]Config{},
		observers: map[int]func(stepID string){},
	}
}

// SetConfig replaces the configuration for a step in its entirety. There is no
// merge with a previously applied config. All observers are notified, not just
// those interested in this step.
func (s *Store) SetConfig(stepID string, cfg Config) {
	s.configs[stepID] = cfg.Clone()
	for _, fn := range s.observers {
		fn(stepID)
	}
}

// GetConfig returns the configuration applied for a step, or an empty config
// if the step was never applied. It never returns nil maps.
func (s *Store) GetConfig(stepID string) Config {
	cfg, ok := s.configs[stepID]
	if !ok {
		return Empty()
	}
	return cfg.Clone()
}

// Has reports whether a step has an applied configuration.
func (s *Store) Has(stepID string) bool {
	_, ok := s.configs[stepID]
	return ok
}

// Subscribe registers an observer invoked on every store mutation. The
// returned function removes the observer.
func (s *Store) Subscribe(fn func(stepID string)) func() {
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn
	return func() {
		delete(s.observers, id)
	}
}

// Setting returns the value of one applied setting for a step, or the given
// fallback when the step or the key is absent.
func (s *Store) Setting(stepID, key, fallback string) string {
	cfg, ok := s.configs[stepID]
	if !ok {
		return fallback
	}
	v, ok := cfg.Settings[key]
	if !ok || v == "" {
		return fallback
	}
	return v
}

// Buffer returns one applied buffer for a step and whether it was present.
func (s *Store) Buffer(stepID, name string) (string, bool) {
	cfg, ok := s.configs[stepID]
	if !ok {
		return "", false
	}
	v, ok := cfg.Buffers[name]
	return v, ok
}
