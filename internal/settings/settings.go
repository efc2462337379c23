// Package settings persists display and export preferences. Preferences are a
// flat key-value JSON blob stored under two fixed top-level keys, independent
// of the wizard's shared configuration store.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Fixed top-level keys in the preferences blob.
const (
	KeyUI     = "pipewright.ui"
	KeyExport = "pipewright.export"
)

// Preferences holds the two preference groups. Values are free-form strings.
type Preferences struct {
	UI     map[string]string
	Export map[string]string
}

// Default returns the built-in preferences.
func Default() Preferences {
	return Preferences{
		UI: map[string]string{
			"theme": "dark",
		},
		Export: map[string]string{
			"output_dir":      "dist",
			"export_delay_ms": "300",
		},
	}
}

// DefaultPath returns the preferences file location under the user config dir.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, "pipewright", "preferences.json"), nil
}

// Load reads preferences from path. A missing file yields the defaults. Keys
// present in the file override defaults; unknown keys are kept as-is.
func Load(path string) (Preferences, error) {
	prefs := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("load preferences: %w", err)
	}

	var blob map[string]map[string]string
	if err := json.Unmarshal(data, &blob); err != nil {
		return prefs, fmt.Errorf("load preferences: %w", err)
	}

	for k, v := range blob[KeyUI] {
		prefs.UI[k] = v
	}
	for k, v := range blob[KeyExport] {
		prefs.Export[k] = v
	}
	return prefs, nil
}

// Save writes the preferences blob to path, creating parent directories.
func (p Preferences) Save(path string) error {
	blob := map[string]map[string]string{
		KeyUI:     p.UI,
		KeyExport: p.Export,
	}

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
