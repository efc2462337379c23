package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_NeverSet(t *testing.T) {
	t.Parallel()

	s := New()
	cfg := s.GetConfig("pipeline")

	require.NotNil(t, cfg.Settings)
	require.NotNil(t, cfg.Buffers)
	assert.Empty(t, cfg.Settings)
	assert.Empty(t, cfg.Buffers)
	assert.True(t, cfg.IsEmpty())
	assert.False(t, s.Has("pipeline"))
}

func TestSetConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	s := New()
	cfg := Empty()
	cfg.Settings["image"] = "golang:1.24"
	cfg.Buffers["pipeline"] = "stages:\n  - build\n"

	s.SetConfig("pipeline", cfg)

	got := s.GetConfig("pipeline")
	assert.Equal(t, cfg.Settings, got.Settings)
	assert.Equal(t, cfg.Buffers, got.Buffers)
	assert.True(t, s.Has("pipeline"))
}

func TestSetConfig_LastWriteWins(t *testing.T) {
	t.Parallel()

	s := New()
	first := Empty()
	first.Settings["image"] = "golang:1.23"
	first.Settings["stage"] = "build"
	s.SetConfig("pipeline", first)

	second := Empty()
	second.Settings["image"] = "golang:1.24"
	s.SetConfig("pipeline", second)

	got := s.GetConfig("pipeline")
	assert.Equal(t, "golang:1.24", got.Settings["image"])
	// Whole-object replacement, not a merge.
	_, ok := got.Settings["stage"]
	assert.False(t, ok)
}

func TestSetConfig_StoresACopy(t *testing.T) {
	t.Parallel()

	s := New()
	cfg := Empty()
	cfg.Settings["namespace"] = "production"
	s.SetConfig("manifests", cfg)

	cfg.Settings["namespace"] = "mutated"
	assert.Equal(t, "production", s.GetConfig("manifests").Settings["namespace"])

	// Mutating the returned copy must not leak back either.
	got := s.GetConfig("manifests")
	got.Settings["namespace"] = "mutated-again"
	assert.Equal(t, "production", s.GetConfig("manifests").Settings["namespace"])
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	t.Parallel()

	s := New()
	var seen []string
	s.Subscribe(func(stepID string) {
		seen = append(seen, stepID)
	})

	s.SetConfig("repository", Empty())
	s.SetConfig("pipeline", Empty())
	s.SetConfig("repository", Empty())

	// Observers fire on every mutation, not only on keys they care about.
	assert.Equal(t, []string{"repository", "pipeline", "repository"}, seen)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	t.Parallel()

	s := New()
	count := 0
	cancel := s.Subscribe(func(string) { count++ })

	s.SetConfig("build", Empty())
	cancel()
	s.SetConfig("build", Empty())

	assert.Equal(t, 1, count)
}

func TestSubscribe_UnsubscribeRemovesEntry(t *testing.T) {
	t.Parallel()

	s := New()
	kept := 0
	keep := s.Subscribe(func(string) { kept++ })
	for i := 0; i < 10; i++ {
		s.Subscribe(func(string) {})()
	}

	// Removed observers do not linger; only the live one remains registered.
	assert.Len(t, s.observers, 1)

	s.SetConfig("deploy", Empty())
	assert.Equal(t, 1, kept)

	keep()
	assert.Empty(t, s.observers)
}

func TestSetting_Fallbacks(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Equal(t, "v2.34.0", s.Setting("monitoring", "version", "v2.34.0"))

	cfg := Empty()
	cfg.Settings["version"] = "v2.36.0"
	cfg.Settings["interval"] = ""
	s.SetConfig("monitoring", cfg)

	assert.Equal(t, "v2.36.0", s.Setting("monitoring", "version", "v2.34.0"))
	assert.Equal(t, "15s", s.Setting("monitoring", "interval", "15s"))
	assert.Equal(t, "9090", s.Setting("monitoring", "port", "9090"))
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	s := New()
	_, ok := s.Buffer("build", "dockerfile")
	assert.False(t, ok)

	cfg := Empty()
	cfg.Buffers["dockerfile"] = "FROM golang:1.24\n"
	s.SetConfig("build", cfg)

	text, ok := s.Buffer("build", "dockerfile")
	require.True(t, ok)
	assert.Equal(t, "FROM golang:1.24\n", text)
}
