package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipewright/pipewright/internal/export"
	"github.com/pipewright/pipewright/internal/settings"
	"github.com/pipewright/pipewright/internal/store"
)

// Options carries the collaborators the wizard needs. Store and Exporter are
// required; Preferences falls back to the defaults when nil.
type Options struct {
	Store       *store.Store
	Exporter    *export.Exporter
	Preferences *settings.Preferences
	PrefsPath   string
}

// Run starts the interactive wizard and blocks until the user quits.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("run wizard: store is required")
	}
	if opts.Exporter == nil {
		return fmt.Errorf("run wizard: exporter is required")
	}
	if opts.Preferences == nil {
		prefs := settings.Default()
		opts.Preferences = &prefs
	}

	model := newWizardModel(opts.Store, opts.Exporter, opts.Preferences, opts.PrefsPath)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}
	return nil
}
