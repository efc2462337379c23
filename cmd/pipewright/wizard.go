package main

import (
	"strconv"

	"github.com/pipewright/pipewright/internal/config"
	"github.com/pipewright/pipewright/internal/settings"
	"github.com/pipewright/pipewright/internal/store"
	"github.com/pipewright/pipewright/internal/tui"
)

// runWizard starts the interactive wizard with project and preference
// defaults resolved.
func runWizard() error {
	project, err := loadProject()
	if err != nil {
		return err
	}

	prefsPath, err := settings.DefaultPath()
	if err != nil {
		return err
	}
	prefs, err := settings.Load(prefsPath)
	if err != nil {
		// A corrupt preferences file falls back to defaults; the wizard
		// still runs and a later save repairs it.
		prefs = settings.Default()
	}

	applyPreferences(&project, prefs)

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return tui.Run(tui.Options{
		Store:       store.New(),
		Exporter:    newExporter(project, logger),
		Preferences: &prefs,
		PrefsPath:   prefsPath,
	})
}

// applyPreferences fills export settings from saved preferences wherever the
// project file and flags left the built-in defaults in place.
func applyPreferences(project *config.Project, prefs settings.Preferences) {
	defaults := config.DefaultProject()

	if project.OutputDir == defaults.OutputDir {
		if dir := prefs.Export["output_dir"]; dir != "" {
			project.OutputDir = dir
		}
	}
	if project.ExportDelayMS == defaults.ExportDelayMS {
		if ms, err := strconv.Atoi(prefs.Export["export_delay_ms"]); err == nil && ms >= 0 {
			project.ExportDelayMS = ms
		}
	}
}
