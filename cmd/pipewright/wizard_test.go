package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipewright/pipewright/internal/config"
	"github.com/pipewright/pipewright/internal/settings"
)

func TestApplyPreferences_FillsDefaults(t *testing.T) {
	t.Parallel()

	project := config.DefaultProject()
	prefs := settings.Default()
	prefs.Export["output_dir"] = "artifacts"
	prefs.Export["export_delay_ms"] = "50"

	applyPreferences(&project, prefs)

	assert.Equal(t, "artifacts", project.OutputDir)
	assert.Equal(t, 50, project.ExportDelayMS)
}

func TestApplyPreferences_ProjectValuesWin(t *testing.T) {
	t.Parallel()

	project := config.Project{OutputDir: "out", ExportDelayMS: 100}
	prefs := settings.Default()
	prefs.Export["output_dir"] = "artifacts"
	prefs.Export["export_delay_ms"] = "50"

	applyPreferences(&project, prefs)

	assert.Equal(t, "out", project.OutputDir)
	assert.Equal(t, 100, project.ExportDelayMS)
}

func TestApplyPreferences_IgnoresInvalidDelay(t *testing.T) {
	t.Parallel()

	project := config.DefaultProject()
	prefs := settings.Default()
	prefs.Export["export_delay_ms"] = "not-a-number"

	applyPreferences(&project, prefs)

	assert.Equal(t, config.DefaultProject().ExportDelayMS, project.ExportDelayMS)
}
