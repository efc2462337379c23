// Package config loads the optional pipewright.toml project file that supplies
// defaults for the wizard and the export command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the project file looked up in the working directory.
const DefaultFileName = "pipewright.toml"

// Project holds project-level defaults. Flags override these values.
type Project struct {
	Name          string `toml:"name"`
	OutputDir     string `toml:"output_dir"`
	ExportDelayMS int    `toml:"export_delay_ms"`
}

// DefaultProject returns the built-in project defaults.
func DefaultProject() Project {
	return Project{
		OutputDir:     "dist",
		ExportDelayMS: 300,
	}
}

// Load reads the project file at path. A missing file yields the defaults
// without an error; a malformed file is reported with a suggestion.
func Load(path string) (Project, error) {
	project := DefaultProject()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return project, nil
	}
	if err != nil {
		return project, fmt.Errorf("load project file: %w", err)
	}

	if err := toml.Unmarshal(data, &project); err != nil {
		return project, &UserError{
			Code:       ErrCodeProjectParse,
			Message:    "project file could not be parsed",
			Context:    path,
			Suggestion: "check " + DefaultFileName + " for TOML syntax errors",
			Underlying: err,
		}
	}

	if project.OutputDir == "" {
		project.OutputDir = DefaultProject().OutputDir
	}
	if project.ExportDelayMS < 0 {
		project.ExportDelayMS = 0
	}
	return project, nil
}
