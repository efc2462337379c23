package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipewright/pipewright/internal/config"
	"github.com/pipewright/pipewright/internal/export"
	"github.com/pipewright/pipewright/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the sample files without the wizard",
	Long: `Export writes every generated file straight from the built-in samples
and project defaults, skipping the interactive wizard. Useful for
scaffolding a fresh repository in scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject()
		if err != nil {
			return err
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		files, err := export.Files(store.New())
		if err != nil {
			return &config.UserError{
				Code:       config.ErrCodeExportFailed,
				Message:    "could not assemble export files",
				Suggestion: "re-run with --verbose for details",
				Underlying: err,
			}
		}

		exporter := newExporter(project, logger)
		if err := exporter.ExportAll(cmd.Context(), files); err != nil {
			return &config.UserError{
				Code:       config.ErrCodeExportFailed,
				Message:    "export did not finish",
				Context:    project.OutputDir,
				Suggestion: "check that the output directory is writable",
				Underlying: err,
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", len(files), project.OutputDir)
		return nil
	},
}
