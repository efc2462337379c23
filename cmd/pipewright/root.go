package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pipewright/pipewright/internal/config"
	"github.com/pipewright/pipewright/internal/export"
)

var (
	// Global flags
	projectFile string
	outputDir   string
	delayMS     int
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "pipewright",
	Short: "A step-by-step deployment file assembler",
	Long: `Pipewright walks through the pieces of a service deployment and assembles
the files that describe it: a CI pipeline script, a container build script,
cluster manifests, monitoring configuration, and documentation.

Each step offers a working sample derived from your answers; adjust the
fields, edit the text directly, or keep the sample as-is, then export
everything in one pass.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectFile, "project", config.DefaultFileName, "project file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory (default from project file)")
	rootCmd.PersistentFlags().IntVar(&delayMS, "delay", -1, "pause between exported files in milliseconds")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadProject reads the project file and applies flag overrides.
func loadProject() (config.Project, error) {
	project, err := config.Load(projectFile)
	if err != nil {
		return project, err
	}
	if outputDir != "" {
		project.OutputDir = outputDir
	}
	if delayMS >= 0 {
		project.ExportDelayMS = delayMS
	}
	return project, nil
}

// newExporter builds an exporter from the resolved project settings.
func newExporter(project config.Project, logger *zap.Logger) *export.Exporter {
	return export.New(project.OutputDir,
		export.WithDelay(time.Duration(project.ExportDelayMS)*time.Millisecond),
		export.WithLogger(logger),
	)
}

// newLogger returns a logger for non-interactive commands. The wizard keeps
// the terminal to itself and logs nowhere.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}
