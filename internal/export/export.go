// Package export assembles the generated files from the shared store and
// writes them to the output directory.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pipewright/pipewright/internal/store"
	"github.com/pipewright/pipewright/internal/templates"
)

// File describes one exportable file: a display name, the destination path it
// is written to, an informational size label, and the content itself.
type File struct {
	Name      string
	Path      string
	SizeLabel string
	Content   string
}

// Files assembles the fixed ordered list of generated files. For each domain
// the applied buffer is used verbatim when present; otherwise the file is
// synthesized from the built-in sample with whatever store values exist.
func Files(st *store.Store) ([]File, error) {
	repo := templates.RepoFromSettings(st.GetConfig(templates.StepRepository).Settings)
	pipe := templates.PipelineFromSettings(st.GetConfig(templates.StepPipeline).Settings)
	build := templates.BuildFromSettings(st.GetConfig(templates.StepBuild).Settings)
	manifests := templates.ManifestsFromSettings(st.GetConfig(templates.StepManifests).Settings)
	deploy := templates.DeployFromSettings(st.GetConfig(templates.StepDeploy).Settings)
	monitor := templates.MonitorFromSettings(st.GetConfig(templates.StepMonitoring).Settings)

	pipeline, err := content(st, templates.StepPipeline, "pipeline", func() (string, error) {
		return templates.RenderPipeline(pipe, repo)
	})
	if err != nil {
		return nil, err
	}

	dockerfile, err := content(st, templates.StepBuild, "dockerfile", func() (string, error) {
		return templates.RenderDockerfile(build)
	})
	if err != nil {
		return nil, err
	}

	deployment, err := content(st, templates.StepManifests, "deployment", func() (string, error) {
		return templates.RenderDeployment(manifests)
	})
	if err != nil {
		return nil, err
	}

	service, err := content(st, templates.StepManifests, "service", func() (string, error) {
		return templates.RenderService(manifests)
	})
	if err != nil {
		return nil, err
	}

	ingress, err := content(st, templates.StepManifests, "ingress", func() (string, error) {
		return templates.RenderIngress(manifests)
	})
	if err != nil {
		return nil, err
	}

	prometheus, err := content(st, templates.StepMonitoring, "prometheus", func() (string, error) {
		return templates.RenderMonitoring(monitor)
	})
	if err != nil {
		return nil, err
	}

	envSample, err := content(st, templates.StepDeploy, "env", func() (string, error) {
		return templates.RenderEnvSample(deploy, build, manifests, monitor)
	})
	if err != nil {
		return nil, err
	}

	readme, err := content(st, templates.StepDeploy, "readme", func() (string, error) {
		return templates.RenderReadme(templates.ReadmeData{
			Title:       deploy.DocTitle,
			Description: deploy.Description,
			Repo:        repo,
			Deploy:      deploy,
			Manifests:   manifests,
		})
	})
	if err != nil {
		return nil, err
	}

	// Size labels are declared, not measured.
	return []File{
		{Name: "CI pipeline", Path: ".gitlab-ci.yml", SizeLabel: "1 KB", Content: pipeline},
		{Name: "Container build", Path: "Dockerfile", SizeLabel: "1 KB", Content: dockerfile},
		{Name: "Deployment manifest", Path: "k8s/deployment.yaml", SizeLabel: "1 KB", Content: deployment},
		{Name: "Service manifest", Path: "k8s/service.yaml", SizeLabel: "1 KB", Content: service},
		{Name: "Ingress manifest", Path: "k8s/ingress.yaml", SizeLabel: "1 KB", Content: ingress},
		{Name: "Monitoring config", Path: "prometheus.yml", SizeLabel: "1 KB", Content: prometheus},
		{Name: "Environment sample", Path: ".env.example", SizeLabel: "1 KB", Content: envSample},
		{Name: "Documentation", Path: "README.md", SizeLabel: "2 KB", Content: readme},
	}, nil
}

func content(st *store.Store, stepID, buffer string, fallback func() (string, error)) (string, error) {
	if text, ok := st.Buffer(stepID, buffer); ok {
		return text, nil
	}
	return fallback()
}

// Exporter writes generated files into an output directory.
type Exporter struct {
	outDir string
	delay  time.Duration
	logger *zap.Logger
}

// Option configures the exporter.
type Option func(*Exporter)

// WithDelay sets the pause between files during a batch export. The stagger is
// cosmetic; it does not affect ordering or correctness.
func WithDelay(d time.Duration) Option {
	return func(e *Exporter) {
		e.delay = d
	}
}

// WithLogger sets the logger (default: no-op).
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// New creates an exporter targeting the given directory.
func New(outDir string, opts ...Option) *Exporter {
	e := &Exporter{
		outDir: outDir,
		delay:  300 * time.Millisecond,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OutDir returns the output directory.
func (e *Exporter) OutDir() string {
	return e.outDir
}

// Delay returns the pause used between files during a batch export.
func (e *Exporter) Delay() time.Duration {
	return e.delay
}

// ExportFile writes a single file immediately.
func (e *Exporter) ExportFile(f File) error {
	dest := filepath.Join(e.outDir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("export %s: %w", f.Path, err)
	}
	if err := os.WriteFile(dest, []byte(f.Content), 0o644); err != nil {
		return fmt.Errorf("export %s: %w", f.Path, err)
	}
	e.logger.Info("exported file",
		zap.String("name", f.Name),
		zap.String("path", dest),
	)
	return nil
}

// ExportAll writes every file in order, pausing between files. The first write
// error stops the batch.
func (e *Exporter) ExportAll(ctx context.Context, files []File) error {
	batchID := uuid.NewString()
	e.logger.Info("export batch started",
		zap.String("batch_id", batchID),
		zap.Int("files", len(files)),
	)

	for i, f := range files {
		if i > 0 && e.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(e.delay):
			}
		}
		if err := e.ExportFile(f); err != nil {
			return err
		}
	}

	e.logger.Info("export batch finished", zap.String("batch_id", batchID))
	return nil
}
