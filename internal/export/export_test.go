package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipewright/pipewright/internal/store"
	"github.com/pipewright/pipewright/internal/templates"
)

func TestFiles_FixedOrder(t *testing.T) {
	t.Parallel()

	files, err := Files(store.New())
	require.NoError(t, err)
	require.Len(t, files, 8)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		".gitlab-ci.yml",
		"Dockerfile",
		"k8s/deployment.yaml",
		"k8s/service.yaml",
		"k8s/ingress.yaml",
		"prometheus.yml",
		".env.example",
		"README.md",
	}, paths)
}

func TestFiles_UsesAppliedBufferVerbatim(t *testing.T) {
	t.Parallel()

	st := store.New()
	cfg := store.Empty()
	cfg.Buffers["dockerfile"] = "FROM scratch\n# hand edited\n"
	st.SetConfig(templates.StepBuild, cfg)

	files, err := Files(st)
	require.NoError(t, err)

	assert.Equal(t, "FROM scratch\n# hand edited\n", files[1].Content)
}

func TestFiles_UnvisitedDomainFallsBackToSample(t *testing.T) {
	t.Parallel()

	files, err := Files(store.New())
	require.NoError(t, err)

	// No domain applied: every file is the built-in sample.
	assert.Contains(t, files[0].Content, "golang:1.24")
	assert.Contains(t, files[5].Content, "v2.34.0")
	assert.Contains(t, files[7].Content, "# Sample-App")
}

func TestFiles_ReadmeTitleDerivedFromProject(t *testing.T) {
	t.Parallel()

	st := store.New()
	cfg := store.Empty()
	cfg.Settings["project"] = "orders-api"
	st.SetConfig(templates.StepRepository, cfg)

	files, err := Files(st)
	require.NoError(t, err)

	// No doc title applied: the heading is title-cased from the project name.
	assert.True(t, strings.HasPrefix(files[7].Content, "# Orders-Api"))

	deploy := store.Empty()
	deploy.Settings["doc_title"] = "Orders"
	st.SetConfig(templates.StepDeploy, deploy)

	files, err = Files(st)
	require.NoError(t, err)

	// An explicit doc title wins over the derivation.
	assert.True(t, strings.HasPrefix(files[7].Content, "# Orders\n"))
}

func TestFiles_SampleInterpolatesStoreValues(t *testing.T) {
	t.Parallel()

	st := store.New()
	cfg := store.Empty()
	cfg.Settings["version"] = "v2.36.0"
	// Settings applied without a buffer: the sample is regenerated from them.
	st.SetConfig(templates.StepMonitoring, cfg)

	files, err := Files(st)
	require.NoError(t, err)

	assert.Contains(t, files[5].Content, "v2.36.0")
	assert.NotContains(t, files[5].Content, "v2.34.0")
	// Keys absent from the store keep their placeholder defaults.
	assert.Contains(t, files[5].Content, "scrape_interval: 15s")
}

func TestFiles_CrossDomainInterpolation(t *testing.T) {
	t.Parallel()

	st := store.New()
	cfg := store.Empty()
	cfg.Settings["namespace"] = "staging"
	st.SetConfig(templates.StepManifests, cfg)

	files, err := Files(st)
	require.NoError(t, err)

	// The env sample and docs pick up manifest settings.
	assert.Contains(t, files[6].Content, "staging")
	assert.Contains(t, files[7].Content, "`staging`")
}

func TestExportFile_ByteForByte(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := New(dir, WithDelay(0))

	f := File{Name: "Monitoring config", Path: "prometheus.yml", Content: "scrape: yes\n"}
	require.NoError(t, e.ExportFile(f))

	data, err := os.ReadFile(filepath.Join(dir, "prometheus.yml"))
	require.NoError(t, err)
	assert.Equal(t, f.Content, string(data))
}

func TestExportFile_CreatesSubdirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := New(dir, WithDelay(0))

	f := File{Name: "Deployment manifest", Path: "k8s/deployment.yaml", Content: "kind: Deployment\n"}
	require.NoError(t, e.ExportFile(f))

	_, err := os.Stat(filepath.Join(dir, "k8s", "deployment.yaml"))
	assert.NoError(t, err)
}

func TestExportAll_WritesEverythingInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := New(dir, WithDelay(0))

	files, err := Files(store.New())
	require.NoError(t, err)
	require.NoError(t, e.ExportAll(context.Background(), files))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(f.Path)))
		require.NoError(t, err, f.Path)
		assert.Equal(t, f.Content, string(data), f.Path)
	}
}

func TestExportAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := New(dir) // default stagger

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files, err := Files(store.New())
	require.NoError(t, err)

	err = e.ExportAll(ctx, files)
	assert.ErrorIs(t, err, context.Canceled)
}
