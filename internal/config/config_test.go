package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	project, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)

	assert.Equal(t, "dist", project.OutputDir)
	assert.Equal(t, 300, project.ExportDelayMS)
}

func TestLoad_ProjectFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := "name = \"payments\"\noutput_dir = \"out\"\nexport_delay_ms = 100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	project, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "payments", project.Name)
	assert.Equal(t, "out", project.OutputDir)
	assert.Equal(t, 100, project.ExportDelayMS)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("name = \"payments\"\n"), 0o644))

	project, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "payments", project.Name)
	assert.Equal(t, "dist", project.OutputDir)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("name = [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var userErr *UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, ErrCodeProjectParse, userErr.Code)
	assert.NotEmpty(t, userErr.Suggestion)
}

func TestUserError_Formatting(t *testing.T) {
	t.Parallel()

	err := &UserError{
		Code:    ErrCodeExportFailed,
		Message: "could not write file",
		Context: "dist/README.md",
	}

	assert.Equal(t, "could not write file (at dist/README.md)", err.Error())
	assert.True(t, errors.Is(err, &UserError{Code: ErrCodeExportFailed}))
	assert.False(t, errors.Is(err, &UserError{Code: ErrCodeProjectParse}))
}
