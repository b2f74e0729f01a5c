package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/airports/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "airports"),
		filepath.Join(tmpDir, ".local", "share", "airports", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
	}
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}
}

// TestEnsureDir_Nested verifies parents of a directory are created.
func TestEnsureDir_Nested(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "data", "output")

	err := EnsureDir(newDir)
	require.NoError(t, err)

	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestEnsureDir_NotADirectory verifies a file in the way is reported.
func TestEnsureDir_NotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file")
	err := os.WriteFile(path, []byte("x"), 0644)
	require.NoError(t, err)

	err = EnsureDir(filepath.Join(path, "sub"))
	assert.Error(t, err)
}

// TestEnsureTemplateFiles verifies templates are copied once and never
// overwritten.
func TestEnsureTemplateFiles(t *testing.T) {
	tests := []struct {
		name    string
		ensure  func(string) error
		file    string
		content string
	}{
		{"config", EnsureConfigFile, "config.yaml", templates.ConfigYAML},
		{"regions", EnsureRegionsFile, "regions.yaml", templates.RegionsYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))

			err := tt.ensure(tmpDir)
			require.NoError(t, err)

			path := filepath.Join(tmpDir, ".config", "airports", tt.file)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(content),
				"File content should match embedded template")

			custom := "# custom\n"
			err = os.WriteFile(path, []byte(custom), 0644)
			require.NoError(t, err)

			err = tt.ensure(tmpDir)
			require.NoError(t, err)

			content, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, string(content),
				"Existing file should not be overwritten")
		})
	}
}
