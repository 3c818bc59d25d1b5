package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "npdb"),
		filepath.Join(tmpDir, ".cache", "npdb"),
		filepath.Join(tmpDir, ".cache", "npdb", "files"),
		filepath.Join(tmpDir, ".local", "share", "npdb", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
	}
}

func TestEnsureDirsError(t *testing.T) {
	tmpDir := t.TempDir()
	// a file where a directory should be
	err := os.WriteFile(filepath.Join(tmpDir, ".config"), []byte("x"), 0644)
	require.NoError(t, err)

	err = EnsureDirs(tmpDir)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
}

func TestEnsureFiles(t *testing.T) {
	tests := []struct {
		msg     string
		ensure  func(string) error
		file    string
		content string
	}{
		{"config", EnsureConfigFile, "config.yaml", templates.ConfigYAML},
		{"sources", EnsureSourcesFile, "sources.yaml", templates.SourcesYAML},
		{"rules", EnsureRulesFile, "rules.yaml", names.RulesYAML},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))
			require.NoError(t, v.ensure(tmpDir))

			path := filepath.Join(tmpDir, ".config", "npdb", v.file)
			content, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, v.content, string(content))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			custom := "# custom\n"
			require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
			require.NoError(t, v.ensure(tmpDir))
			content, err = ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, string(content),
				"existing file should not be overwritten")
		})
	}
}

func TestEnsureFileNoDir(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "missing"))
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CopyFileError, gnErr.Code)
}

func TestReadFileError(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
	assert.Contains(t, gnErr.Vars[0], "nope.yaml")
}
