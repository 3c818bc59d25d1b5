// Package iofs prepares directories and configuration files of npdb.
package iofs

import (
	"os"

	"github.com/gnames/gnsys"
	"github.com/gnames/npdb/pkg/config"
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/templates"
)

// EnsureDirs creates config, cache and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.FilesCacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

// EnsureConfigFile writes config.yaml template unless the file exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), templates.ConfigYAML)
}

// EnsureSourcesFile writes sources.yaml template unless the file exists.
func EnsureSourcesFile(homeDir string) error {
	return ensureFile(config.SourcesFilePath(homeDir), templates.SourcesYAML)
}

// EnsureRulesFile writes default low-quality name rules unless the file
// exists.
func EnsureRulesFile(homeDir string) error {
	return ensureFile(config.RulesFilePath(homeDir), names.RulesYAML)
}

// ReadFile returns the content of a configuration file.
func ReadFile(path string) ([]byte, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return bs, nil
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}
