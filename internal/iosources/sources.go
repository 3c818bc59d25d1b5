// Package iosources reads sources.yaml and rules.yaml from the config
// directory.
package iosources

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/internal/iofs"
	"github.com/gnames/npdb/pkg/config"
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg *config.Config
}

// New creates a loader of sources.yaml of the config directory.
func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg}
	return &res
}

// Load reads and validates sources.yaml. Validation warnings are shown
// to the user and kept in the result.
func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesPath := config.SourcesFilePath(s.cfg.HomeDir)
	sourcesConfig, err := loadSourcesConfig(sourcesPath)
	if err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}

	for _, w := range sourcesConfig.Warnings {
		slog.Warn("Source configuration issue",
			"source", w.Source, "field", w.Field, "message", w.Message)
		gn.Warn("<em>%s.%s</em>: %s. %s",
			w.Source, w.Field, w.Message, w.Suggestion)
	}
	return sourcesConfig, nil
}

// Source loads sources.yaml and returns one source from it.
func Source(src sources.Sources, name string) (sources.Source, error) {
	cfg, err := src.Load()
	if err != nil {
		return sources.Source{}, err
	}
	res, ok := cfg.Get(name)
	if !ok {
		return res, SourcesUnknownError(name)
	}
	return res, nil
}

func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config file: %w", err)
	}

	var res sources.SourcesConfig
	if err = yaml.Unmarshal(bs, &res); err != nil {
		return nil, fmt.Errorf("failed to parse sources config file: %w", err)
	}

	if err = res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// LoadRules returns low-quality name rules from rules.yaml of the config
// directory, or the default rules if the file does not exist.
func LoadRules(homeDir string) (names.Rules, error) {
	path := config.RulesFilePath(homeDir)
	bs, err := iofs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return names.DefaultRules(), nil
	}
	if err != nil {
		return names.Rules{}, err
	}

	res, err := names.ParseRules(bs)
	if err != nil {
		return names.Rules{}, RulesParseError(path, err)
	}
	slog.Info("Loaded name rules", "path", path, "rules", res.Len())
	return res, nil
}
