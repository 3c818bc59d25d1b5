package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "npdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/npdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/npdb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// FilesCacheDir keeps vendor files downloaded from remote locations.
func FilesCacheDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "files")
}

// ClassifierCachePath is the SQLite file with cached classifications.
func ClassifierCachePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "classyfire.sqlite")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/npdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/npdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SourcesFilePath returns the full path to the sources.yaml file.
func SourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sources.yaml")
}

// RulesFilePath returns the full path to the rules.yaml file with
// low-quality name rules.
func RulesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "rules.yaml")
}
