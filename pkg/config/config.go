// Package config provides configuration management for npdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - Classifier: url, chunk_size, poll_interval_sec, timeout_sec
//   - Storage: endpoint, access_key, secret_key, use_ssl
//   - Metrics: pushgateway_url
//   - Curate: trusted_sources, canonical_taxa
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Curate.After, Curate.DryRun, Curate.TitleCase (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use NPDB_ prefix with underscores for nesting:
//
//	NPDB_DATABASE_HOST=localhost
//	NPDB_DATABASE_PORT=5432
//	NPDB_LOG_LEVEL=info
//	NPDB_CLASSIFIER_URL=http://classyfire.wishartlab.com
//	NPDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete npdb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Classifier contains settings of the chemical classification service.
	Classifier ClassifierConfig `mapstructure:"classifier" yaml:"classifier"`

	// Storage contains S3-compatible object storage credentials used
	// for s3:// vendor file locations.
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`

	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// Curate contains settings shared by curation passes.
	Curate CurateConfig `mapstructure:"curate" yaml:"curate"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of vendor rows or records processed per
	// chunk. Every chunk is fetched with one query and written with one
	// batch.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// ClassifierConfig describes the ClassyFire-compatible service.
type ClassifierConfig struct {
	// URL is the base URL of the service.
	URL string `mapstructure:"url" yaml:"url"`

	// ChunkSize is the number of structures submitted in one query.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`

	// PollIntervalSec is the pause between status checks of a query.
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec"`

	// TimeoutSec limits how long one query may stay unfinished.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// StorageConfig holds S3 endpoint and credentials.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"   yaml:"endpoint"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"    yaml:"use_ssl"`
}

// MetricsConfig configures pushing pass metrics. Empty PushgatewayURL
// disables pushing.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url" yaml:"pushgateway_url"`
}

// CurateConfig contains settings of curation passes.
type CurateConfig struct {
	// TrustedSources are database tags that raise the annotation level
	// of a record found in any of them.
	TrustedSources []string `mapstructure:"trusted_sources" yaml:"trusted_sources"`

	// CanonicalTaxa replaces organism names with their canonical form
	// when they parse as scientific names.
	CanonicalTaxa bool `mapstructure:"canonical_taxa" yaml:"canonical_taxa"`

	// After is the accession id after which collection passes start.
	// Runtime-only field.
	After string `mapstructure:"-" yaml:"-"`

	// DryRun computes and logs changes without writing them.
	// Runtime-only field.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// TitleCase capitalizes names that differ from IUPAC names during
	// the names pass. Runtime-only field.
	TitleCase bool `mapstructure:"-" yaml:"-"`
}

// DefaultTrustedSources is the allow-list of high-trust database tags.
var DefaultTrustedSources = []string{
	"chebi_np",
	"chembl_np",
	"cmaup",
	"np_atlas_2019_12",
	"npatlas",
	"piellabdata",
	"knapsack",
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "coconut",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		Classifier: ClassifierConfig{
			URL:             "http://classyfire.wishartlab.com",
			ChunkSize:       1_000,
			PollIntervalSec: 60,
			TimeoutSec:      3_600,
		},
		Curate: CurateConfig{
			TrustedSources: append([]string(nil), DefaultTrustedSources...),
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
