package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows or records per chunk.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptClassifierURL sets the base URL of the classification service.
func OptClassifierURL(s string) Option {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	return func(c *Config) {
		if isValidURL("Classifier URL", s) {
			c.Classifier.URL = s
		}
	}
}

// OptClassifierChunkSize sets how many structures go into one query.
func OptClassifierChunkSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Classifier Chunk Size", i) {
			c.Classifier.ChunkSize = i
		}
	}
}

// OptClassifierPollIntervalSec sets seconds between status checks.
func OptClassifierPollIntervalSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Classifier Poll Interval", i) {
			c.Classifier.PollIntervalSec = i
		}
	}
}

// OptClassifierTimeoutSec sets how long a query may run.
func OptClassifierTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Classifier Timeout", i) {
			c.Classifier.TimeoutSec = i
		}
	}
}

// OptStorageEndpoint sets S3 endpoint (host:port, no scheme).
func OptStorageEndpoint(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return func(c *Config) {
		if isValidString("Storage Endpoint", s) {
			c.Storage.Endpoint = s
		}
	}
}

// OptStorageAccessKey sets S3 access key.
func OptStorageAccessKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Storage Access Key", s) {
			c.Storage.AccessKey = s
		}
	}
}

// OptStorageSecretKey sets S3 secret key.
func OptStorageSecretKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Storage Secret Key", s) {
			c.Storage.SecretKey = s
		}
	}
}

// OptStorageUseSSL sets whether S3 connection uses TLS.
func OptStorageUseSSL(b bool) Option {
	return func(c *Config) {
		c.Storage.UseSSL = b
	}
}

// OptMetricsPushgatewayURL sets the Prometheus Pushgateway URL.
func OptMetricsPushgatewayURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Metrics Pushgateway URL", s) {
			c.Metrics.PushgatewayURL = s
		}
	}
}

// OptCurateTrustedSources replaces the allow-list of trusted databases.
// Empty entries are dropped, an empty result is ignored.
func OptCurateTrustedSources(ss []string) Option {
	var res []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return func(c *Config) {
		if len(res) == 0 {
			return
		}
		c.Curate.TrustedSources = res
	}
}

// OptCurateCanonicalTaxa sets whether organism names are canonicalized.
func OptCurateCanonicalTaxa(b bool) Option {
	return func(c *Config) {
		c.Curate.CanonicalTaxa = b
	}
}

// OptCurateAfter sets the accession id after which collection passes start.
// Runtime-only field - not in ToOptions().
func OptCurateAfter(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Curate.After = s
	}
}

// OptCurateDryRun turns off writing to the database.
// Runtime-only field - not in ToOptions().
func OptCurateDryRun(b bool) Option {
	return func(c *Config) {
		c.Curate.DryRun = b
	}
}

// OptCurateTitleCase turns on title casing in the names pass.
// Runtime-only field - not in ToOptions().
func OptCurateTitleCase(b bool) Option {
	return func(c *Config) {
		c.Curate.TitleCase = b
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
