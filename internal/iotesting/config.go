// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"strconv"
	"testing"

	"github.com/gnames/npdb/pkg/config"
	"github.com/gnames/npdb/pkg/record"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "npdb_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Connection settings come from NPDB_DATABASE_* variables when they are
// set, the database name is always TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("NPDB_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("NPDB_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("NPDB_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("NPDB_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SetupTempHome creates a temporary home directory for a test and returns
// a config that keeps config, cache and logs inside of it.
func SetupTempHome(t *testing.T) *config.Config {
	t.Helper()
	cfg := GetTestConfig()
	cfg.Update([]config.Option{config.OptHomeDir(t.TempDir())})
	return cfg
}

// Records returns a small collection of natural products used by
// store and runner tests.
func Records() []*record.NaturalProduct {
	return []*record.NaturalProduct{
		{
			AccessionID:      "CNP0000001",
			Name:             "ZINC000004098448",
			TextTaxa:         []string{record.NoTaxon},
			FoundInDatabases: []string{"zinc"},
			InChIKey:         "RCINICONZNJXQF-MZXODVADSA-N",
		},
		{
			AccessionID:      "CNP0000002",
			Name:             "Quercetin",
			NameTrustLevel:   1,
			TextTaxa:         []string{"Sophora japonica"},
			TaxonomyIDs:      []string{"3897-2"},
			FoundInDatabases: []string{"npatlas"},
			InChIKey:         "REFJWTPEDVJJIY-UHFFFAOYSA-N",
		},
		{
			AccessionID: "CNP0000003",
			Name:        "",
			TextTaxa:    []string{record.NoTaxon},
			InChIKey:    "BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
		},
	}
}
