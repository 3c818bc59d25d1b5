// Package npdb defines contracts of the main npdb workflows: schema
// management and curation passes.
package npdb

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent, safe to run multiple times.
type SchemaManager interface {
	// Create creates the database schema with GORM AutoMigrate and adds
	// indexes that GORM cannot express.
	Create(ctx context.Context) error

	// Migrate updates the database schema to the latest version.
	Migrate(ctx context.Context) error
}

// Curator runs curation passes over natural_products.
type Curator interface {
	// Vendor merges rows of a vendor export into records.
	Vendor(ctx context.Context, source string) (Report, error)

	// Names applies IUPAC names, replaces low-quality names and cleans
	// synonyms.
	Names(ctx context.Context) (Report, error)

	// Classify sets chemical taxonomy from the classification export, or
	// from the classification service when useAPI is true.
	Classify(ctx context.Context, useAPI bool) (Report, error)

	// Collection runs a transform pass over every record: "xrefs",
	// "taxids", "annotate" or "taxa".
	Collection(ctx context.Context, pass string) (Report, error)
}

// Report summarizes a pass.
type Report struct {
	// Pass is the name of the pass.
	Pass string

	// RunID identifies the program run that produced the report.
	RunID string

	// Read is the number of vendor rows or records read.
	Read int

	// Malformed is the number of rows skipped because of parse errors.
	Malformed int

	// Missing is the number of rows with accession ids absent from the
	// collection.
	Missing int

	// Changed is the number of records with at least one changed field.
	Changed int

	// Last is the last accession id processed by a collection pass. It
	// can be used as --after value to resume the pass.
	Last string

	// DryRun is true if changes were not written.
	DryRun bool
}
