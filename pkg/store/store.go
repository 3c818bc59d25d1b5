// Package store defines how curation passes find and update records.
package store

import (
	"context"

	"github.com/gnames/npdb/pkg/record"
)

// Store gives access to the natural_products collection.
type Store interface {
	// FetchMany returns records with the given accession ids. Ids without
	// a record are absent from the result.
	FetchMany(ctx context.Context, ids []string) (map[string]*record.NaturalProduct, error)

	// Page returns up to limit records with accession ids greater than
	// after, ordered by accession id. An empty result means the end of
	// the collection.
	Page(ctx context.Context, after string, limit int) ([]*record.NaturalProduct, error)

	// Apply writes changed fields of records in one batch and logs one
	// curation event per record.
	Apply(ctx context.Context, ev Event, patches []record.Patch) error
}

// Event identifies the pass that produced patches.
type Event struct {
	// RunID is unique for every run of the program.
	RunID string
	// Pass is the name of the curation pass, like "curate:chebi".
	Pass string
}
