package iovendor

import (
	"context"
	"log/slog"

	"github.com/gnames/npdb/pkg/curation"
	"github.com/gnames/npdb/pkg/sources"
	"golang.org/x/sync/errgroup"
)

// cmaupTables are the CMAUP side tables joined to the mapping file.
type cmaupTables struct {
	// names of ingredients by CMAUP id
	names map[string]string
	// plants by plant id
	plants map[string]curation.Plant
	// plant ids by CMAUP id
	assoc map[string][]string
}

// CMAUP loads ingredient, plant and association tables concurrently and
// returns the format of the mapping file. The mapping file is
// comma-separated: accession id, CMAUP ingredient id.
func CMAUP(ctx context.Context, files map[string]string) (Format, error) {
	t := cmaupTables{
		names:  make(map[string]string),
		plants: make(map[string]curation.Plant),
		assoc:  make(map[string][]string),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readTable(files[sources.FileIngredients], "\t", "Ingredient_ID", 2,
			func(f []string) { t.names[f[0]] = f[1] },
		)
	})
	g.Go(func() error {
		return readTable(files[sources.FilePlants], "\t", "Plant_ID", 3,
			func(f []string) {
				t.plants[f[0]] = curation.Plant{ID: f[0], Name: f[1], TaxonID: f[2]}
			},
		)
	})
	g.Go(func() error {
		return readTable(files[sources.FileAssociations], "\t", "Plant_ID", 2,
			func(f []string) { t.assoc[f[1]] = append(t.assoc[f[1]], f[0]) },
		)
	})
	if err := g.Wait(); err != nil {
		return Format{}, err
	}
	slog.Info("Loaded CMAUP tables",
		"ingredients", len(t.names),
		"plants", len(t.plants),
		"associations", len(t.assoc),
	)

	res := Format{
		Name:      "cmaup",
		Sep:       ",",
		MinFields: 2,
		Header:    "uniqueNaturalProduct",
		Parse:     t.row,
	}
	return res, nil
}

func (t cmaupTables) row(f []string) curation.Row {
	res := curation.CMAUPRow{
		Accession: f[0],
		CMAUPID:   f[1],
		Name:      t.names[f[1]],
	}
	for _, id := range t.assoc[f[1]] {
		if p, ok := t.plants[id]; ok {
			res.Plants = append(res.Plants, p)
		}
	}
	return res
}
