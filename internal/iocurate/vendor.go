package iocurate

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/npdb/internal/iosources"
	"github.com/gnames/npdb/internal/iovendor"
	"github.com/gnames/npdb/pkg/curation"
	"github.com/gnames/npdb/pkg/npdb"
	"github.com/gnames/npdb/pkg/parserpool"
	"github.com/gnames/npdb/pkg/record"
	"github.com/gnames/npdb/pkg/sources"
)

// Vendor merges rows of a vendor export into records.
func (c *curator) Vendor(ctx context.Context, name string) (npdb.Report, error) {
	rep := c.newReport("curate:" + name)
	if !sources.IsVendor(name) {
		return rep, NotVendorError(name)
	}

	src, err := iosources.Source(c.sources, name)
	if err != nil {
		return rep, err
	}
	files, err := c.fetcher.FetchAll(ctx, src.Files)
	if err != nil {
		return rep, err
	}

	path := files[sources.FileData]
	var f iovendor.Format
	switch name {
	case sources.KnapSack:
		f = iovendor.KnapSack
	case sources.ChEBI:
		f = iovendor.ChEBI
	case sources.PubChem:
		f = iovendor.PubChem
	case sources.CMAUP:
		path = files[sources.FileMapping]
		if f, err = iovendor.CMAUP(ctx, files); err != nil {
			return rep, err
		}
	}

	env := &curation.Env{Names: c.names, Source: src}

	var after curation.Transform
	if c.cfg.Curate.CanonicalTaxa {
		pool := parserpool.NewPool(c.cfg.JobsNumber)
		defer pool.Close()
		after = curation.CanonicalTaxa(pool)
	}
	return c.mergeFile(ctx, rep, path, f, env, after)
}

// Names applies IUPAC names, replaces low-quality names and cleans
// synonyms.
func (c *curator) Names(ctx context.Context) (npdb.Report, error) {
	rep := c.newReport(PassNames)

	src, err := iosources.Source(c.sources, sources.IUPAC)
	if err != nil {
		return rep, err
	}
	path, err := c.fetcher.Fetch(ctx, src.File(sources.FileData))
	if err != nil {
		return rep, err
	}

	env := &curation.Env{
		Names:     c.names,
		Source:    src,
		TitleCase: c.cfg.Curate.TitleCase,
	}
	return c.mergeFile(ctx, rep, path, iovendor.IUPAC, env, nil)
}

// mergeFile reads a vendor file in chunks and merges every chunk. The
// after transform, when given, runs on every touched record after its
// rows are merged.
func (c *curator) mergeFile(
	ctx context.Context,
	rep npdb.Report,
	path string,
	f iovendor.Format,
	env *curation.Env,
	after curation.Transform,
) (npdb.Report, error) {
	start := time.Now()
	slog.Info("Starting pass", "pass", rep.Pass, "run_id", rep.RunID, "file", path)

	bar := newProgressBar(rep.Pass)
	stats, err := iovendor.Read(ctx, path, f, c.cfg.Database.BatchSize,
		func(rows []curation.Row) error {
			err := c.mergeChunk(ctx, &rep, rows, env, after)
			bar.Add(len(rows))
			return err
		},
	)
	bar.Finish()

	rep.Read = stats.Read
	rep.Malformed = stats.Malformed
	if err != nil {
		return rep, cancelled(rep, err)
	}

	c.finish(rep, start)
	return rep, nil
}

// mergeChunk fetches all records of a chunk with one query, merges rows
// in file order and writes changed records with one batch. Rows of the
// same record see changes made by earlier rows.
func (c *curator) mergeChunk(
	ctx context.Context,
	rep *npdb.Report,
	rows []curation.Row,
	env *curation.Env,
	after curation.Transform,
) error {
	ids := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, v := range rows {
		id := v.AccessionID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	recs, err := c.store.FetchMany(ctx, ids)
	if err != nil {
		return err
	}
	orig := make(map[string]*record.NaturalProduct, len(recs))
	for k, v := range recs {
		orig[k] = v.Clone()
	}

	for _, v := range rows {
		np, ok := recs[v.AccessionID()]
		if !ok {
			rep.Missing++
			slog.Warn("Record not found",
				"pass", rep.Pass, "accession_id", v.AccessionID())
			continue
		}
		v.Merge(np, env)
	}

	if after != nil {
		for _, np := range recs {
			after(np)
		}
	}

	return c.apply(ctx, rep, diff(ids, orig, recs))
}
