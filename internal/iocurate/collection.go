package iocurate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
	"github.com/gnames/npdb/internal/ioclassify"
	"github.com/gnames/npdb/internal/iosources"
	"github.com/gnames/npdb/internal/iovendor"
	"github.com/gnames/npdb/pkg/curation"
	"github.com/gnames/npdb/pkg/npdb"
	"github.com/gnames/npdb/pkg/parserpool"
	"github.com/gnames/npdb/pkg/record"
	"github.com/gnames/npdb/pkg/sources"
)

// pageTransform prepares a transform for a page of records.
type pageTransform func(
	ctx context.Context,
	page []*record.NaturalProduct,
) (curation.Transform, error)

func static(tr curation.Transform) pageTransform {
	return func(context.Context, []*record.NaturalProduct) (curation.Transform, error) {
		return tr, nil
	}
}

// Collection runs a transform pass over every record.
func (c *curator) Collection(ctx context.Context, pass string) (npdb.Report, error) {
	rep := c.newReport(pass)

	var tr curation.Transform
	switch pass {
	case PassXRefs:
		tr = curation.NormalizeXRefs(record.PrettySources)
	case PassTaxIDs:
		tr = curation.NormalizeTaxonIDs()
	case PassAnnotate:
		tr = curation.Annotate(c.cfg.Curate.TrustedSources)
	case PassTaxa:
		pool := parserpool.NewPool(c.cfg.JobsNumber)
		defer pool.Close()
		tr = curation.CanonicalTaxa(pool)
	default:
		return rep, UnknownPassError(pass)
	}
	return c.pages(ctx, rep, static(tr))
}

// Classify sets chemical taxonomy of records by InChIKey, either from the
// classification export or from the classification service.
func (c *curator) Classify(ctx context.Context, useAPI bool) (npdb.Report, error) {
	rep := c.newReport(PassClassify)

	if useAPI {
		cl, err := c.newClassifier(c.cfg)
		if err != nil {
			return rep, err
		}
		defer cl.Close()
		return c.pages(ctx, rep, classifyPage(cl))
	}

	src, err := iosources.Source(c.sources, sources.Classification)
	if err != nil {
		return rep, err
	}
	path, err := c.fetcher.Fetch(ctx, src.File(sources.FileData))
	if err != nil {
		return rep, err
	}

	lookup, stats, err := iovendor.Classification(path)
	if err != nil {
		return rep, err
	}
	slog.Info("Loaded classification export",
		"path", path,
		"rows", stats.Read,
		"malformed", stats.Malformed,
		"inchikeys", len(lookup),
	)
	if stats.Malformed > 0 {
		gn.Warn("Skipped <em>%d</em> malformed classification rows",
			stats.Malformed)
	}

	rep.Malformed = stats.Malformed
	return c.pages(ctx, rep, static(curation.Classify(lookup)))
}

// classifyPage asks the service about records of a page that have a
// structure and no classification yet.
func classifyPage(cl ioclassify.Classifier) pageTransform {
	return func(
		ctx context.Context,
		page []*record.NaturalProduct,
	) (curation.Transform, error) {
		var ss []ioclassify.Structure
		for _, np := range page {
			if np.Classification != (record.Classification{}) {
				continue
			}
			input := strings.TrimSpace(np.InChI)
			if input == "" {
				input = strings.TrimSpace(np.SMILES)
			}
			if np.InChIKey == "" || input == "" {
				continue
			}
			ss = append(ss, ioclassify.Structure{
				Accession: np.AccessionID,
				InChIKey:  strings.TrimSpace(np.InChIKey),
				Input:     input,
			})
		}
		if len(ss) == 0 {
			return curation.Classify(nil), nil
		}

		lookup, err := cl.Classify(ctx, ss)
		if err != nil {
			return nil, err
		}
		return curation.Classify(lookup), nil
	}
}

// pages runs a transform over records in accession id order, starting
// after the configured accession id.
func (c *curator) pages(
	ctx context.Context,
	rep npdb.Report,
	ptr pageTransform,
) (npdb.Report, error) {
	start := time.Now()
	slog.Info("Starting pass",
		"pass", rep.Pass, "run_id", rep.RunID, "after", c.cfg.Curate.After)

	bar := newProgressBar(rep.Pass)
	err := c.pageLoop(ctx, &rep, ptr, bar)
	bar.Finish()
	if err != nil {
		return rep, cancelled(rep, err)
	}

	c.finish(rep, start)
	return rep, nil
}

// pageLoop writes every page with one batch and logs it as a checkpoint.
func (c *curator) pageLoop(
	ctx context.Context,
	rep *npdb.Report,
	ptr pageTransform,
	bar *pb.ProgressBar,
) error {
	after := c.cfg.Curate.After
	limit := max(c.cfg.Database.BatchSize, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := c.store.Page(ctx, after, limit)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}

		tr, err := ptr(ctx, page)
		if err != nil {
			return err
		}

		var patches []record.Patch
		for _, np := range page {
			orig := np.Clone()
			tr(np)
			if fields := record.Diff(orig, np); len(fields) > 0 {
				patches = append(patches, record.Patch{Record: np, Fields: fields})
			}
		}
		if err = c.apply(ctx, rep, patches); err != nil {
			return err
		}

		rep.Read += len(page)
		after = page[len(page)-1].AccessionID
		rep.Last = after
		bar.Add(len(page))
		slog.Info("Checkpoint",
			"pass", rep.Pass,
			"last", rep.Last,
			"read", rep.Read,
			"changed", rep.Changed,
		)
	}
}
