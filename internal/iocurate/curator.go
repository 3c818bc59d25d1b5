// Package iocurate implements the Curator interface. It runs curation
// passes over a record store: vendor files are merged chunk by chunk,
// collection passes page through all records by accession id.
// This is an impure I/O package.
package iocurate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/npdb/internal/ioclassify"
	"github.com/gnames/npdb/internal/iofetch"
	"github.com/gnames/npdb/internal/iometrics"
	"github.com/gnames/npdb/internal/iosources"
	"github.com/gnames/npdb/pkg/config"
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/npdb"
	"github.com/gnames/npdb/pkg/record"
	"github.com/gnames/npdb/pkg/sources"
	"github.com/gnames/npdb/pkg/store"
	"github.com/google/uuid"
)

// Names of collection passes.
const (
	PassXRefs    = "xrefs"
	PassTaxIDs   = "taxids"
	PassAnnotate = "annotate"
	PassTaxa     = "taxa"
)

// Names of file passes.
const (
	PassNames    = "names"
	PassClassify = "classify"
)

type curator struct {
	cfg     *config.Config
	store   store.Store
	names   *names.Curator
	sources sources.Sources
	fetcher iofetch.Fetcher

	// newClassifier is replaced in tests.
	newClassifier func(*config.Config) (ioclassify.Classifier, error)

	runID string
}

// New creates a Curator working on the store. Name rules come from the
// curator nc, vendor locations from sources.yaml of the config
// directory.
func New(cfg *config.Config, st store.Store, nc *names.Curator) npdb.Curator {
	res := curator{
		cfg:           cfg,
		store:         st,
		names:         nc,
		sources:       iosources.New(cfg),
		fetcher:       iofetch.New(cfg),
		newClassifier: ioclassify.New,
		runID:         uuid.NewString(),
	}
	return &res
}

func (c *curator) newReport(pass string) npdb.Report {
	return npdb.Report{
		Pass:   pass,
		RunID:  c.runID,
		DryRun: c.cfg.Curate.DryRun,
	}
}

// apply writes patches of a chunk, or only logs them in a dry run.
func (c *curator) apply(
	ctx context.Context,
	rep *npdb.Report,
	patches []record.Patch,
) error {
	if len(patches) == 0 {
		return nil
	}
	rep.Changed += len(patches)

	if c.cfg.Curate.DryRun {
		for _, p := range patches {
			slog.Info("Record would change",
				"pass", rep.Pass,
				"accession_id", p.AccessionID(),
				"fields", p.Fields,
			)
		}
		return nil
	}

	ev := store.Event{RunID: c.runID, Pass: rep.Pass}
	return c.store.Apply(ctx, ev, patches)
}

// diff compares updated records with originals in the given order and
// returns patches of changed records.
func diff(
	ids []string,
	orig, upd map[string]*record.NaturalProduct,
) []record.Patch {
	var res []record.Patch
	for _, id := range ids {
		np, ok := upd[id]
		if !ok {
			continue
		}
		if fields := record.Diff(orig[id], np); len(fields) > 0 {
			res = append(res, record.Patch{Record: np, Fields: fields})
		}
	}
	return res
}

// cancelled converts context errors to CancelledError.
func cancelled(rep npdb.Report, err error) error {
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return CancelledError(rep.Pass, rep.Last, err)
	}
	return err
}

// finish logs the summary of a pass and pushes its metrics.
func (c *curator) finish(rep npdb.Report, start time.Time) {
	dur := time.Since(start)
	slog.Info("Pass complete",
		"pass", rep.Pass,
		"run_id", rep.RunID,
		"read", rep.Read,
		"malformed", rep.Malformed,
		"missing", rep.Missing,
		"changed", rep.Changed,
		"last", rep.Last,
		"dry_run", rep.DryRun,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)

	changed := "Changed"
	if rep.DryRun {
		changed = "Would change"
	}
	msg := fmt.Sprintf(`Pass <em>%s</em> complete
Read: %s, malformed: %s, missing: %s. %s: <em>%s</em>.
Elapsed time: <em>%s</em>`,
		rep.Pass,
		humanize.Comma(int64(rep.Read)),
		humanize.Comma(int64(rep.Malformed)),
		humanize.Comma(int64(rep.Missing)),
		changed,
		humanize.Comma(int64(rep.Changed)),
		gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(msg)

	m := iometrics.New(c.cfg.Metrics.PushgatewayURL, rep.Pass)
	m.Observe(rep, dur)
	if err := m.Push(); err != nil {
		slog.Warn("Cannot push metrics", "pass", rep.Pass, "error", err)
	}
}
