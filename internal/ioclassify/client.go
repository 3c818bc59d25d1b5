// Package ioclassify gets chemical taxonomy of structures from a
// ClassyFire-compatible web service. Results are cached by InChIKey in a
// SQLite file, so structures classified once are never submitted again.
package ioclassify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/npdb/pkg/config"
	"github.com/gnames/npdb/pkg/record"
	"golang.org/x/sync/errgroup"
)

// Structure is a compound to classify.
type Structure struct {
	// Accession is the id of the record, it labels the structure in a
	// query.
	Accession string

	// InChIKey is the cache key of the result.
	InChIKey string

	// Input is InChI or SMILES of the compound.
	Input string
}

// Classifier returns chemical taxonomy of structures.
type Classifier interface {
	// Classify returns classifications of the structures by InChIKey.
	// Structures the service cannot classify are absent from the result.
	Classify(ctx context.Context, ss []Structure) (map[string]record.Classification, error)

	// Close releases the cache.
	Close() error
}

type client struct {
	url       string
	chunkSize int
	jobs      int
	poll      time.Duration
	timeout   time.Duration
	http      *http.Client
	cache     *cache
	enc       gnfmt.GNjson
}

// New opens the classification cache and creates a Classifier.
func New(cfg *config.Config) (Classifier, error) {
	c, err := openCache(config.ClassifierCachePath(cfg.HomeDir))
	if err != nil {
		return nil, err
	}
	cl := cfg.Classifier
	res := &client{
		url:       strings.TrimRight(cl.URL, "/"),
		chunkSize: max(cl.ChunkSize, 1),
		jobs:      max(cfg.JobsNumber, 1),
		poll:      time.Duration(cl.PollIntervalSec) * time.Second,
		timeout:   time.Duration(cl.TimeoutSec) * time.Second,
		http:      &http.Client{Timeout: 5 * time.Minute},
		cache:     c,
	}
	return res, nil
}

func (c *client) Close() error {
	return c.cache.close()
}

func (c *client) Classify(
	ctx context.Context,
	ss []Structure,
) (map[string]record.Classification, error) {
	res, todo, err := c.cache.lookup(ctx, ss)
	if err != nil {
		return nil, err
	}
	if len(todo) == 0 {
		return res, nil
	}
	slog.Info("Submitting structures for classification",
		"cached", len(ss)-len(todo), "submitted", len(todo))

	chunks := make([][]Structure, 0, len(todo)/c.chunkSize+1)
	for i := 0; i < len(todo); i += c.chunkSize {
		chunks = append(chunks, todo[i:min(i+c.chunkSize, len(todo))])
	}

	found := make([]map[string]record.Classification, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs)
	for i, chunk := range chunks {
		g.Go(func() error {
			hits, err := c.classifyChunk(ctx, chunk)
			if err != nil {
				return err
			}
			found[i] = hits
			return c.cache.store(ctx, chunk, hits)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	for _, hits := range found {
		for k, v := range hits {
			res[k] = v
		}
	}
	return res, nil
}

// classifyChunk submits one query and waits for its results.
func (c *client) classifyChunk(
	ctx context.Context,
	chunk []Structure,
) (map[string]record.Classification, error) {
	id, err := c.submit(ctx, chunk)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.timeout)
	for {
		q, err := c.result(ctx, id)
		if err != nil {
			return nil, err
		}
		switch q.Status {
		case statusDone:
			return entities(q, chunk), nil
		case statusFailed:
			return nil, StatusError(id, q.Status)
		}
		if time.Now().After(deadline) {
			return nil, TimeoutError(id, int(c.timeout.Seconds()))
		}
		slog.Debug("Classification query is not done",
			"id", id, "status", q.Status)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.poll):
		}
	}
}

const (
	statusDone   = "Done"
	statusFailed = "Failed"
)

type queryRequest struct {
	Label      string `json:"label"`
	QueryInput string `json:"query_input"`
	QueryType  string `json:"query_type"`
}

type queryResponse struct {
	ID       int      `json:"id"`
	Status   string   `json:"classification_status"`
	Entities []entity `json:"entities"`
}

type entity struct {
	Identifier   string `json:"identifier"`
	InChIKey     string `json:"inchikey"`
	SuperClass   *node  `json:"superclass"`
	Class        *node  `json:"class"`
	SubClass     *node  `json:"subclass"`
	DirectParent *node  `json:"direct_parent"`
}

type node struct {
	Name string `json:"name"`
}

func (n *node) name() string {
	if n == nil {
		return ""
	}
	return n.Name
}

func (c *client) submit(ctx context.Context, chunk []Structure) (int, error) {
	lines := make([]string, len(chunk))
	for i, v := range chunk {
		lines[i] = v.Accession + "\t" + v.Input
	}
	body, err := c.enc.Encode(queryRequest{
		Label:      "npdb",
		QueryInput: strings.Join(lines, "\n"),
		QueryType:  "STRUCTURE",
	})
	if err != nil {
		return 0, err
	}

	url := c.url + "/queries.json"
	var q queryResponse
	if err = c.do(ctx, http.MethodPost, url, body, &q); err != nil {
		return 0, err
	}
	slog.Info("Submitted classification query",
		"id", q.ID, "structures", len(chunk))
	return q.ID, nil
}

func (c *client) result(ctx context.Context, id int) (queryResponse, error) {
	var q queryResponse
	url := fmt.Sprintf("%s/queries/%d.json", c.url, id)
	err := c.do(ctx, http.MethodGet, url, nil, &q)
	return q, err
}

func (c *client) do(
	ctx context.Context,
	method, url string,
	body []byte,
	out any,
) error {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return RequestError(url, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return RequestError(url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return RequestError(url, err)
	}
	if resp.StatusCode >= 300 {
		return RequestError(url, fmt.Errorf("status %d", resp.StatusCode))
	}
	if err = c.enc.Decode(data, out); err != nil {
		return DecodeError(url, err)
	}
	return nil
}

// entities maps query results back to InChIKeys of the submitted
// structures. The identifier of an entity is the accession id sent with
// the structure; the InChIKey reported by the service is used when the
// identifier is unknown.
func entities(q queryResponse, chunk []Structure) map[string]record.Classification {
	keys := make(map[string]string, len(chunk))
	for _, v := range chunk {
		keys[v.Accession] = v.InChIKey
	}

	res := make(map[string]record.Classification, len(q.Entities))
	for _, e := range q.Entities {
		key, ok := keys[e.Identifier]
		if !ok {
			key = strings.TrimPrefix(e.InChIKey, "InChIKey=")
		}
		if key == "" {
			continue
		}
		res[key] = record.Classification{
			SuperClass:   e.SuperClass.name(),
			Class:        e.Class.name(),
			SubClass:     e.SubClass.name(),
			DirectParent: e.DirectParent.name(),
		}
	}
	return res
}
