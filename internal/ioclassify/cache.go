package ioclassify

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	"github.com/gnames/gnsys"
	"github.com/gnames/npdb/pkg/record"
	_ "modernc.org/sqlite"
)

// cache keeps results of finished queries. Structures the service did not
// classify are stored with found = 0 and are not submitted again.
type cache struct {
	path string
	db   *sql.DB
}

const cacheDDL = `
CREATE TABLE IF NOT EXISTS classifications (
	inchikey TEXT PRIMARY KEY,
	found INTEGER NOT NULL,
	superclass TEXT NOT NULL DEFAULT '',
	class TEXT NOT NULL DEFAULT '',
	subclass TEXT NOT NULL DEFAULT '',
	direct_parent TEXT NOT NULL DEFAULT ''
)`

func openCache(path string) (*cache, error) {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return nil, CacheError(path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, CacheError(path, err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(cacheDDL); err != nil {
		db.Close()
		return nil, CacheError(path, err)
	}
	return &cache{path: path, db: db}, nil
}

func (c *cache) close() error {
	return c.db.Close()
}

// lookup returns cached classifications and structures that still need
// a query. Structures without InChIKey or input are skipped.
func (c *cache) lookup(
	ctx context.Context,
	ss []Structure,
) (map[string]record.Classification, []Structure, error) {
	res := make(map[string]record.Classification)
	var todo []Structure

	stmt, err := c.db.PrepareContext(ctx, `
SELECT found, superclass, class, subclass, direct_parent
  FROM classifications WHERE inchikey = ?`)
	if err != nil {
		return nil, nil, CacheError(c.path, err)
	}
	defer stmt.Close()

	seen := make(map[string]struct{})
	for _, s := range ss {
		key := strings.TrimSpace(s.InChIKey)
		if key == "" || strings.TrimSpace(s.Input) == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		var found bool
		var cl record.Classification
		err = stmt.QueryRowContext(ctx, key).Scan(
			&found, &cl.SuperClass, &cl.Class, &cl.SubClass, &cl.DirectParent,
		)
		switch {
		case err == sql.ErrNoRows:
			s.InChIKey = key
			todo = append(todo, s)
		case err != nil:
			return nil, nil, CacheError(c.path, err)
		case found:
			res[key] = cl
		}
	}
	return res, todo, nil
}

// store saves results of a finished query.
func (c *cache) store(
	ctx context.Context,
	chunk []Structure,
	hits map[string]record.Classification,
) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return CacheError(c.path, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR REPLACE INTO classifications
  (inchikey, found, superclass, class, subclass, direct_parent)
  VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return CacheError(c.path, err)
	}
	defer stmt.Close()

	for _, s := range chunk {
		var found int
		cl, ok := hits[s.InChIKey]
		if ok {
			found = 1
		}
		_, err = stmt.ExecContext(ctx, s.InChIKey, found,
			cl.SuperClass, cl.Class, cl.SubClass, cl.DirectParent)
		if err != nil {
			return CacheError(c.path, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return CacheError(c.path, err)
	}
	return nil
}
