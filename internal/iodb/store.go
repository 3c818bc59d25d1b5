package iodb

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/gnames/npdb/pkg/db"
	"github.com/gnames/npdb/pkg/record"
	"github.com/gnames/npdb/pkg/schema"
	"github.com/gnames/npdb/pkg/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgStore implements store.Store over the natural_products table.
type pgStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a record store from a connected operator.
func NewStore(op db.Operator) (store.Store, error) {
	pool := op.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}
	return &pgStore{pool: pool}, nil
}

const selectColumns = `accession_id,
	COALESCE(name, ''), COALESCE(name_trust_level, 0), synonyms,
	COALESCE(iupac_name, ''), text_taxa, taxonomy_ids, citation_references,
	COALESCE(cas_number, ''), found_in_databases,
	cross_references, clean_cross_references,
	COALESCE(annotation_level, 0),
	COALESCE(inchikey, ''), COALESCE(inchi, ''), COALESCE(smiles, ''),
	COALESCE(chemical_super_class, ''), COALESCE(chemical_class, ''),
	COALESCE(chemical_sub_class, ''),
	COALESCE(direct_parent_classification, '')`

func (s *pgStore) FetchMany(
	ctx context.Context,
	ids []string,
) (map[string]*record.NaturalProduct, error) {
	res := make(map[string]*record.NaturalProduct, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	q := "SELECT " + selectColumns +
		" FROM natural_products WHERE accession_id = ANY($1)"
	rows, err := s.pool.Query(ctx, q, ids)
	if err != nil {
		return nil, FetchRecordsError(err)
	}
	nps, err := collect(rows)
	if err != nil {
		return nil, err
	}
	for _, v := range nps {
		res[v.AccessionID] = v
	}
	return res, nil
}

func (s *pgStore) Page(
	ctx context.Context,
	after string,
	limit int,
) ([]*record.NaturalProduct, error) {
	q := "SELECT " + selectColumns + ` FROM natural_products
	WHERE accession_id > $1
	ORDER BY accession_id
	LIMIT $2`
	rows, err := s.pool.Query(ctx, q, after, limit)
	if err != nil {
		return nil, FetchRecordsError(err)
	}
	return collect(rows)
}

// Apply writes all patches and their curation events in one transaction
// sent as a single batch.
func (s *pgStore) Apply(
	ctx context.Context,
	ev store.Event,
	patches []record.Patch,
) error {
	if len(patches) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range patches {
		if len(p.Fields) == 0 {
			continue
		}
		row, err := schema.FromRecord(p.Record)
		if err != nil {
			return ApplyPatchesError(ev.Pass, len(patches), err)
		}
		vals := fieldValues(row)
		args := make([]any, 0, len(p.Fields)+1)
		args = append(args, p.AccessionID())
		for _, f := range p.Fields {
			v, ok := vals[f]
			if !ok {
				err = fmt.Errorf("unknown field %q", f)
				return ApplyPatchesError(ev.Pass, len(patches), err)
			}
			args = append(args, v)
		}
		batch.Queue(updateSQL(p.Fields), args...)
		batch.Queue(insertEventSQL,
			EventID(ev, p.AccessionID()), ev.RunID, ev.Pass,
			p.AccessionID(), p.Fields,
		)
	}
	if batch.Len() == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return ApplyPatchesError(ev.Pass, len(patches), err)
	}
	defer tx.Rollback(ctx)

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return ApplyPatchesError(ev.Pass, len(patches), err)
	}
	if err = tx.Commit(ctx); err != nil {
		return ApplyPatchesError(ev.Pass, len(patches), err)
	}
	return nil
}

const insertEventSQL = `INSERT INTO curation_events
	(id, run_id, pass, accession_id, fields)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING`

// EventID is deterministic for a run, pass and record, so a retried
// chunk does not log the same change twice.
func EventID(ev store.Event, accessionID string) string {
	key := strings.Join([]string{ev.RunID, ev.Pass, accessionID}, "|")
	return gnuuid.New(key).String()
}

// updateSQL builds an update of the given columns, values are numbered
// from $2, $1 is the accession id.
func updateSQL(fields []string) string {
	sets := make([]string, len(fields))
	for i, f := range fields {
		sets[i] = fmt.Sprintf("%s = $%d", f, i+2)
	}
	return "UPDATE natural_products SET " + strings.Join(sets, ", ") +
		" WHERE accession_id = $1"
}

func fieldValues(row schema.NaturalProduct) map[string]any {
	return map[string]any{
		record.FieldName:               row.Name,
		record.FieldNameTrustLevel:     row.NameTrustLevel,
		record.FieldSynonyms:           []string(row.Synonyms),
		record.FieldIUPACName:          row.IUPACName,
		record.FieldTextTaxa:           []string(row.TextTaxa),
		record.FieldTaxonomyIDs:        []string(row.TaxonomyIDs),
		record.FieldCitations:          []string(row.Citations),
		record.FieldCAS:                row.CAS,
		record.FieldFoundInDatabases:   []string(row.FoundInDatabases),
		record.FieldXRefs:              []byte(row.XRefs),
		record.FieldCleanXRefs:         []byte(row.CleanXRefs),
		record.FieldAnnotationLevel:    row.AnnotationLevel,
		record.FieldChemicalSuperClass: row.ChemicalSuperClass,
		record.FieldChemicalClass:      row.ChemicalClass,
		record.FieldChemicalSubClass:   row.ChemicalSubClass,
		record.FieldDirectParent:       row.DirectParent,
	}
}

func collect(rows pgx.Rows) ([]*record.NaturalProduct, error) {
	defer rows.Close()

	var res []*record.NaturalProduct
	for rows.Next() {
		var row schema.NaturalProduct
		var syns, taxa, taxIDs, cits, dbs []string
		var xrefs, clean []byte
		err := rows.Scan(
			&row.AccessionID,
			&row.Name, &row.NameTrustLevel, &syns,
			&row.IUPACName, &taxa, &taxIDs, &cits,
			&row.CAS, &dbs,
			&xrefs, &clean,
			&row.AnnotationLevel,
			&row.InChIKey, &row.InChI, &row.SMILES,
			&row.ChemicalSuperClass, &row.ChemicalClass,
			&row.ChemicalSubClass,
			&row.DirectParent,
		)
		if err != nil {
			return nil, FetchRecordsError(err)
		}
		row.Synonyms = syns
		row.TextTaxa = taxa
		row.TaxonomyIDs = taxIDs
		row.Citations = cits
		row.FoundInDatabases = dbs
		row.XRefs = xrefs
		row.CleanXRefs = clean

		np, err := row.ToRecord()
		if err != nil {
			return nil, FetchRecordsError(err)
		}
		res = append(res, np)
	}
	if err := rows.Err(); err != nil {
		return nil, FetchRecordsError(err)
	}
	return res, nil
}
