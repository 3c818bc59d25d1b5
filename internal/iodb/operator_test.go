package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/npdb/internal/iodb"
	"github.com/gnames/npdb/internal/ioschema"
	"github.com/gnames/npdb/internal/iotesting"
	"github.com/gnames/npdb/pkg/record"
	"github.com/gnames/npdb/pkg/schema"
	"github.com/gnames/npdb/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests need PostgreSQL with npdb_test database. Connection
// settings are read from NPDB_DATABASE_* variables. Skip them with
// go test -short.

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	cfg := iotesting.GetTestDatabaseConfig()
	cfg.Host = "invalid-host-that-does-not-exist"

	err := op.Connect(context.Background(), cfg)
	assert.Error(t, err, "Connect should fail with invalid host")
}

func TestPgxOperator_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "natural_products")
	assert.Error(t, err)
	_, err = op.HasTables(ctx)
	assert.Error(t, err)
	assert.Error(t, op.DropAllTables(ctx))
	assert.NoError(t, op.Close())

	_, err = iodb.NewStore(op)
	assert.Error(t, err)
}

func TestPgxOperator_TableExists(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err)
	defer op.Close()

	_, _ = op.Pool().Exec(ctx, "DROP TABLE IF EXISTS test_table_exists CASCADE")

	exists, err := op.TableExists(ctx, "test_table_exists")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = op.Pool().Exec(ctx, "CREATE TABLE test_table_exists (id SERIAL PRIMARY KEY)")
	require.NoError(t, err)

	exists, err = op.TableExists(ctx, "test_table_exists")
	require.NoError(t, err)
	assert.True(t, exists)

	_, _ = op.Pool().Exec(ctx, "DROP TABLE test_table_exists")
}

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx))

	for _, v := range iotesting.Records() {
		row, err := schema.FromRecord(v)
		require.NoError(t, err)
		_, err = op.Pool().Exec(ctx,
			`INSERT INTO natural_products
			(accession_id, name, name_trust_level, text_taxa, taxonomy_ids,
			found_in_databases, inchikey)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			row.AccessionID, row.Name, row.NameTrustLevel,
			[]string(row.TextTaxa), []string(row.TaxonomyIDs),
			[]string(row.FoundInDatabases), row.InChIKey,
		)
		require.NoError(t, err)
	}

	st, err := iodb.NewStore(op)
	require.NoError(t, err)

	nps, err := st.FetchMany(ctx, []string{"CNP0000002", "CNP9999999"})
	require.NoError(t, err)
	require.Len(t, nps, 1)
	np := nps["CNP0000002"]
	assert.Equal(t, "Quercetin", np.Name)
	assert.Equal(t, []string{"3897-2"}, np.TaxonomyIDs)

	page, err := st.Page(ctx, "CNP0000001", 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "CNP0000002", page[0].AccessionID)

	upd := np.Clone()
	upd.NormalizeTaxonIDs()
	upd.AddXRef("npatlas", "NPA001", "https://www.npatlas.org/explore/compounds/")
	patch := record.Patch{Record: upd, Fields: record.Diff(np, upd)}
	ev := store.Event{RunID: "8f2d1c3a-7a36-4f61-9d7b-0e5a8f1c2b11", Pass: "taxids"}

	require.NoError(t, st.Apply(ctx, ev, []record.Patch{patch}))
	// replaying the chunk does not duplicate events
	require.NoError(t, st.Apply(ctx, ev, []record.Patch{patch}))

	nps, err = st.FetchMany(ctx, []string{"CNP0000002"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3897"}, nps["CNP0000002"].TaxonomyIDs)
	assert.True(t, nps["CNP0000002"].HasXRef("npatlas", "NPA001"))

	var count int
	err = op.Pool().QueryRow(ctx,
		"SELECT count(*) FROM curation_events WHERE run_id = $1",
		ev.RunID,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
