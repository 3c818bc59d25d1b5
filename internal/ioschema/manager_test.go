package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/internal/iodb"
	"github.com/gnames/npdb/internal/ioschema"
	"github.com/gnames/npdb/internal/iotesting"
	"github.com/gnames/npdb/pkg/errcode"
	"github.com/gnames/npdb/pkg/npdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ImplementsInterface(t *testing.T) {
	op := iodb.NewPgxOperator()
	var mgr npdb.SchemaManager = ioschema.NewManager(op)
	require.NotNil(t, mgr)
}

func TestManager_NotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewPgxOperator())
	err := mgr.Create(context.Background())
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestManager_CreateMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig()))
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))
	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))

	for _, tbl := range []string{"natural_products", "curation_events"} {
		exists, err := op.TableExists(ctx, tbl)
		require.NoError(t, err)
		assert.True(t, exists, tbl)
	}

	// idempotent
	require.NoError(t, mgr.Migrate(ctx))
}
