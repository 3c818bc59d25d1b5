// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/npdb/pkg/db"
	"github.com/gnames/npdb/pkg/npdb"
	"github.com/gnames/npdb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the npdb.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) npdb.SchemaManager {
	return &manager{operator: op}
}

// Create creates the database schema using GORM AutoMigrate and
// adds GIN indexes on array columns.
func (m *manager) Create(ctx context.Context) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.createIndexes(ctx); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Schema created", "tables", len(schema.AllModels()))
	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	if err := m.createIndexes(ctx); err != nil {
		return MigrateSchemaError(err)
	}
	slog.Info("Schema migrated")
	return nil
}

func (m *manager) gormDB() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}

// createIndexes runs index statements GORM tags cannot express.
func (m *manager) createIndexes(ctx context.Context) error {
	pool := m.operator.Pool()
	for _, q := range schema.IndexDDL() {
		if _, err := pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
