// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/airports/pkg/db"
	"github.com/gnames/airports/pkg/lifecycle"
	"github.com/gnames/airports/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Migrate creates or updates tables of the airport schema
// and sets byte-wise collation on name columns, so the
// database sorts names the same way the query engine does.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}

	slog.Info("Schema is up to date",
		"database", cfg.Database.Database,
		"tables", len(schema.AllModels()),
	)
	return nil
}

type columnDef struct {
	table, column string
	varchar       int
}

var collatedColumns = []columnDef{
	{"countries", "name", 255},
	{"cities", "name", 255},
	{"airports", "name", 255},
	{"airports", "full_name", 255},
}

// setCollation sets "C" collation on name columns.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	for _, col := range collatedColumns {
		q := formatCollationSQL(col.table, col.column, col.varchar)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}
