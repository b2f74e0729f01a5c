// Package db defines the contract for PostgreSQL access used by publish.
package db

import (
	"context"

	"github.com/gnames/airports/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It manages the connection lifecycle and exposes the pgxpool.Pool so
// SchemaManager and Publisher can run their own SQL, including CopyFrom
// for bulk inserts.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	HasTables(ctx context.Context) (bool, error)
}
