// Package lifecycle defines the stages that take airports from the raw
// input to the normalized model and from there to the exported and
// published databases.
package lifecycle

import (
	"context"

	"github.com/gnames/airports/pkg/config"
)

// Loader builds the normalized airport model.
type Loader interface {
	// Load reads persisted artifacts if they exist and the load is not
	// forced. Otherwise it transforms the raw input and persists the
	// result. Nothing is written if the transform fails.
	Load(ctx context.Context) (*Result, error)

	// State returns the current state of the loader.
	State() State
}

// Exporter saves the normalized model into a standalone file database.
type Exporter interface {
	// Export writes the model of res to path, replacing an existing file.
	Export(ctx context.Context, res *Result, path string) error
}

// SchemaManager keeps the PostgreSQL schema in line with the model.
// Migrations are idempotent.
type SchemaManager interface {
	// Migrate creates missing tables and columns using GORM AutoMigrate.
	Migrate(ctx context.Context, cfg *config.Config) error
}

// Publisher replaces the content of PostgreSQL tables with the model.
type Publisher interface {
	Publish(ctx context.Context, res *Result) error
}
