// Package ioexport implements Exporter interface that writes the
// normalized airport model into a single SQLite file.
package ioexport

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/airports/pkg/lifecycle"
	"github.com/gnames/airports/pkg/schema"
	"github.com/gnames/gnsys"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

type exporter struct{}

// New creates a new Exporter.
func New() lifecycle.Exporter {
	return exporter{}
}

// Export writes tables of the result into a new SQLite file at path.
// The file is built next to path and renamed when complete, so an
// existing export is replaced only by a finished one.
func (e exporter) Export(
	ctx context.Context,
	res *lifecycle.Result,
	path string,
) error {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return OpenError(path, err)
	}

	tmp := path + ".tmp"
	_ = os.Remove(tmp)

	err := e.write(ctx, res, tmp)
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return WriteError(path, err)
	}

	slog.Info("Exported airports", "path", path)
	return nil
}

func (e exporter) write(
	ctx context.Context,
	res *lifecycle.Result,
	path string,
) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return OpenError(path, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = WriteError(path, cerr)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return OpenError(path, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, q := range ddl {
		if _, err = tx.ExecContext(ctx, q); err != nil {
			return WriteError(path, err)
		}
	}

	for _, t := range schema.FromResult(res, time.Now()).All() {
		if err = insertTable(ctx, tx, t); err != nil {
			return WriteError(path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func insertTable(ctx context.Context, tx *sql.Tx, t schema.Table) error {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ")
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(t.Columns, ", "), marks)

	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", t.Name, err)
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("insert into %s: %w", t.Name, err)
		}
	}
	return nil
}
