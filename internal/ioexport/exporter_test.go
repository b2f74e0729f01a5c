package ioexport_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/airports/internal/ioexport"
	"github.com/gnames/airports/internal/iotesting"
	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestExport(t *testing.T) {
	cfg, res := iotesting.LoadResult(t)
	path := cfg.ExportPath()

	exp := ioexport.New()
	// second run replaces the first file
	for range 2 {
		err := exp.Export(context.Background(), res, path)
		require.NoError(t, err)
	}

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is removed")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	counts := map[string]int{
		"airports":  iotesting.AirportsAccepted,
		"cities":    5,
		"countries": 3,
		"locations": 6,
		"metadata":  1,
	}
	for table, want := range counts {
		var n int
		err = db.QueryRow("SELECT count(*) FROM " + table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, want, n, table)
	}

	var fullName, iso2, geohash string
	err = db.QueryRow(`
		SELECT a.full_name, c.iso2, l.geohash
		FROM airports a
			JOIN countries c ON c.id = a.country_id
			JOIN locations l ON l.id = a.location_id
		WHERE a.iata_code = 'GKA'`,
	).Scan(&fullName, &iso2, &geohash)
	require.NoError(t, err)
	assert.Equal(t, "Goroka Airport", fullName)
	assert.Equal(t, "PG", iso2)
	assert.NotEmpty(t, geohash)

	var runID string
	err = db.QueryRow("SELECT run_id FROM metadata").Scan(&runID)
	require.NoError(t, err)
	assert.Equal(t, res.Stats.RunID, runID)
}

func TestExport_Cancelled(t *testing.T) {
	cfg, res := iotesting.LoadResult(t)
	path := filepath.Join(cfg.Load.OutputDir, "cancelled.sqlite")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ioexport.New().Export(ctx, res, path)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial export")
}

func TestErrors_Structure(t *testing.T) {
	orig := errors.New("root cause")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"OpenError", ioexport.OpenError("/a.sqlite", orig), errcode.ExportOpenError},
		{"WriteError", ioexport.WriteError("/a.sqlite", orig), errcode.ExportWriteError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Equal(t, []any{"/a.sqlite"}, gnErr.Vars)
			assert.ErrorIs(t, gnErr.Err, orig)
		})
	}
}
