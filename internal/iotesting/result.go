package iotesting

import (
	"context"
	"testing"

	"github.com/gnames/airports/internal/ioartifact"
	"github.com/gnames/airports/internal/ioload"
	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/airports/pkg/lifecycle"
)

// LoadResult runs a full transform of the fixtures and returns the
// config it used together with the result.
func LoadResult(t *testing.T) (*config.Config, *lifecycle.Result) {
	t.Helper()

	cfg := SetupInput(t, AirportsDat, TimeZonesJSON)
	store := ioartifact.New(cfg.Load.OutputDir)
	res, err := ioload.New(cfg, store, Regions).Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to load fixtures: %v", err)
	}
	return cfg, res
}
