// Package iotesting provides shared test utilities and fixtures.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/airports/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "airports_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Database settings can be overridden with AIRPORTS_DATABASE_HOST,
// AIRPORTS_DATABASE_USER and AIRPORTS_DATABASE_PASSWORD. The database name
// is always TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("AIRPORTS_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("AIRPORTS_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("AIRPORTS_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts,
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptLogDestination("stderr"),
	)
	cfg.Update(opts)

	return cfg
}

// SetupInput writes raw airports and timezones into a temporary input
// directory and returns a config that reads from it and writes artifacts
// into a temporary output directory. Empty content means the file is not
// created.
func SetupInput(t *testing.T, airports, timeZones string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	inputDir := filepath.Join(dir, "input")
	outputDir := filepath.Join(dir, "output")
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		t.Fatalf("Failed to create input dir: %v", err)
	}

	cfg := GetTestConfig()
	cfg.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptLoadInputDir(inputDir),
		config.OptLoadOutputDir(outputDir),
	})

	files := map[string]string{
		cfg.AirportsPath():  airports,
		cfg.TimeZonesPath(): timeZones,
	}
	for path, content := range files {
		if content == "" {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}

	return cfg
}
