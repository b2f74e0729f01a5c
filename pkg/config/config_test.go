package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/airports/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "airports"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "airports", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "airports", "config.yaml"),
		},
		{
			msg: "regions file",
			fn:  config.RegionsFilePath,
			res: filepath.Join(tempHome, ".config", "airports", "regions.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Load defaults
		assert.Equal(t, "data", cfg.Load.InputDir)
		assert.Equal(t, "data/output", cfg.Load.OutputDir)
		assert.Equal(t, "airports.dat", cfg.Load.AirportsFile)
		assert.Equal(t, "timezoneinfo.json", cfg.Load.TimeZonesFile)
		assert.False(t, cfg.Load.Force)
		assert.False(t, cfg.Load.WithProgressBar)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "airports", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestPaths(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLoadInputDir("/in"),
		config.OptLoadOutputDir("/out"),
	})

	assert.Equal(t, filepath.Join("/in", "airports.dat"), cfg.AirportsPath())
	assert.Equal(t, filepath.Join("/in", "timezoneinfo.json"),
		cfg.TimeZonesPath())
	assert.Equal(t, filepath.Join("/out", "airports.sqlite"), cfg.ExportPath())

	cfg.Update([]config.Option{config.OptExportFile("/tmp/a.sqlite")})
	assert.Equal(t, "/tmp/a.sqlite", cfg.ExportPath())
}

func TestOptionLoadInputDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid dir",
			input:    "/var/data",
			expected: "/var/data",
		},
		{
			name:     "trims whitespace",
			input:    "  /var/data  ",
			expected: "/var/data",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "data",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLoadInputDir(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Load.InputDir)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid port",
			input:    3306,
			expected: 3306,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5432,
		},
		{
			name:     "ignores negative",
			input:    -100,
			expected: 5432,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabasePort(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid ssl mode - require",
			input:    "require",
			expected: "require",
		},
		{
			name:     "normalizes to lowercase",
			input:    "VERIFY-FULL",
			expected: "verify-full",
		},
		{
			name:     "ignores invalid value",
			input:    "invalid",
			expected: "disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseSSLMode(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets stderr",
			input:    "stderr",
			expected: "stderr",
		},
		{
			name:     "sets stdout",
			input:    " STDOUT ",
			expected: "stdout",
		},
		{
			name:     "ignores invalid value",
			input:    "syslog",
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogDestination(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid jobs number",
			input:    4,
			expected: 4,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: runtime.NumCPU(),
		},
		{
			name:     "ignores negative",
			input:    -5,
			expected: runtime.NumCPU(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptJobsNumber(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptLoadInputDir("/raw"),
			config.OptLoadForce(true),
			config.OptDatabaseHost("custom.host.com"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(2),
		}

		cfg.Update(opts)

		assert.Equal(t, "/raw", cfg.Load.InputDir)
		assert.True(t, cfg.Load.Force)
		assert.Equal(t, "custom.host.com", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 2, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, "data/output", cfg.Load.OutputDir)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptLoadOutputDir("/first"),
			config.OptLoadOutputDir("/second"),
		}

		cfg.Update(opts)

		assert.Equal(t, "/second", cfg.Load.OutputDir)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptLoadInputDir("/in"),
			config.OptLoadOutputDir("/out"),
			config.OptLoadAirportsFile("a.dat"),
			config.OptLoadTimeZonesFile("tz.json"),
			config.OptExportFile("/out/x.sqlite"),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(3306),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		}
		original.Update(opts)

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Load, newCfg.Load)
		assert.Equal(t, original.Export, newCfg.Export)
		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptLoadForce(true),
			config.OptLoadWithProgressBar(true),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.False(t, newCfg.Load.Force)
		assert.False(t, newCfg.Load.WithProgressBar)
	})
}
