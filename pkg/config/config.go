// Package config provides configuration management for the airports app.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Load: input_dir, output_dir, airports_file, timezones_file
//   - Export: file
//   - Database: host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Load.Force, Load.WithProgressBar (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use AIRPORTS_ prefix with underscores for nesting:
//
//	AIRPORTS_LOAD_INPUT_DIR=/data/airports
//	AIRPORTS_LOAD_OUTPUT_DIR=/data/airports/output
//	AIRPORTS_DATABASE_HOST=localhost
//	AIRPORTS_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete airports configuration.
type Config struct {
	// Load contains settings of the ingestion pipeline.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	// Export contains settings of the SQLite export.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	// Database contains PostgreSQL connection settings used by publish.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber limits how many tables are copied to PostgreSQL
	// concurrently during publish.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// LoadConfig contains locations of raw inputs and normalized outputs.
type LoadConfig struct {
	// InputDir is the directory with raw airports and timezones files.
	InputDir string `mapstructure:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory for normalized JSON artifacts.
	// If all artifacts exist there, load reads them instead of
	// transforming raw data again.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// AirportsFile is the name of the raw airports file inside InputDir.
	AirportsFile string `mapstructure:"airports_file" yaml:"airports_file"`

	// TimeZonesFile is the name of the JSON file with airport timezones
	// inside InputDir.
	TimeZonesFile string `mapstructure:"timezones_file" yaml:"timezones_file"`

	// Force makes load ignore existing artifacts and run the full
	// transformation.
	Force bool `mapstructure:"-" yaml:"-"`

	// WithProgressBar shows a progress bar while raw lines are processed.
	WithProgressBar bool `mapstructure:"-" yaml:"-"`
}

// ExportConfig contains settings of the SQLite export.
type ExportConfig struct {
	// File is the path of the SQLite file. If empty, the file
	// airports.sqlite is created in Load.OutputDir.
	File string `mapstructure:"file" yaml:"file"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Load: LoadConfig{
			InputDir:      "data",
			OutputDir:     "data/output",
			AirportsFile:  "airports.dat",
			TimeZonesFile: "timezoneinfo.json",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "airports",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
