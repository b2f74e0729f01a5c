package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "airports"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/airports by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/airports/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/airports/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// RegionsFilePath returns the full path to the regions.yaml reference
// table used for ISO code enrichment.
func RegionsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "regions.yaml")
}

// AirportsPath returns the path of the raw airports file.
func (c *Config) AirportsPath() string {
	return filepath.Join(c.Load.InputDir, c.Load.AirportsFile)
}

// TimeZonesPath returns the path of the timezones JSON file.
func (c *Config) TimeZonesPath() string {
	return filepath.Join(c.Load.InputDir, c.Load.TimeZonesFile)
}

// ExportPath returns the path of the SQLite export file.
func (c *Config) ExportPath() string {
	if c.Export.File != "" {
		return c.Export.File
	}
	return filepath.Join(c.Load.OutputDir, "airports.sqlite")
}
