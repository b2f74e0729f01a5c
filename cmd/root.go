/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/airports/internal/iofs"
	"github.com/gnames/airports/internal/iologger"
	app "github.com/gnames/airports/pkg"
	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	cfg       *config.Config
	logCloser = func() error { return nil }
)

// getRootCmd returns the root command with all subcommands.
// Each call creates a new instance.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", app.Version, app.Build,
		),
		Use:   "airports",
		Short: "Airports normalizes raw airport data and queries it",
		Long: `Airports turns a raw airports dataset into deduplicated airports,
cities, countries and locations, enriches them with timezones and
ISO country codes, and answers questions about them.

Commands:
  - load: Transform raw data into normalized JSON artifacts
  - query: Countries, cities, nearest airport, IATA lookup
  - export: Save normalized data into an SQLite file
  - publish: Copy normalized data into PostgreSQL

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (AIRPORTS_*)
  3. Config file (~/.config/airports/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host → AIRPORTS_DATABASE_HOST).

  Examples:
    AIRPORTS_LOAD_INPUT_DIR         Directory with raw files
    AIRPORTS_LOAD_OUTPUT_DIR        Directory for JSON artifacts
    AIRPORTS_DATABASE_HOST          PostgreSQL host
    AIRPORTS_DATABASE_PASSWORD      PostgreSQL password
    AIRPORTS_LOG_LEVEL              Log level (debug/info/warn/error)`,
		PersistentPreRunE:  bootstrap,
		PersistentPostRunE: closeLog,
		RunE:               runRoot,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	// Remove the automatic "airports version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for airports")

	rootCmd.AddCommand(
		getLoadCmd(),
		getQueryCmd(),
		getExportCmd(),
		getPublishCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if logCloser, err = iologger.Init(
		config.LogDir(homeDir), defaultLog, false,
	); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureRegionsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded
// configuration. Messages of the bootstrap stay in the log file.
func reconfigureLogging(cfg *config.Config) error {
	if err := logCloser(); err != nil {
		return err
	}

	var err error
	logCloser, err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true)
	return err
}

func closeLog(_ *cobra.Command, _ []string) error {
	return logCloser()
}

func runRoot(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions().
	v.SetEnvPrefix("AIRPORTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Load configuration
	_ = v.BindEnv("load.input_dir", "AIRPORTS_LOAD_INPUT_DIR")
	_ = v.BindEnv("load.output_dir", "AIRPORTS_LOAD_OUTPUT_DIR")
	_ = v.BindEnv("load.airports_file", "AIRPORTS_LOAD_AIRPORTS_FILE")
	_ = v.BindEnv("load.timezones_file", "AIRPORTS_LOAD_TIMEZONES_FILE")

	// Export configuration
	_ = v.BindEnv("export.file", "AIRPORTS_EXPORT_FILE")

	// Database configuration
	_ = v.BindEnv("database.host", "AIRPORTS_DATABASE_HOST")
	_ = v.BindEnv("database.port", "AIRPORTS_DATABASE_PORT")
	_ = v.BindEnv("database.user", "AIRPORTS_DATABASE_USER")
	_ = v.BindEnv("database.password", "AIRPORTS_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", "AIRPORTS_DATABASE_DATABASE")
	_ = v.BindEnv("database.ssl_mode", "AIRPORTS_DATABASE_SSL_MODE")

	// Log configuration
	_ = v.BindEnv("log.level", "AIRPORTS_LOG_LEVEL")
	_ = v.BindEnv("log.format", "AIRPORTS_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "AIRPORTS_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("jobs_number", "AIRPORTS_JOBS_NUMBER")

	v.AutomaticEnv()
}
