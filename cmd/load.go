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
	"context"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/gnames/airports/internal/ioartifact"
	"github.com/gnames/airports/internal/ioload"
	"github.com/gnames/airports/internal/ioregions"
	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/airports/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLoadCmd() *cobra.Command {
	var force, progress bool

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load raw airports into normalized artifacts",
		Long: `Load builds the normalized airport model.

This command:
  1. Reads JSON artifacts from the output directory if all of them exist
  2. Otherwise parses the raw airports file line by line
  3. Deduplicates countries, cities and locations
  4. Adds timezones and ISO country codes
  5. Writes airports, cities, countries and locations JSON artifacts

Raw files are read from load.input_dir of the config file.
ISO codes come from regions.yaml in the config directory.

Use --force to ignore existing artifacts.

Examples:
  airports load
  airports load --force --progress`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, force, progress)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().BoolVarP(&force, "force", "f", false,
		"transform raw data even if artifacts exist")
	loadCmd.Flags().BoolVarP(&progress, "progress", "p", false,
		"show progress bar while parsing raw data")

	return loadCmd
}

func runLoad(cmd *cobra.Command, force, progress bool) error {
	var loadOpts []config.Option
	if cmd.Flags().Changed("force") {
		loadOpts = append(loadOpts, config.OptLoadForce(force))
	}
	if cmd.Flags().Changed("progress") {
		loadOpts = append(loadOpts, config.OptLoadWithProgressBar(progress))
	}
	if len(loadOpts) > 0 {
		cfg.Update(loadOpts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := loadResult(ctx)
	if err != nil {
		return err
	}

	st := res.Stats
	gn.Info("Loaded with <em>%s</em> path in %s", res.Path,
		gnfmt.TimeString(st.Duration.Seconds()))
	if res.Path == lifecycle.FullTransform {
		gn.Info("Lines: %s, accepted: %s, skipped: %s",
			humanize.Comma(int64(st.Total)),
			humanize.Comma(int64(st.Accepted)),
			humanize.Comma(int64(st.Skipped)),
		)
		gn.Info("Timezones matched: %s of %s",
			humanize.Comma(int64(st.TimeZonesMatched)),
			humanize.Comma(int64(st.TimeZones)),
		)
		gn.Info("ISO codes found: %s, no match: %s, derivation failed: %s",
			humanize.Comma(int64(st.ISOFound)),
			humanize.Comma(int64(st.ISONoMatch)),
			humanize.Comma(int64(st.ISODerivationFailed)),
		)
	}

	reg := res.Registry
	gn.Info("Airports: %s, cities: %s, countries: %s, locations: %s",
		humanize.Comma(int64(len(reg.Airports()))),
		humanize.Comma(int64(len(reg.Cities()))),
		humanize.Comma(int64(len(reg.Countries()))),
		humanize.Comma(int64(len(reg.Locations()))),
	)
	return nil
}

// loadResult runs the loader with the current configuration. Existing
// artifacts are reused unless load is forced.
func loadResult(ctx context.Context) (*lifecycle.Result, error) {
	regions, err := ioregions.Load(config.RegionsFilePath(cfg.HomeDir))
	if err != nil {
		return nil, err
	}

	store := ioartifact.New(cfg.Load.OutputDir)
	return ioload.New(cfg, store, regions).Load(ctx)
}
