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

	"github.com/gnames/airports/internal/ioexport"
	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var file string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export normalized airports into an SQLite file",
		Long: `Export saves the normalized airport model into an SQLite file.

The file has countries, cities, locations, airports and metadata
tables. Locations carry a geohash for proximity lookups by prefix.
An existing file is replaced.

By default the file is airports.sqlite in load.output_dir.

Examples:
  airports export
  airports export --file /tmp/airports.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd, file)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(&file, "file", "o", "",
		"path of the SQLite file")

	return exportCmd
}

func runExport(cmd *cobra.Command, file string) error {
	if cmd.Flags().Changed("file") {
		cfg.Update([]config.Option{config.OptExportFile(file)})
	}

	ctx := context.Background()
	res, err := loadResult(ctx)
	if err != nil {
		return err
	}

	path := cfg.ExportPath()
	if err = ioexport.New().Export(ctx, res, path); err != nil {
		return err
	}

	gn.Info("Airports are exported to <em>%s</em>", path)
	return nil
}
