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

	"github.com/gnames/airports/internal/iodb"
	"github.com/gnames/airports/internal/iopublish"
	"github.com/gnames/airports/internal/ioschema"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPublishCmd returns the publish command.
func getPublishCmd() *cobra.Command {
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish normalized airports to PostgreSQL",
		Long: `Publish copies the normalized airport model into PostgreSQL.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Creates or updates tables using GORM AutoMigrate
  3. Sets "C" collation on name columns
  4. Replaces rows of all airport tables
  5. Updates planner statistics with ANALYZE

Tables are copied concurrently, up to jobs_number at a time.

Examples:
  airports publish
  AIRPORTS_DATABASE_HOST=db.local airports publish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPublish()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return publishCmd
}

func runPublish() error {
	ctx := context.Background()

	res, err := loadResult(ctx)
	if err != nil {
		return err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	if err = ioschema.NewManager(op).Migrate(ctx, cfg); err != nil {
		return err
	}

	if err = iopublish.New(cfg, op).Publish(ctx, res); err != nil {
		return err
	}

	gn.Info("Airports are published")
	return nil
}
