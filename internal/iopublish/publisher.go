// Package iopublish implements Publisher interface for copying
// normalized airport tables into PostgreSQL.
// This is an impure I/O package that performs bulk inserts.
package iopublish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/airports/pkg/db"
	"github.com/gnames/airports/pkg/lifecycle"
	"github.com/gnames/airports/pkg/schema"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// publisher implements the lifecycle.Publisher interface.
type publisher struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Publisher.
func New(cfg *config.Config, op db.Operator) lifecycle.Publisher {
	return &publisher{cfg: cfg, operator: op}
}

// Publish replaces content of all airport tables with rows of the
// load result. Tables are emptied together and then copied
// concurrently, at most cfg.JobsNumber at a time.
func (p *publisher) Publish(
	ctx context.Context,
	res *lifecycle.Result,
) error {
	pool := p.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	tables := schema.FromResult(res, startTime).All()

	if err := p.truncate(ctx, tables); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.cfg.JobsNumber, 1))
	for _, t := range tables {
		g.Go(func() error {
			return p.copyTable(ctx, t)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := p.analyze(ctx, tables); err != nil {
		return err
	}

	slog.Info("Published airports",
		"run_id", res.Stats.RunID,
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return nil
}

func (p *publisher) truncate(
	ctx context.Context,
	tables []schema.Table,
) error {
	q := "TRUNCATE TABLE " + tableList(tables)
	if _, err := p.operator.Pool().Exec(ctx, q); err != nil {
		return TruncateError(err)
	}
	return nil
}

// analyze updates planner statistics of freshly copied tables.
func (p *publisher) analyze(
	ctx context.Context,
	tables []schema.Table,
) error {
	q := "ANALYZE " + tableList(tables)
	if _, err := p.operator.Pool().Exec(ctx, q); err != nil {
		return AnalyzeError(err)
	}
	return nil
}

func tableList(tables []schema.Table) string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = pgx.Identifier{t.Name}.Sanitize()
	}
	return strings.Join(names, ", ")
}

// copyTable performs bulk insert using pgx CopyFrom.
func (p *publisher) copyTable(ctx context.Context, t schema.Table) error {
	n, err := p.operator.Pool().CopyFrom(
		ctx,
		pgx.Identifier{t.Name},
		t.Columns,
		pgx.CopyFromRows(t.Rows),
	)
	if err != nil {
		return CopyError(t.Name, err)
	}

	msg := fmt.Sprintf("Copied %s rows into <em>%s</em>",
		humanize.Comma(n), t.Name)
	gn.Info(msg)
	return nil
}
