// Package ioload builds the normalized airport model from raw files or
// from previously persisted artifacts.
package ioload

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/airports/pkg/artifact"
	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/airports/pkg/ingest"
	"github.com/gnames/airports/pkg/lifecycle"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

type loader struct {
	cfg     *config.Config
	store   artifact.Store
	regions ingest.RegionTable
	state   lifecycle.State
}

// New creates a Loader that persists its result in store and takes ISO
// codes of countries from regions.
func New(
	cfg *config.Config,
	store artifact.Store,
	regions ingest.RegionTable,
) lifecycle.Loader {
	return &loader{
		cfg:     cfg,
		store:   store,
		regions: regions,
		state:   lifecycle.NotStarted,
	}
}

func (l *loader) State() lifecycle.State {
	return l.state
}

func (l *loader) Load(ctx context.Context) (*lifecycle.Result, error) {
	start := time.Now()
	stats := lifecycle.Stats{RunID: uuid.NewString()}
	log := slog.With("run_id", stats.RunID)

	exists, err := l.store.Exists()
	if err != nil {
		return nil, err
	}

	var reg *ingest.Registry
	if exists && !l.cfg.Load.Force {
		l.state = lifecycle.ShortCircuitLoad
		log.Info("Loading normalized artifacts", "dir", l.cfg.Load.OutputDir)
		reg, err = l.readArtifacts()
	} else {
		l.state = lifecycle.FullTransform
		log.Info("Transforming raw input",
			"airports", l.cfg.AirportsPath(),
			"timezones", l.cfg.TimeZonesPath(),
			"force", l.cfg.Load.Force,
		)
		reg, err = l.transform(ctx, &stats, log)
	}
	if err != nil {
		return nil, err
	}

	res := &lifecycle.Result{
		Registry: reg,
		Path:     l.state,
	}
	l.state = lifecycle.Ready
	res.State = l.state

	stats.Duration = time.Since(start)
	res.Stats = stats

	log.Info("Airports are ready",
		"path", res.Path.String(),
		"airports", len(reg.Airports()),
		"cities", len(reg.Cities()),
		"countries", len(reg.Countries()),
		"locations", len(reg.Locations()),
		"duration", gnfmt.TimeString(stats.Duration.Seconds()),
	)
	return res, nil
}

func (l *loader) readArtifacts() (*ingest.Registry, error) {
	c, err := l.store.Read()
	if err != nil {
		return nil, err
	}
	return c.Registry(), nil
}
