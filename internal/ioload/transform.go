package ioload

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/airports/pkg/artifact"
	"github.com/gnames/airports/pkg/ingest"
	"github.com/gnames/airports/pkg/lifecycle"
	"github.com/gnames/airports/pkg/model"
	"github.com/gnames/gnfmt"
)

// maxLineSize limits the length of one raw line.
const maxLineSize = 1024 * 1024

func (l *loader) transform(
	ctx context.Context,
	stats *lifecycle.Stats,
	log *slog.Logger,
) (*ingest.Registry, error) {
	reg, err := l.parseAirports(ctx, stats, log)
	if err != nil {
		return nil, err
	}

	zones, err := readTimeZones(l.cfg.TimeZonesPath())
	if err != nil {
		return nil, err
	}
	stats.TimeZones = len(zones)
	stats.TimeZonesMatched = ingest.ApplyTimeZones(reg, zones)

	iso := ingest.ApplyISOCodes(reg, l.regions)
	stats.ISOFound = iso.Found
	stats.ISONoMatch = iso.NoMatch
	stats.ISODerivationFailed = iso.DerivationFailed

	log.Info("Enrichment finished",
		"timezones", stats.TimeZones,
		"timezones_matched", stats.TimeZonesMatched,
		"iso_found", stats.ISOFound,
		"iso_no_match", stats.ISONoMatch,
		"iso_derivation_failed", stats.ISODerivationFailed,
	)

	if err = ctx.Err(); err != nil {
		return nil, CancelledError(err)
	}

	if err = l.store.Write(artifact.FromRegistry(reg)); err != nil {
		return nil, err
	}
	return reg, nil
}

func (l *loader) parseAirports(
	ctx context.Context,
	stats *lifecycle.Stats,
	log *slog.Logger,
) (*ingest.Registry, error) {
	path := l.cfg.AirportsPath()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, InputNotFoundError(path, err)
		}
		return nil, InputReadError(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if l.cfg.Load.WithProgressBar {
		if info, err := f.Stat(); err == nil {
			bar := newProgressBar(info.Size(), "airports: ")
			defer bar.Finish()
			r = bar.NewProxyReader(f)
		}
	}

	reg := ingest.NewRegistry()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return nil, CancelledError(err)
		}

		stats.Total++
		rec, err := ingest.ParseRecord(scanner.Text())
		if err != nil {
			stats.Skipped++
			log.Debug("Skipping line", "line", stats.Total, "reason", err)
			continue
		}
		stats.Accepted++
		reg.AddRecord(rec)
	}
	if err = scanner.Err(); err != nil {
		return nil, InputReadError(path, err)
	}

	log.Info("Raw airports parsed",
		"total", stats.Total,
		"accepted", stats.Accepted,
		"skipped", stats.Skipped,
	)
	return reg, nil
}

func readTimeZones(path string) ([]model.AirportTimeZoneInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, TimeZonesError(path, err)
	}

	var res []model.AirportTimeZoneInfo
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		return nil, TimeZonesError(path, err)
	}
	return res, nil
}

func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
