package ioload_test

import (
	"context"
	"os"
	"testing"

	"github.com/gnames/airports/internal/ioartifact"
	"github.com/gnames/airports/internal/ioload"
	"github.com/gnames/airports/internal/iotesting"
	"github.com/gnames/airports/pkg/artifact"
	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/airports/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader(cfg *config.Config) lifecycle.Loader {
	store := ioartifact.New(cfg.Load.OutputDir)
	return ioload.New(cfg, store, iotesting.Regions)
}

func TestFullTransform(t *testing.T) {
	cfg := iotesting.SetupInput(t, iotesting.AirportsDat, iotesting.TimeZonesJSON)
	l := newLoader(cfg)
	assert.Equal(t, lifecycle.NotStarted, l.State())

	res, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lifecycle.Ready, l.State())
	assert.Equal(t, lifecycle.Ready, res.State)
	assert.Equal(t, lifecycle.FullTransform, res.Path)

	st := res.Stats
	assert.NotEmpty(t, st.RunID)
	assert.Equal(t, iotesting.AirportsTotal, st.Total)
	assert.Equal(t, iotesting.AirportsAccepted, st.Accepted)
	assert.Equal(t, st.Total, st.Accepted+st.Skipped)
	assert.Equal(t, 4, st.TimeZones)
	assert.Equal(t, 3, st.TimeZonesMatched)
	assert.Equal(t, 6, st.ISOFound)
	assert.Equal(t, 1, st.ISODerivationFailed)
	assert.Equal(t, 0, st.ISONoMatch)

	reg := res.Registry
	assert.Len(t, reg.Airports(), iotesting.AirportsAccepted)
	assert.Len(t, reg.Countries(), 3)
	assert.Len(t, reg.Cities(), 5)
	assert.Len(t, reg.Locations(), 6)

	goroka, ok := reg.Airport(1)
	require.True(t, ok)
	assert.Equal(t, "Goroka Airport", goroka.FullName)
	assert.Equal(t, "West Pacific Standard Time", goroka.TimeZoneName)
	assert.Equal(t, "West Pacific Standard Time", goroka.City.TimeZoneName)
	assert.Equal(t, "PG", goroka.Country.TwoLetterISOCode)

	nadzab, _ := reg.Airport(4)
	assert.Equal(t, "Nadzab Airport", nadzab.FullName)

	thule, _ := reg.Airport(6)
	assert.Empty(t, thule.Country.TwoLetterISOCode)

	for _, name := range artifact.Names {
		_, err := os.Stat(ioartifact.Path(cfg.Load.OutputDir, name))
		assert.NoError(t, err, name)
	}
}

func TestShortCircuit(t *testing.T) {
	cfg := iotesting.SetupInput(t, iotesting.AirportsDat, iotesting.TimeZonesJSON)

	first, err := newLoader(cfg).Load(context.Background())
	require.NoError(t, err)

	// raw input is not needed anymore
	require.NoError(t, os.Remove(cfg.AirportsPath()))
	require.NoError(t, os.Remove(cfg.TimeZonesPath()))

	second, err := newLoader(cfg).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lifecycle.ShortCircuitLoad, second.Path)
	assert.Equal(t, lifecycle.Ready, second.State)
	assert.Zero(t, second.Stats.Total)
	assert.NotEqual(t, first.Stats.RunID, second.Stats.RunID)

	want := first.Registry.Airports()
	got := second.Registry.Airports()
	require.Len(t, got, len(want))
	for i := range want {
		w, g := want[i], got[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.FullName, g.FullName)
		assert.Equal(t, w.TimeZoneName, g.TimeZoneName)
		assert.Equal(t, *w.Country, *g.Country)
		assert.Equal(t, w.City.ID, g.City.ID)
		assert.Equal(t, w.City.Name, g.City.Name)
		assert.Equal(t, w.City.TimeZoneName, g.City.TimeZoneName)
		assert.Equal(t, *w.Location, *g.Location)
	}
}

func TestForce(t *testing.T) {
	cfg := iotesting.SetupInput(t, iotesting.AirportsDat, iotesting.TimeZonesJSON)

	_, err := newLoader(cfg).Load(context.Background())
	require.NoError(t, err)

	cfg.Update([]config.Option{config.OptLoadForce(true)})
	res, err := newLoader(cfg).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lifecycle.FullTransform, res.Path)
	assert.Equal(t, iotesting.AirportsTotal, res.Stats.Total)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		msg       string
		airports  string
		timeZones string
		code      gn.ErrorCode
	}{
		{"no airports", "", iotesting.TimeZonesJSON, errcode.LoadInputNotFoundError},
		{"no timezones", iotesting.AirportsDat, "", errcode.LoadTimeZonesError},
		{"bad timezones", iotesting.AirportsDat, "{not json", errcode.LoadTimeZonesError},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := iotesting.SetupInput(t, v.airports, v.timeZones)
			l := newLoader(cfg)
			res, err := l.Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, res)
			assert.NotEqual(t, lifecycle.Ready, l.State())

			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)

			_, err = os.Stat(cfg.Load.OutputDir)
			assert.True(t, os.IsNotExist(err), "nothing is written")
		})
	}
}

func TestCancelled(t *testing.T) {
	cfg := iotesting.SetupInput(t, iotesting.AirportsDat, iotesting.TimeZonesJSON)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newLoader(cfg).Load(ctx)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.LoadCancelledError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, context.Canceled)

	_, err = os.Stat(cfg.Load.OutputDir)
	assert.True(t, os.IsNotExist(err))
}
