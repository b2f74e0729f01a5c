package schema

import (
	"time"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/gnames/airports/pkg/lifecycle"
	"github.com/gnames/airports/pkg/model"
)

// Table is a named set of rows ready for bulk insertion. Values of every
// row follow the order of Columns.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Tables keeps rows of all tables of one load result.
type Tables struct {
	Countries []Country
	Cities    []City
	Locations []Location
	Airports  []Airport
	Metadata  Metadata
}

// FromResult converts a load result to rows. Locations get ids by their
// position, airports refer to them by these ids.
func FromResult(res *lifecycle.Result, now time.Time) *Tables {
	reg := res.Registry
	var t Tables

	for _, c := range reg.Countries() {
		t.Countries = append(t.Countries, Country{
			ID:                 c.ID,
			Name:               c.Name,
			TwoLetterISOCode:   c.TwoLetterISOCode,
			ThreeLetterISOCode: c.ThreeLetterISOCode,
		})
	}

	for _, c := range reg.Cities() {
		t.Cities = append(t.Cities, City{
			ID:           c.ID,
			Name:         c.Name,
			CountryID:    c.CountryID,
			TimeZoneName: c.TimeZoneName,
		})
	}

	locIDs := make(map[*model.Location]int)
	for i, l := range reg.Locations() {
		id := i + 1
		if _, ok := locIDs[l]; !ok {
			locIDs[l] = id
		}
		t.Locations = append(t.Locations, Location{
			ID:        id,
			Longitude: l.Longitude,
			Latitude:  l.Latitude,
			Altitude:  l.Altitude,
			Geohash:   geohash.Encode(l.Latitude, l.Longitude),
		})
	}

	for _, a := range reg.Airports() {
		t.Airports = append(t.Airports, Airport{
			ID:           a.ID,
			Name:         a.Name,
			FullName:     a.FullName,
			IATACode:     a.IATACode,
			ICAOCode:     a.ICAOCode,
			CityID:       a.CityID,
			CountryID:    a.CountryID,
			LocationID:   locIDs[a.Location],
			TimeZoneName: a.TimeZoneName,
		})
	}

	t.Metadata = Metadata{
		ID:        1,
		RunID:     res.Stats.RunID,
		Airports:  len(t.Airports),
		Cities:    len(t.Cities),
		Countries: len(t.Countries),
		Locations: len(t.Locations),
		Accepted:  res.Stats.Accepted,
		Skipped:   res.Stats.Skipped,
		CreatedAt: now,
	}
	return &t
}

// All returns every table in an order that satisfies references between
// them.
func (t *Tables) All() []Table {
	countries := Table{
		Name:    Country{}.TableName(),
		Columns: []string{"id", "name", "iso2", "iso3"},
	}
	for _, v := range t.Countries {
		countries.Rows = append(countries.Rows,
			[]any{v.ID, v.Name, v.TwoLetterISOCode, v.ThreeLetterISOCode})
	}

	cities := Table{
		Name:    City{}.TableName(),
		Columns: []string{"id", "name", "country_id", "time_zone_name"},
	}
	for _, v := range t.Cities {
		cities.Rows = append(cities.Rows,
			[]any{v.ID, v.Name, v.CountryID, v.TimeZoneName})
	}

	locations := Table{
		Name: Location{}.TableName(),
		Columns: []string{
			"id", "longitude", "latitude", "altitude", "geohash",
		},
	}
	for _, v := range t.Locations {
		locations.Rows = append(locations.Rows,
			[]any{v.ID, v.Longitude, v.Latitude, v.Altitude, v.Geohash})
	}

	airports := Table{
		Name: Airport{}.TableName(),
		Columns: []string{
			"id", "name", "full_name", "iata_code", "icao_code",
			"city_id", "country_id", "location_id", "time_zone_name",
		},
	}
	for _, v := range t.Airports {
		airports.Rows = append(airports.Rows, []any{
			v.ID, v.Name, v.FullName, v.IATACode, v.ICAOCode,
			v.CityID, v.CountryID, v.LocationID, v.TimeZoneName,
		})
	}

	m := t.Metadata
	metadata := Table{
		Name: Metadata{}.TableName(),
		Columns: []string{
			"id", "run_id", "airports", "cities", "countries", "locations",
			"accepted", "skipped", "created_at",
		},
		Rows: [][]any{{
			m.ID, m.RunID, m.Airports, m.Cities, m.Countries, m.Locations,
			m.Accepted, m.Skipped, m.CreatedAt,
		}},
	}

	return []Table{countries, cities, locations, airports, metadata}
}
