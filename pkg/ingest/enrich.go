package ingest

import (
	"log/slog"

	"github.com/gnames/airports/pkg/model"
)

// ISOStats counts outcomes of ISO code enrichment. Every airport is one
// lookup, so a country shared by several airports is counted several
// times.
type ISOStats struct {
	Found            int
	NoMatch          int
	DerivationFailed int
}

// ApplyTimeZones sets timezone names of airports and of their cities
// from the timezone records. Records for unknown airports are ignored.
// It returns the number of records that matched an airport.
func ApplyTimeZones(reg *Registry, zones []model.AirportTimeZoneInfo) int {
	var res int
	for _, z := range zones {
		a, ok := reg.Airport(z.AirportID)
		if !ok {
			continue
		}
		res++
		a.TimeZoneName = z.TimeZoneInfoID
		if a.City != nil {
			a.City.TimeZoneName = z.TimeZoneInfoID
		}
	}
	return res
}

// ApplyISOCodes looks up the country of every airport in the region
// table and sets its ISO codes when they can be derived. Misses leave
// codes empty and are never fatal.
func ApplyISOCodes(reg *Registry, table RegionTable) ISOStats {
	var res ISOStats
	for _, a := range reg.Airports() {
		if a.Country == nil {
			continue
		}

		m := table.Lookup(a.Country.Name)
		switch m.Status {
		case RegionFound:
			res.Found++
			a.Country.TwoLetterISOCode = m.TwoLetter
			a.Country.ThreeLetterISOCode = m.ThreeLetter
		case RegionDerivationFailed:
			res.DerivationFailed++
			slog.Info("Region is not correct",
				"country", a.Country.Name,
				"locale", m.Entry.Name,
				"english_name", m.Entry.EnglishName,
				"error", m.Err,
			)
		default:
			res.NoMatch++
		}
	}
	return res
}
