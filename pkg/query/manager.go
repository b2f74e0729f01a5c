// Package query answers lookups over a loaded, read-only collection of
// airports.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gnames/airports/pkg/model"
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used to turn angles into
// distances.
const EarthRadiusKm = 6371.0088

// GroupCount is the number of airports that share a name of a group, for
// example a country.
type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Manager runs queries over airports. It never modifies them, so it is
// safe for concurrent use once created.
type Manager struct {
	airports []*model.Airport
}

// New creates a Manager for the given airports.
func New(airports []*model.Airport) *Manager {
	return &Manager{airports: airports}
}

// Len returns the number of airports.
func (m *Manager) Len() int {
	return len(m.airports)
}

// CountryList groups airports by country name. Groups are sorted by name.
func (m *Manager) CountryList() []GroupCount {
	counts := m.CountryMap()
	res := make([]GroupCount, 0, len(counts))
	for k, v := range counts {
		res = append(res, GroupCount{Name: k, Count: v})
	}
	slices.SortFunc(res, func(a, b GroupCount) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return res
}

// CountryMap returns the number of airports per country name.
func (m *Manager) CountryMap() map[string]int {
	res := make(map[string]int)
	for _, a := range m.airports {
		res[countryName(a)]++
	}
	return res
}

// CitiesByAirportCount returns names of cities that have the largest
// number of airports. All cities tied at the maximum are returned,
// sorted by name. Cities are grouped by name only.
func (m *Manager) CitiesByAirportCount() []string {
	counts := make(map[string]int)
	var top int
	for _, a := range m.airports {
		name := cityName(a)
		counts[name]++
		top = max(top, counts[name])
	}

	res := make([]string, 0)
	for k, v := range counts {
		if v == top {
			res = append(res, k)
		}
	}
	slices.Sort(res)
	return res
}

// NearestAirport returns the airport closest to the point and the
// great-circle distance to it in kilometers. When several airports are at
// the same distance, the first one in collection order wins. Airports
// without a location are ignored.
func (m *Manager) NearestAirport(
	longitude, latitude float64,
) (*model.Airport, float64, error) {
	point := s2.LatLngFromDegrees(latitude, longitude)

	var res *model.Airport
	var dist float64
	for _, a := range m.airports {
		if a.Location == nil {
			continue
		}
		ll := s2.LatLngFromDegrees(a.Location.Latitude, a.Location.Longitude)
		d := point.Distance(ll).Radians() * EarthRadiusKm
		if res == nil || d < dist {
			res = a
			dist = d
		}
	}

	if res == nil {
		return nil, 0, NoAirportsError()
	}
	return res, dist, nil
}

// AirportByIATACode finds the only airport with the given IATA code.
// Both the argument and stored codes are compared after trimming spaces.
func (m *Manager) AirportByIATACode(code string) (*model.Airport, error) {
	code = strings.TrimSpace(code)

	var res *model.Airport
	var ids []int
	for _, a := range m.airports {
		if strings.TrimSpace(a.IATACode) != code {
			continue
		}
		res = a
		ids = append(ids, a.ID)
	}

	switch len(ids) {
	case 0:
		return nil, AirportNotFoundError(code)
	case 1:
		return res, nil
	default:
		return nil, AmbiguousIATAError(code, ids)
	}
}

func countryName(a *model.Airport) string {
	if a.Country != nil {
		return a.Country.Name
	}
	if a.City != nil && a.City.Country != nil {
		return a.City.Country.Name
	}
	return ""
}

func cityName(a *model.Airport) string {
	if a.City == nil {
		return ""
	}
	return a.City.Name
}
