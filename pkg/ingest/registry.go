// Package ingest turns raw airport lines into normalized entities.
//
// It parses records, deduplicates countries, cities and locations,
// builds airports and enriches them with timezones and ISO country codes.
// The package does no I/O; the orchestration lives in internal/ioload.
package ingest

import (
	"strconv"

	"github.com/gnames/airports/pkg/model"
)

// Registry owns the normalized tables of one load run.
// It is not safe for concurrent use; it is written during load and only
// read afterwards.
type Registry struct {
	countries   map[string]*model.Country
	countryList []*model.Country
	maxCountry  int

	cities   map[model.CityKey]*model.City
	cityList []*model.City
	maxCity  int

	locations    map[model.LocationKey]*model.Location
	locationList []*model.Location

	airports   map[int]*model.Airport
	airportIDs []int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		countries: make(map[string]*model.Country),
		cities:    make(map[model.CityKey]*model.City),
		locations: make(map[model.LocationKey]*model.Location),
		airports:  make(map[int]*model.Airport),
	}
}

// ResolveCountry returns the country with the record's country name,
// creating it with the next synthetic id if it does not exist yet.
func (r *Registry) ResolveCountry(rec Record) *model.Country {
	if res, ok := r.countries[rec.Country]; ok {
		return res
	}
	r.maxCountry++
	res := &model.Country{ID: r.maxCountry, Name: rec.Country}
	r.countries[res.Name] = res
	r.countryList = append(r.countryList, res)
	return res
}

// ResolveCity returns the city with the record's city name inside the
// given country, creating it with the next synthetic id if needed.
func (r *Registry) ResolveCity(rec Record, country *model.Country) *model.City {
	key := model.CityKey{CityName: rec.CityName, CountryName: country.Name}
	if res, ok := r.cities[key]; ok {
		return res
	}
	r.maxCity++
	res := &model.City{
		ID:        r.maxCity,
		Name:      rec.CityName,
		CountryID: country.ID,
		Country:   country,
	}
	r.cities[key] = res
	r.cityList = append(r.cityList, res)
	return res
}

// ResolveLocation returns the location with exactly the same coordinate
// text as the record, creating it if needed.
func (r *Registry) ResolveLocation(rec Record) *model.Location {
	if res, ok := r.locations[rec.Coordinates]; ok {
		return res
	}
	res := &model.Location{
		Longitude: rec.Longitude,
		Latitude:  rec.Latitude,
		Altitude:  rec.Altitude,
	}
	r.locations[rec.Coordinates] = res
	r.locationList = append(r.locationList, res)
	return res
}

// AddAirport stores the airport. An airport with an already known id
// replaces the previous one but keeps its position.
func (r *Registry) AddAirport(a *model.Airport) {
	if _, ok := r.airports[a.ID]; !ok {
		r.airportIDs = append(r.airportIDs, a.ID)
	}
	r.airports[a.ID] = a
}

// Airport returns the airport with the given id.
func (r *Registry) Airport(id int) (*model.Airport, bool) {
	res, ok := r.airports[id]
	return res, ok
}

// Airports returns airports in the order of their first appearance.
func (r *Registry) Airports() []*model.Airport {
	res := make([]*model.Airport, len(r.airportIDs))
	for i, id := range r.airportIDs {
		res[i] = r.airports[id]
	}
	return res
}

// Countries returns countries ordered by id.
func (r *Registry) Countries() []*model.Country {
	return r.countryList
}

// Cities returns cities ordered by id.
func (r *Registry) Cities() []*model.City {
	return r.cityList
}

// Locations returns locations in the order they were created.
func (r *Registry) Locations() []*model.Location {
	return r.locationList
}

// Country returns a country by its name.
func (r *Registry) Country(name string) (*model.Country, bool) {
	res, ok := r.countries[name]
	return res, ok
}

// City returns a city by its name and its country name.
func (r *Registry) City(name, country string) (*model.City, bool) {
	res, ok := r.cities[model.CityKey{CityName: name, CountryName: country}]
	return res, ok
}

// FromCollections rebuilds a registry from previously persisted
// collections. Synthetic ids are taken as they are. Links from cities to
// countries and from airports to cities, countries and locations are
// pointed to the shared instances of the collections, so an airport and
// its city refer to the same country object.
func FromCollections(
	airports []*model.Airport,
	cities []*model.City,
	countries []*model.Country,
	locations []*model.Location,
) *Registry {
	res := NewRegistry()

	countryByID := make(map[int]*model.Country, len(countries))
	for _, c := range countries {
		countryByID[c.ID] = c
		res.countries[c.Name] = c
		res.countryList = append(res.countryList, c)
		res.maxCountry = max(res.maxCountry, c.ID)
	}

	cityByID := make(map[int]*model.City, len(cities))
	for _, c := range cities {
		if cn, ok := countryByID[c.CountryID]; ok {
			c.Country = cn
		}
		cityByID[c.ID] = c
		res.addCity(c)
	}

	for _, l := range locations {
		key := locationKey(l)
		if _, ok := res.locations[key]; !ok {
			res.locations[key] = l
		}
		res.locationList = append(res.locationList, l)
	}

	for _, a := range airports {
		if c, ok := cityByID[a.CityID]; ok {
			a.City = c
		} else if a.City != nil {
			res.addCity(a.City)
			cityByID[a.City.ID] = a.City
		}
		if c, ok := countryByID[a.CountryID]; ok {
			a.Country = c
		} else if a.Country != nil {
			res.countries[a.Country.Name] = a.Country
			res.countryList = append(res.countryList, a.Country)
			countryByID[a.Country.ID] = a.Country
			res.maxCountry = max(res.maxCountry, a.Country.ID)
		}
		if a.Location != nil {
			a.Location = res.addLocation(a.Location)
		}
		res.AddAirport(a)
	}
	return res
}

func (r *Registry) addCity(c *model.City) {
	var country string
	if c.Country != nil {
		country = c.Country.Name
	}
	r.cities[model.CityKey{CityName: c.Name, CountryName: country}] = c
	r.cityList = append(r.cityList, c)
	r.maxCity = max(r.maxCity, c.ID)
}

// addLocation returns a registered location with the same values as l,
// registering l if there is none. Persisted locations lost their source
// text, so equal values are the only way to find a shared instance.
func (r *Registry) addLocation(l *model.Location) *model.Location {
	key := locationKey(l)
	if res, ok := r.locations[key]; ok {
		return res
	}
	r.locations[key] = l
	r.locationList = append(r.locationList, l)
	return l
}

func locationKey(l *model.Location) model.LocationKey {
	return model.LocationKey{
		Longitude: formatDecimal(l.Longitude),
		Latitude:  formatDecimal(l.Latitude),
		Altitude:  formatDecimal(l.Altitude),
	}
}

func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
