package ingest

import (
	"strings"

	"github.com/gnames/airports/pkg/model"
)

const airportWord = "Airport"

// BuildAirport assembles an airport from a record and its resolved
// country, city and location.
func BuildAirport(
	rec Record,
	country *model.Country,
	city *model.City,
	location *model.Location,
) *model.Airport {
	return &model.Airport{
		ID:        rec.ID,
		Name:      rec.Name,
		FullName:  GenerateFullName(rec.Name),
		IATACode:  rec.IATACode,
		ICAOCode:  rec.ICAOCode,
		CityID:    city.ID,
		City:      city,
		CountryID: country.ID,
		Country:   country,
		Location:  location,
	}
}

// GenerateFullName appends " Airport" to the name unless its last seven
// bytes already spell "airport" in any case.
func GenerateFullName(name string) string {
	n := len(airportWord)
	if len(name) < n {
		return name + " " + airportWord
	}
	if strings.EqualFold(name[len(name)-n:], airportWord) {
		return name
	}
	return name + " " + airportWord
}

// AddRecord resolves entities of the record, builds its airport and
// stores it in the registry.
func (r *Registry) AddRecord(rec Record) *model.Airport {
	country := r.ResolveCountry(rec)
	city := r.ResolveCity(rec, country)
	location := r.ResolveLocation(rec)
	res := BuildAirport(rec, country, city, location)
	r.AddAirport(res)
	return res
}
