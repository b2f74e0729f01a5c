// Package artifact describes the persisted form of the normalized model:
// four collections stored side by side.
package artifact

import (
	"github.com/gnames/airports/pkg/ingest"
	"github.com/gnames/airports/pkg/model"
)

// Names of persisted collections.
const (
	AirportsName  = "airports"
	CitiesName    = "cities"
	CountriesName = "countries"
	LocationsName = "locations"
)

// Names lists all collections in the order they are written.
var Names = []string{AirportsName, CitiesName, CountriesName, LocationsName}

// Collections are the four tables of the normalized model.
type Collections struct {
	Airports  []*model.Airport
	Cities    []*model.City
	Countries []*model.Country
	Locations []*model.Location
}

// Store persists Collections. A store is either complete, having all four
// collections, or it is treated as empty.
type Store interface {
	// Exists reports whether all collections are present.
	Exists() (bool, error)

	// Read loads all collections.
	Read() (*Collections, error)

	// Write replaces all collections. Each collection is replaced
	// atomically.
	Write(*Collections) error
}

// FromRegistry takes collections of a registry.
func FromRegistry(reg *ingest.Registry) *Collections {
	return &Collections{
		Airports:  reg.Airports(),
		Cities:    reg.Cities(),
		Countries: reg.Countries(),
		Locations: reg.Locations(),
	}
}

// Registry rebuilds a registry with links between entities restored.
func (c *Collections) Registry() *ingest.Registry {
	return ingest.FromCollections(c.Airports, c.Cities, c.Countries, c.Locations)
}
