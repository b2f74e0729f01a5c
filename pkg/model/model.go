// Package model contains the normalized entities produced by the ingestion
// pipeline: countries, cities, locations and airports.
//
// Countries and cities get synthetic ids during a load run. Airports keep
// ids from the source records. Locations have no id, they are shared by
// reference between airports with identical coordinates.
package model

// Country is a deduplicated country. Name is its dedup key.
type Country struct {
	// ID is a synthetic id, dense and starting at 1 within a load run.
	ID int `json:"id"`

	// Name of the country as it appears in the source.
	Name string `json:"name"`

	// TwoLetterISOCode is ISO 3166-1 alpha-2 code. Empty if the region
	// reference table had no usable entry for the country.
	TwoLetterISOCode string `json:"twoLetterIsoCode,omitempty"`

	// ThreeLetterISOCode is ISO 3166-1 alpha-3 code. Empty if the region
	// reference table had no usable entry for the country.
	ThreeLetterISOCode string `json:"threeLetterIsoCode,omitempty"`
}

// City is a deduplicated city. The same name in different countries
// produces different cities.
type City struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	CountryID int      `json:"countryId"`
	Country   *Country `json:"country"`

	// TimeZoneName is copied from an airport of the city during
	// timezone enrichment.
	TimeZoneName string `json:"timeZoneName,omitempty"`
}

// Location holds coordinates of one or more airports.
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Altitude  float64 `json:"altitude"`
}

// Airport is built from one valid source record.
type Airport struct {
	// ID is taken verbatim from the source record.
	ID int `json:"id"`

	// Name is the short name from the source.
	Name string `json:"name"`

	// FullName is the display name, usually Name with " Airport" suffix.
	FullName string `json:"fullName"`

	IATACode     string    `json:"iataCode"`
	ICAOCode     string    `json:"icaoCode"`
	CityID       int       `json:"cityId"`
	City         *City     `json:"city"`
	CountryID    int       `json:"countryId"`
	Country      *Country  `json:"country"`
	Location     *Location `json:"location"`
	TimeZoneName string    `json:"timeZoneName,omitempty"`
}

// AirportTimeZoneInfo is a record of the auxiliary timezone dataset.
// It is used only during enrichment and is not persisted.
type AirportTimeZoneInfo struct {
	AirportID      int    `json:"airportId"`
	TimeZoneInfoID string `json:"timeZoneInfoId"`
}

// CityKey is the dedup key of a city.
type CityKey struct {
	CityName    string
	CountryName string
}

// LocationKey is the dedup key of a location. It keeps coordinates as
// they were written in the source, so "12.0" and "12.00" differ.
type LocationKey struct {
	Longitude string
	Latitude  string
	Altitude  string
}
