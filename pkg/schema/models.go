// Package schema provides relational models of the normalized airport
// data. The same rows are used by the SQLite export and by the
// PostgreSQL publish.
package schema

import "time"

// Country is a row of the countries table.
type Country struct {
	ID                 int    `gorm:"primaryKey;autoIncrement:false"`
	Name               string `gorm:"type:varchar(255);not null;index"`
	TwoLetterISOCode   string `gorm:"column:iso2;type:varchar(2)"`
	ThreeLetterISOCode string `gorm:"column:iso3;type:varchar(3)"`
}

func (Country) TableName() string { return "countries" }

// City is a row of the cities table.
type City struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false"`
	Name         string `gorm:"type:varchar(255);not null;index"`
	CountryID    int    `gorm:"not null;index"`
	TimeZoneName string `gorm:"type:varchar(100)"`
}

func (City) TableName() string { return "cities" }

// Location is a row of the locations table. Locations have no id in the
// normalized model, the row id is their position starting at 1.
type Location struct {
	ID        int     `gorm:"primaryKey;autoIncrement:false"`
	Longitude float64 `gorm:"not null"`
	Latitude  float64 `gorm:"not null"`
	Altitude  float64 `gorm:"not null"`

	// Geohash of the point, useful for proximity lookups by prefix.
	Geohash string `gorm:"type:varchar(12);index"`
}

func (Location) TableName() string { return "locations" }

// Airport is a row of the airports table.
type Airport struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false"`
	Name         string `gorm:"type:varchar(255);not null"`
	FullName     string `gorm:"type:varchar(255);not null"`
	IATACode     string `gorm:"column:iata_code;type:varchar(3);index"`
	ICAOCode     string `gorm:"column:icao_code;type:varchar(4);index"`
	CityID       int    `gorm:"not null;index"`
	CountryID    int    `gorm:"not null;index"`
	LocationID   int    `gorm:"not null;index"`
	TimeZoneName string `gorm:"type:varchar(100)"`
}

func (Airport) TableName() string { return "airports" }

// Metadata describes the load run the tables came from.
type Metadata struct {
	ID        int    `gorm:"primaryKey;autoIncrement:false"`
	RunID     string `gorm:"type:varchar(36);not null"`
	Airports  int
	Cities    int
	Countries int
	Locations int
	Accepted  int
	Skipped   int
	CreatedAt time.Time
}

func (Metadata) TableName() string { return "metadata" }
