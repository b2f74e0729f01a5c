package ioexport

// ddl creates airport tables in an empty SQLite database. Column names
// follow pkg/schema.
var ddl = []string{
	`CREATE TABLE countries (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		iso2 TEXT,
		iso3 TEXT
	)`,
	`CREATE TABLE cities (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		country_id INTEGER NOT NULL REFERENCES countries(id),
		time_zone_name TEXT
	)`,
	`CREATE TABLE locations (
		id INTEGER PRIMARY KEY,
		longitude REAL NOT NULL,
		latitude REAL NOT NULL,
		altitude REAL NOT NULL,
		geohash TEXT
	)`,
	`CREATE TABLE airports (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		full_name TEXT NOT NULL,
		iata_code TEXT,
		icao_code TEXT,
		city_id INTEGER NOT NULL REFERENCES cities(id),
		country_id INTEGER NOT NULL REFERENCES countries(id),
		location_id INTEGER NOT NULL REFERENCES locations(id),
		time_zone_name TEXT
	)`,
	`CREATE TABLE metadata (
		id INTEGER PRIMARY KEY,
		run_id TEXT NOT NULL,
		airports INTEGER NOT NULL,
		cities INTEGER NOT NULL,
		countries INTEGER NOT NULL,
		locations INTEGER NOT NULL,
		accepted INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE INDEX idx_airports_iata_code ON airports(iata_code)`,
	`CREATE INDEX idx_airports_city_id ON airports(city_id)`,
	`CREATE INDEX idx_locations_geohash ON locations(geohash)`,
}
