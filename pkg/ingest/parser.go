package ingest

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gnames/airports/pkg/model"
)

// minFields is the number of positional fields an airport record needs:
// id, name, city, country, IATA, ICAO, longitude, latitude, altitude.
const minFields = 9

// recordShape matches the beginning of a valid airport line: an id,
// three quoted text fields, two quoted alphabetic codes and two signed
// decimals, all followed by commas.
var recordShape = regexp.MustCompile(
	`^[0-9]{1,4},(".*",){3}("[A-Za-z]+",){2}([-0-9]{1,4}(\.[0-9]{0,})?,){2}`,
)

// Record is a typed view of one accepted input line.
type Record struct {
	// Fields are raw comma-separated fields, quotes included.
	Fields []string

	ID       int
	Name     string
	CityName string
	Country  string
	IATACode string
	ICAOCode string

	// Coordinates keep the verbatim text of longitude, latitude and
	// altitude.
	Coordinates model.LocationKey

	Longitude float64
	Latitude  float64
	Altitude  float64
}

// IsRecord reports whether the line has the shape of an airport record.
func IsRecord(line string) bool {
	return recordShape.MatchString(line)
}

// SplitFields splits a line by commas that are not inside double quotes.
// Quotes stay in the fields.
func SplitFields(line string) []string {
	var res []string
	var inQuotes bool
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				res = append(res, line[start:i])
				start = i + 1
			}
		}
	}
	return append(res, line[start:])
}

// ParseRecord validates the line and converts it into a Record.
// Lines that cannot become an airport return an error that wraps
// ErrSkippedRecord.
func ParseRecord(line string) (Record, error) {
	var res Record
	if !IsRecord(line) {
		return res, fmt.Errorf("%w: line does not match airport shape",
			ErrSkippedRecord)
	}

	fields := SplitFields(line)
	if len(fields) < minFields {
		return res, fmt.Errorf("%w: expected at least %d fields, got %d",
			ErrSkippedRecord, minFields, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return res, fmt.Errorf("%w: bad id %q: %w", ErrSkippedRecord, fields[0], err)
	}

	res = Record{
		Fields:   fields,
		ID:       id,
		Name:     unquote(fields[1]),
		CityName: unquote(fields[2]),
		Country:  unquote(fields[3]),
		IATACode: unquote(fields[4]),
		ICAOCode: unquote(fields[5]),
		Coordinates: model.LocationKey{
			Longitude: fields[6],
			Latitude:  fields[7],
			Altitude:  fields[8],
		},
	}

	coords := []struct {
		name string
		raw  string
		val  *float64
	}{
		{"longitude", fields[6], &res.Longitude},
		{"latitude", fields[7], &res.Latitude},
		{"altitude", fields[8], &res.Altitude},
	}
	for _, v := range coords {
		if *v.val, err = parseDecimal(v.raw); err != nil {
			return Record{}, fmt.Errorf("%w: bad %s %q: %w",
				ErrSkippedRecord, v.name, v.raw, err)
		}
	}

	return res, nil
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}

func parseDecimal(s string) (float64, error) {
	res, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return res, nil
}
