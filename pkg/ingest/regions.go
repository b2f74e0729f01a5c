package ingest

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// RegionStatus tells how a country name lookup in a region table ended.
type RegionStatus int

const (
	// RegionNoMatch means no entry mentions the country name.
	RegionNoMatch RegionStatus = iota
	// RegionDerivationFailed means an entry matched, but ISO codes
	// cannot be derived from it.
	RegionDerivationFailed
	// RegionFound means ISO codes were derived.
	RegionFound
)

func (s RegionStatus) String() string {
	switch s {
	case RegionNoMatch:
		return "no match"
	case RegionDerivationFailed:
		return "derivation failed"
	case RegionFound:
		return "found"
	default:
		return fmt.Sprintf("RegionStatus(%d)", int(s))
	}
}

// RegionTable is a read-only reference of locale regions.
type RegionTable interface {
	// Lookup finds the first entry whose English name contains
	// countryName and derives ISO codes from it.
	Lookup(countryName string) RegionMatch
}

// RegionEntry is one locale of a region table.
type RegionEntry struct {
	// Name is a BCP 47 locale code with a region subtag, like "en-US".
	Name string `yaml:"name"`

	// EnglishName is a descriptive name, like "English (United States)".
	EnglishName string `yaml:"english_name"`
}

// RegionMatch is the result of RegionTable.Lookup.
type RegionMatch struct {
	Status RegionStatus

	// Entry is the matched entry, if any.
	Entry RegionEntry

	TwoLetter   string
	ThreeLetter string

	// Err explains why derivation failed.
	Err error
}

// Regions is a RegionTable backed by an ordered slice of entries.
type Regions []RegionEntry

// Lookup returns the result for the first entry in slice order whose
// EnglishName contains countryName as a substring.
func (rs Regions) Lookup(countryName string) RegionMatch {
	for _, e := range rs {
		if !strings.Contains(e.EnglishName, countryName) {
			continue
		}
		two, three, err := e.Derive()
		if err != nil {
			return RegionMatch{Status: RegionDerivationFailed, Entry: e, Err: err}
		}
		return RegionMatch{
			Status:      RegionFound,
			Entry:       e,
			TwoLetter:   two,
			ThreeLetter: three,
		}
	}
	return RegionMatch{Status: RegionNoMatch}
}

// Derive returns ISO 3166-1 alpha-2 and alpha-3 codes of the entry's
// region. The locale must name its region explicitly and the region has
// to be a country.
func (e RegionEntry) Derive() (string, string, error) {
	tag, err := language.Parse(e.Name)
	if err != nil {
		return "", "", fmt.Errorf("cannot parse locale %q: %w", e.Name, err)
	}

	region, conf := tag.Region()
	if conf != language.Exact {
		return "", "", fmt.Errorf("locale %q has no region", e.Name)
	}
	if !region.IsCountry() {
		return "", "", fmt.Errorf("region %q of locale %q is not a country",
			region, e.Name)
	}

	return region.String(), region.ISO3(), nil
}
