package lifecycle

import (
	"fmt"
	"time"

	"github.com/gnames/airports/pkg/ingest"
)

// State is a step of a load run. A run moves from NotStarted to one of
// ShortCircuitLoad or FullTransform and then to Ready, never back.
type State int

const (
	// NotStarted is the state before Load is called.
	NotStarted State = iota

	// ShortCircuitLoad reads previously persisted artifacts instead of
	// parsing the raw input.
	ShortCircuitLoad

	// FullTransform parses, resolves, enriches and persists the raw input.
	FullTransform

	// Ready means the normalized model is built and will not change.
	Ready
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case ShortCircuitLoad:
		return "short-circuit load"
	case FullTransform:
		return "full transform"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats summarize a load run. Line counters and enrichment counters stay
// zero for a short-circuit load.
type Stats struct {
	RunID string `json:"runId"`

	// Total is the number of lines read from the raw input.
	Total int `json:"total"`

	// Accepted lines became airports, Skipped lines did not.
	// Accepted + Skipped == Total.
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`

	// TimeZones is the number of timezone records, TimeZonesMatched is how
	// many of them found an airport.
	TimeZones        int `json:"timeZones"`
	TimeZonesMatched int `json:"timeZonesMatched"`

	ISOFound            int `json:"isoFound"`
	ISONoMatch          int `json:"isoNoMatch"`
	ISODerivationFailed int `json:"isoDerivationFailed"`

	Duration time.Duration `json:"duration"`
}

// Result is the outcome of a successful load.
type Result struct {
	Registry *ingest.Registry

	Stats Stats

	// Path is either ShortCircuitLoad or FullTransform.
	Path State

	// State is Ready for a returned Result.
	State State
}
