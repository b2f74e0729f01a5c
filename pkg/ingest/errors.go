package ingest

import "errors"

// ErrSkippedRecord marks an input line that cannot become an airport.
// Such lines are counted and skipped, they never abort a load.
var ErrSkippedRecord = errors.New("skipped record")
