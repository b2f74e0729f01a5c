// Package airports normalizes raw airport datasets into deduplicated
// airports, cities, countries and locations, and answers queries over them.
package airports

var (
	// Version of the airports app. It is set by build flags.
	Version = "v0.1.0"

	// Build timestamp. It is set by build flags.
	Build = "n/a"
)
