package query

import "regexp"

var (
	coordinateText = regexp.MustCompile(`[0-9]{1,3}\.?[0-9]*`)
	iataText       = regexp.MustCompile(`[A-Z]{3}`)
)

// IsCoordinateValid reports whether the text contains something that looks
// like a coordinate. It checks a substring only, so "abc12" is valid.
func IsCoordinateValid(text string) bool {
	return coordinateText.MatchString(text)
}

// IsIATACodeValid reports whether the text contains three uppercase ASCII
// letters in a row.
func IsIATACodeValid(text string) bool {
	return iataText.MatchString(text)
}
