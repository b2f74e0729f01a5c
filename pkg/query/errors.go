package query

import (
	"errors"
	"fmt"

	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrNoAirports is returned by searches over an empty collection.
var ErrNoAirports = errors.New("no airports loaded")

func NoAirportsError() error {
	return &gn.Error{
		Code: errcode.QueryNoAirportsError,
		Msg:  "No airports are loaded, run <em>airports load</em> first",
		Err:  ErrNoAirports,
	}
}

func AirportNotFoundError(code string) error {
	return &gn.Error{
		Code: errcode.QueryAirportNotFoundError,
		Msg:  "Airport with IATA code <em>%s</em> not found",
		Vars: []any{code},
		Err:  fmt.Errorf("no airport with IATA code %q", code),
	}
}

func AmbiguousIATAError(code string, ids []int) error {
	return &gn.Error{
		Code: errcode.QueryAmbiguousIATAError,
		Msg:  "IATA code <em>%s</em> belongs to %d airports",
		Vars: []any{code, len(ids)},
		Err:  fmt.Errorf("IATA code %q matches airports %v", code, ids),
	}
}

func InvalidCoordinateError(text string) error {
	return &gn.Error{
		Code: errcode.QueryInvalidCoordinateError,
		Msg:  "<em>%s</em> is not a valid coordinate",
		Vars: []any{text},
		Err:  fmt.Errorf("invalid coordinate %q", text),
	}
}

func InvalidIATAError(text string) error {
	return &gn.Error{
		Code: errcode.QueryInvalidIATAError,
		Msg:  "<em>%s</em> is not a valid IATA code",
		Vars: []any{text},
		Err:  fmt.Errorf("invalid IATA code %q", text),
	}
}
