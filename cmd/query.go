/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gnames/airports/pkg/model"
	"github.com/gnames/airports/pkg/query"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getQueryCmd returns the query command with its subcommands.
func getQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Query normalized airports",
		Long: `Query answers questions about normalized airports.

Artifacts are created by 'airports load' on the first query if they
do not exist yet. Results are printed as JSON.

Examples:
  airports query countries
  airports query cities
  airports query nearest -- -6.08 145.39
  airports query iata GKA`,
	}

	queryCmd.AddCommand(
		&cobra.Command{
			Use:   "countries",
			Short: "Number of airports per country",
			Args:  cobra.NoArgs,
			RunE:  withManager(runCountries),
		},
		&cobra.Command{
			Use:   "cities",
			Short: "Cities with the largest number of airports",
			Args:  cobra.NoArgs,
			RunE:  withManager(runCities),
		},
		&cobra.Command{
			Use:   "nearest LONGITUDE LATITUDE",
			Short: "Airport closest to a point",
			Long: `Finds the airport with the shortest great-circle distance to
the point. Use '--' before negative coordinates.`,
			Args: cobra.ExactArgs(2),
			RunE: withManager(runNearest),
		},
		&cobra.Command{
			Use:   "iata CODE",
			Short: "Airport with the given IATA code",
			Args:  cobra.ExactArgs(1),
			RunE:  withManager(runIATA),
		},
	)

	return queryCmd
}

type queryFunc func(cmd *cobra.Command, m *query.Manager, args []string) error

// withManager loads airports and passes a query manager to f.
func withManager(f queryFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := runQuery(cmd, f, args)
		if err != nil {
			gn.PrintErrorMessage(err)
		}
		return err
	}
}

func runQuery(cmd *cobra.Command, f queryFunc, args []string) error {
	res, err := loadResult(context.Background())
	if err != nil {
		return err
	}
	m := query.New(res.Registry.Airports())
	return f(cmd, m, args)
}

func runCountries(cmd *cobra.Command, m *query.Manager, _ []string) error {
	return printJSON(cmd, m.CountryList())
}

func runCities(cmd *cobra.Command, m *query.Manager, _ []string) error {
	return printJSON(cmd, m.CitiesByAirportCount())
}

// nearestOutput is the JSON answer of the nearest query.
type nearestOutput struct {
	Airport    *model.Airport `json:"airport"`
	DistanceKm float64        `json:"distanceKm"`
}

func runNearest(cmd *cobra.Command, m *query.Manager, args []string) error {
	lon, err := parseCoordinate(args[0])
	if err != nil {
		return err
	}
	lat, err := parseCoordinate(args[1])
	if err != nil {
		return err
	}

	a, dist, err := m.NearestAirport(lon, lat)
	if err != nil {
		return err
	}
	return printJSON(cmd, nearestOutput{Airport: a, DistanceKm: dist})
}

func runIATA(cmd *cobra.Command, m *query.Manager, args []string) error {
	code := args[0]
	if !query.IsIATACodeValid(code) {
		return query.InvalidIATAError(code)
	}

	a, err := m.AirportByIATACode(code)
	if err != nil {
		return err
	}
	return printJSON(cmd, a)
}

func parseCoordinate(s string) (float64, error) {
	if !query.IsCoordinateValid(s) {
		return 0, query.InvalidCoordinateError(s)
	}
	res, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, query.InvalidCoordinateError(s)
	}
	return res, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bs))
	return err
}
