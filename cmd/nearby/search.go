package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/rootsec1/meals-on-heels/internal/nearby"
	"github.com/rootsec1/meals-on-heels/internal/store"
	"github.com/rootsec1/meals-on-heels/internal/types"
	"github.com/urfave/cli/v2"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "List food trucks within a radius of a coordinate, nearest first",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lat",
				Usage:    "Latitude in decimal degrees",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "lng",
				Usage:    "Longitude in decimal degrees",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "radius",
				Aliases: []string{"r"},
				Usage:   "Search radius in kilometres",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the API response body instead of a table",
			},
		},
		Action: searchAction,
	}
}

func searchAction(c *cli.Context) error {
	query, err := nearby.ParseQuery(c.String("lat"), c.String("lng"), c.String("radius"), nearby.DefaultRadiusKm)
	if err != nil {
		if nearby.IsValidationError(err) {
			return cli.Exit(err.Error(), 2)
		}
		return err
	}

	trucks, _, err := store.NewLoader(slog.Default()).ReadFile(c.String("data"))
	if err != nil {
		return err
	}

	results := nearby.SearchNearby(query.Center.Latitude, query.Center.Longitude, query.RadiusKm, trucks)

	if c.Bool("json") {
		return writeJSON(c.App.Writer, results)
	}
	return writeTable(c.App.Writer, results)
}

func writeJSON(w io.Writer, results []types.SearchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	body := struct {
		Data  []types.SearchResult `json:"data"`
		Error *string              `json:"error"`
	}{Data: results}
	return errors.Wrap(enc.Encode(body), "failed to encode results")
}

func writeTable(w io.Writer, results []types.SearchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DISTANCE_KM\tID\tAPPLICANT\tTYPE\tADDRESS\tSTATUS")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f\t%d\t%s\t%s\t%s\t%s\n",
			r.DistanceKm, r.LocationID, r.Applicant, r.FacilityType, r.Address, r.Status)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write results")
	}
	fmt.Fprintf(w, "%d food trucks found\n", len(results))
	return nil
}
