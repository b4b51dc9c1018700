package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rootsec1/meals-on-heels/internal/store"
	"github.com/urfave/cli/v2"
)

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the seed file into an Elasticsearch index",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "es-url",
				Usage:   "Elasticsearch URL",
				EnvVars: []string{"MEALS_ON_HEELS_ELASTICSEARCH_URL"},
				Value:   "http://localhost:9200",
			},
			&cli.StringFlag{
				Name:    "es-index",
				Usage:   "Elasticsearch index name",
				EnvVars: []string{"MEALS_ON_HEELS_ELASTICSEARCH_INDEX"},
				Value:   "food_trucks",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for the whole seed run",
				Value: defaultTimeout,
			},
		},
		Action: seedAction,
	}
}

func seedAction(c *cli.Context) error {
	logger := slog.Default()

	trucks, report, err := store.NewLoader(logger).ReadFile(c.String("data"))
	if err != nil {
		return err
	}

	es, err := store.NewElasticStore(c.String("es-url"), c.String("es-index"), logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	seeded, err := es.Seed(ctx, trucks)
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Fprintln(c.App.Writer, "Food truck data already seeded.")
		return nil
	}

	fmt.Fprintf(c.App.Writer, "Successfully seeded %d food trucks (%d rows skipped).\n", report.Loaded, report.Skipped)
	return nil
}
