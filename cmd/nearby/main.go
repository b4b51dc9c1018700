package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

const (
	defaultDataPath = "data/food_truck_dataset.csv"
	defaultTimeout  = 2 * time.Minute
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	app := &cli.App{
		Name:  "nearby",
		Usage: "Search and seed San Francisco food truck data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Seed file (.csv or .xlsx)",
				EnvVars: []string{"MEALS_ON_HEELS_DATA_PATH"},
				Value:   defaultDataPath,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log at debug level",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return nil
		},
		Commands: []*cli.Command{
			searchCommand(),
			seedCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}
