// SPDX-License-Identifier: MIT

// Command warebot generates a seeded warehouse floor, runs every delivery
// with the chosen search algorithm and prints the floor, the per-delivery
// summaries and the final report.
//
// Usage:
//
//	warebot [-rows N] [-cols N] [-packages N] [-obstacles N] [-seed N]
//	        [-algo bfs|dfs|ucs] [-log-level LEVEL] [-trace] [-no-color]
//
// Every flag except -trace has an environment fallback (WAREBOT_ROWS,
// WAREBOT_COLS, WAREBOT_PACKAGES, WAREBOT_OBSTACLES, WAREBOT_SEED,
// WAREBOT_ALGO, WAREBOT_LOG_LEVEL, NO_COLOR); a .env file in the working
// directory is loaded first when present. Logs go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/warebot"
	"github.com/katalvlaran/warebot/delivery"
	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/layout"
	"github.com/katalvlaran/warebot/search"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "warebot:", err)
		os.Exit(1)
	}
}

// run is the composition root: config → layout → strategy → orchestrator → render.
func run(args []string, stdout, stderr io.Writer) error {
	envErr := godotenv.Load()

	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.logLevel})).
		With("run_id", runID)
	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}

	floor, err := layout.Generate(opts.layout, layout.WithSeed(opts.seed))
	if err != nil {
		return err
	}
	logger.Info("layout generated",
		"rows", opts.layout.Rows, "cols", opts.layout.Cols,
		"packages", opts.layout.Packages, "obstacles", opts.layout.Obstacles,
		"seed", opts.seed,
	)

	var searchOpts []search.Option
	if opts.trace {
		searchOpts = append(searchOpts, search.WithOnVisit(func(p grid.Position) {
			logger.Info("expand", "cell", p.String())
		}))
	}
	strategy, err := warebot.NewStrategy(opts.algo, searchOpts...)
	if err != nil {
		return err
	}

	rep, err := delivery.New(strategy, delivery.WithLogger(logger)).Run(delivery.Plan{
		Grid:     floor.Grid,
		Start:    floor.Start,
		Packages: floor.Packages,
		Dropoffs: floor.Dropoffs,
	})
	if err != nil {
		return err
	}

	p := newPrinter(stdout, opts.noColor)
	p.layout(floor, opts.algo)
	p.report(floor, rep, runID)
	return p.err
}
