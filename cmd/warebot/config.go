// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/warebot/layout"
	"github.com/katalvlaran/warebot/search"
)

// options is the resolved process configuration.
// Precedence: flag > environment (.env included) > default.
type options struct {
	layout   layout.Config
	seed     int64
	algo     search.Algorithm
	logLevel slog.Level
	trace    bool
	noColor  bool
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := getEnv(key, strconv.Itoa(fallback))
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q: not an integer", key, v)
	}
	return n, nil
}

// parseOptions reads the environment for defaults, then applies flags from args.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	def := layout.DefaultConfig()
	var (
		o   options
		err error
	)
	ints := []struct {
		key string
		dst *int
		def int
	}{
		{"WAREBOT_ROWS", &def.Rows, def.Rows},
		{"WAREBOT_COLS", &def.Cols, def.Cols},
		{"WAREBOT_PACKAGES", &def.Packages, def.Packages},
		{"WAREBOT_OBSTACLES", &def.Obstacles, def.Obstacles},
	}
	for _, in := range ints {
		if *in.dst, err = envInt(in.key, in.def); err != nil {
			return o, err
		}
	}
	seedEnv := getEnv("WAREBOT_SEED", "42")
	defSeed, err := strconv.ParseInt(strings.TrimSpace(seedEnv), 10, 64)
	if err != nil {
		return o, fmt.Errorf("WAREBOT_SEED=%q: not an integer", seedEnv)
	}

	fs := flag.NewFlagSet("warebot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.layout.Rows, "rows", def.Rows, "grid rows (5-10)")
	fs.IntVar(&o.layout.Cols, "cols", def.Cols, "grid columns (5-10)")
	fs.IntVar(&o.layout.Packages, "packages", def.Packages, "number of packages (2-6)")
	fs.IntVar(&o.layout.Obstacles, "obstacles", def.Obstacles, "number of obstacles (1-10)")
	fs.Int64Var(&o.seed, "seed", defSeed, "random seed for the layout")
	algo := fs.String("algo", getEnv("WAREBOT_ALGO", search.UCS.String()), "search algorithm: bfs, dfs or ucs")
	level := fs.String("log-level", getEnv("WAREBOT_LOG_LEVEL", "info"), "log level: debug, info, warn or error")
	fs.BoolVar(&o.trace, "trace", false, "log every expanded cell")
	fs.BoolVar(&o.noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable colored output")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if o.algo, err = search.ParseAlgorithm(*algo); err != nil {
		return o, err
	}
	if err := o.logLevel.UnmarshalText([]byte(*level)); err != nil {
		return o, fmt.Errorf("log level %q: %w", *level, err)
	}
	return o, nil
}
