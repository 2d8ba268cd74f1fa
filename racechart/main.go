// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Racechart plots the fastest climbs of Alpe d'Huez against the year
// they were ridden, colored by whether the rider faced doping
// allegations.
//
// Usage:
//
//	racechart [flags] [render|table|serve]
//
// The render subcommand (the default) writes the chart as SVG, as a
// standalone HTML page with a hover tooltip, or as a PNG image. The
// table subcommand prints the dataset and a summary of each doping
// category. The serve subcommand serves every output format over
// HTTP.
//
// Settings come from defaults, then the YAML file named by -config or
// $RACECHART_CONFIG, then RACECHART_* environment variables, then
// flags. For example, RACECHART_VARIANT=legend selects the legend
// variant and RACECHART_MARGIN__TOP=120 sets the top margin.
//
// By default racechart uses its bundled dataset of the 35 fastest
// climbs. -data reads another JSON file in the same format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/aclements/racechart/internal/config"
	"github.com/aclements/racechart/internal/logging"
	"github.com/aclements/racechart/race"
	"github.com/rs/zerolog"
)

// env is what a subcommand runs with.
type env struct {
	cfg     *config.Config
	log     zerolog.Logger
	records []race.Record
	stdout  io.Writer
	args    []string
}

type subcommand struct {
	desc string
	run  func(e *env) error
}

var subcommands = map[string]subcommand{}

func registerSubcommand(name, desc string, run func(e *env) error) {
	subcommands[name] = subcommand{desc, run}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run runs racechart with command-line arguments args and returns the
// exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("racechart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagConfig  = fs.String("config", "", "read settings from YAML `file`")
		flagOut     = fs.String("o", "", "write output to `file` instead of stdout")
		flagFormat  = fs.String("format", "", "output `format`: svg, html, or png")
		flagVariant = fs.String("variant", "", "chart `variant`: axes, legend, or full")
		flagData    = fs.String("data", "", "read records from JSON `file` instead of the bundled data")
		flagOpen    = fs.String("open", "", "run `command` on the output file after rendering")
		flagAddr    = fs.String("addr", "", "serve on `address`")
		flagDebug   = fs.Bool("debug", false, "don't minify the tooltip script")
		flagLog     = fs.String("log", "", "log `level`")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: racechart [flags] [subcommand]\n\nSubcommands:\n")
		var names []string
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(stderr, "  %-8s %s\n", name, subcommands[name].desc)
		}
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	name := "render"
	if fs.NArg() > 0 {
		name = fs.Arg(0)
	}
	sub, ok := subcommands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown subcommand %q\n", name)
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	// Flags override everything else, but only if given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *flagOut
		case "format":
			cfg.Format = *flagFormat
		case "variant":
			cfg.Variant = *flagVariant
		case "data":
			cfg.Data = *flagData
		case "open":
			cfg.Viewer = *flagOpen
		case "addr":
			cfg.Addr = *flagAddr
		case "debug":
			cfg.Debug = *flagDebug
		case "log":
			cfg.LogLevel = *flagLog
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogJSON, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	records, err := loadRecords(cfg.Data)
	if err != nil {
		log.Error().Err(err).Msg("loading records")
		return 1
	}
	log.Debug().Int("records", len(records)).Str("data", cfg.Data).Msg("loaded records")

	e := &env{cfg: cfg, log: log, records: records, stdout: stdout, args: fs.Args()}
	if err := sub.run(e); err != nil {
		log.Error().Err(err).Str("subcommand", name).Msg("failed")
		return 1
	}
	return 0
}

func loadRecords(path string) ([]race.Record, error) {
	if path == "" {
		return race.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := race.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
