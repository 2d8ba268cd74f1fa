// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/racechart/chart"
	"github.com/aclements/racechart/race"
)

func init() {
	registerSubcommand("table", "print the records and a per-category summary", cmdTable)
}

func cmdTable(e *env) error {
	if err := printRecords(e.stdout, e.records); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout)
	return printSummary(e.stdout, e.records)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// printRecords prints records grouped by whether they carry a doping
// allegation.
func printRecords(w io.Writer, records []race.Record) error {
	n := len(records)
	place, year := make([]int, n), make([]int, n)
	times, names, nats, doping := make([]string, n), make([]string, n), make([]string, n), make([]string, n)
	for i, r := range records {
		place[i] = r.Place
		year[i] = r.Year
		times[i] = chart.FormatMinSec(r.Time)
		names[i] = r.Name
		nats[i] = r.Nationality
		doping[i] = yesNo(r.Flagged())
	}
	tab := new(table.Builder).
		Add("place", place).
		Add("year", year).
		Add("time", times).
		Add("name", names).
		Add("nationality", nats).
		Add("doping", doping).
		Done()
	return table.Fprint(w, table.GroupBy(tab, "doping"))
}

// categorySummary summarizes the climb times of one doping category.
type categorySummary struct {
	label          string
	n              int
	mean, min, max float64
}

func summarize(records []race.Record) []categorySummary {
	var out []categorySummary
	for _, flagged := range []bool{true, false} {
		var secs []float64
		for _, r := range records {
			if r.Flagged() == flagged {
				secs = append(secs, r.Seconds)
			}
		}
		if len(secs) == 0 {
			continue
		}
		lo, hi := stats.Bounds(secs)
		out = append(out, categorySummary{
			label: chart.LegendLabel(flagged),
			n:     len(secs),
			mean:  stats.Sample{Xs: secs}.Mean(),
			min:   lo,
			max:   hi,
		})
	}
	return out
}

func printSummary(w io.Writer, records []race.Record) error {
	sums := summarize(records)
	labels, counts := make([]string, len(sums)), make([]int, len(sums))
	means, mins, maxs := make([]string, len(sums)), make([]string, len(sums)), make([]string, len(sums))
	mmss := func(secs float64) string { return chart.FormatMinSec(race.DerivedTime(secs)) }
	for i, s := range sums {
		labels[i] = s.label
		counts[i] = s.n
		means[i] = mmss(s.mean)
		mins[i] = mmss(s.min)
		maxs[i] = mmss(s.max)
	}
	tab := new(table.Builder).
		Add("category", labels).
		Add("n", counts).
		Add("mean", means).
		Add("fastest", mins).
		Add("slowest", maxs).
		Done()
	return table.Fprint(w, tab)
}
