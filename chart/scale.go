// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"time"

	"github.com/aclements/go-moremath/scale"
)

// Linear maps a numeric domain linearly onto a pixel range.
type Linear struct {
	Domain [2]float64
	Range  [2]float64

	// Integral restricts ticks to integer values.
	Integral bool
}

func (s *Linear) String() string {
	return fmt.Sprintf("linear [%g,%g] => [%g,%g]", s.Domain[0], s.Domain[1], s.Range[0], s.Range[1])
}

func (s *Linear) get() scale.Linear {
	return scale.Linear{Min: s.Domain[0], Max: s.Domain[1]}
}

// Map maps x from the domain to the range. A degenerate domain maps
// everything to the middle of the range.
func (s *Linear) Map(x float64) float64 {
	return interp(s.Range, s.unit(x))
}

func (s *Linear) unit(x float64) float64 {
	if s.Domain[0] == s.Domain[1] {
		return 0.5
	}
	return s.get().Map(x)
}

func interp(r [2]float64, u float64) float64 {
	return r[0] + u*(r[1]-r[0])
}

// Ticks returns at most max major tick values within the domain, in
// increasing order.
func (s *Linear) Ticks(max int) []float64 {
	lo, hi := s.Domain[0], s.Domain[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []float64{lo}
	}
	o := scale.TickOptions{Max: max}
	if s.Integral {
		// Don't let the tick level go below whole numbers.
		o.MinLevel, o.MaxLevel = 0, 1000
	}
	major, _ := scale.Linear{Min: lo, Max: hi}.Ticks(o)
	var out []float64
	for _, t := range major {
		if t >= lo && t <= hi {
			out = append(out, t)
		}
	}
	return out
}

// timeSteps are the candidate tick intervals for Time scales, from
// finest to coarsest. The index into timeSteps is the tick level.
var timeSteps = []time.Duration{
	time.Second,
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
}

// ticker adapts tick counting and generation functions to
// scale.Ticker.
type ticker struct {
	count func(level int) int
	ticks func(level int) []float64
}

func (t ticker) CountTicks(level int) int { return t.count(level) }

func (t ticker) TicksAtLevel(level int) interface{} { return t.ticks(level) }

// Time maps a time domain linearly onto a pixel range.
type Time struct {
	Domain [2]time.Time
	Range  [2]float64
}

func (s *Time) String() string {
	return fmt.Sprintf("time [%s,%s] => [%g,%g]", s.Domain[0].Format(time.RFC3339), s.Domain[1].Format(time.RFC3339), s.Range[0], s.Range[1])
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func (s *Time) linear() *Linear {
	return &Linear{
		Domain: [2]float64{unixSeconds(s.Domain[0]), unixSeconds(s.Domain[1])},
		Range:  s.Range,
	}
}

// Map maps t from the domain to the range.
func (s *Time) Map(t time.Time) float64 {
	return s.linear().Map(unixSeconds(t))
}

// Ticks returns at most max major tick times within the domain, in
// increasing order. Ticks fall on multiples of the finest interval
// in timeSteps that yields no more than max ticks.
func (s *Time) Ticks(max int) []time.Time {
	lo, hi := s.Domain[0], s.Domain[1]
	if lo.After(hi) {
		lo, hi = hi, lo
	}
	if lo.Equal(hi) {
		return []time.Time{lo}
	}

	first := func(level int) int64 {
		step := int64(timeSteps[level])
		n := lo.UnixNano()
		f := n / step * step
		if f < n {
			f += step
		}
		return f
	}
	count := func(level int) int {
		step := int64(timeSteps[level])
		f := first(level)
		if f > hi.UnixNano() {
			return 0
		}
		return int((hi.UnixNano()-f)/step) + 1
	}
	ticks := func(level int) []float64 {
		step := int64(timeSteps[level])
		var out []float64
		for n := first(level); n <= hi.UnixNano(); n += step {
			out = append(out, float64(n))
		}
		return out
	}

	o := scale.TickOptions{Max: max, MinLevel: 0, MaxLevel: len(timeSteps) - 1}
	level, ok := o.FindLevel(ticker{count, ticks}, 0)
	if !ok || count(level) == 0 {
		return []time.Time{lo, hi}
	}
	var out []time.Time
	for _, n := range ticks(level) {
		out = append(out, time.Unix(0, int64(n)).In(lo.Location()))
	}
	return out
}
