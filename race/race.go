// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package race reads climb times for the Alpe d'Huez ascent.
//
// Each record is one rider's time on the climb in a given season,
// plus any doping allegation attached to that rider. The input format
// is a JSON array of objects with the keys Year, Seconds, Name,
// Nationality, and Doping. Seconds may also be spelled
// time_in_seconds. Place, Time (the "MM:SS" display string), and URL
// are carried through if present but are not used for layout.
package race

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sync"
	"time"
)

// Record is a single climb time.
type Record struct {
	// Year is the season of the recorded time.
	Year int

	// Seconds is the elapsed time of the climb.
	Seconds float64

	// Time is the derived time of day, DerivedTime(Seconds). It
	// exists so the elapsed time can be placed on a time scale and
	// labeled with a minutes:seconds formatter.
	Time time.Time

	Name, Nationality string

	// Doping is a free-text doping allegation, or "" if there is
	// none.
	Doping string

	// Place and URL are informational.
	Place int
	URL   string
}

// Flagged reports whether r carries a doping allegation.
func (r Record) Flagged() bool {
	return r.Doping != ""
}

// DerivedTime returns the Unix epoch plus seconds, in UTC.
//
// All derived times share the calendar date of the epoch as long as
// seconds is less than a day, so ordering derived times orders the
// elapsed times.
func DerivedTime(seconds float64) time.Time {
	d := time.Duration(math.Round(seconds * float64(time.Second)))
	return time.Unix(0, 0).UTC().Add(d)
}

type rawRecord struct {
	Year          *int     `json:"Year"`
	Seconds       *float64 `json:"Seconds"`
	TimeInSeconds *float64 `json:"time_in_seconds"`
	Name          string   `json:"Name"`
	Nationality   string   `json:"Nationality"`
	Doping        string   `json:"Doping"`
	Place         int      `json:"Place"`
	URL           string   `json:"URL"`
}

// Load decodes a JSON array of climb records from r and computes
// each record's derived time.
//
// Load only checks that every record has a finite year and elapsed
// time. It returns an empty slice, not an error, for an empty array.
func Load(r io.Reader) ([]Record, error) {
	var raws []rawRecord
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decoding race records: %w", err)
	}

	recs := make([]Record, 0, len(raws))
	for i, raw := range raws {
		secs := raw.Seconds
		if secs == nil {
			secs = raw.TimeInSeconds
		}
		if raw.Year == nil || secs == nil {
			return nil, fmt.Errorf("race record %d: missing Year or Seconds", i)
		}
		if math.IsNaN(*secs) || math.IsInf(*secs, 0) {
			return nil, fmt.Errorf("race record %d: non-finite Seconds", i)
		}
		recs = append(recs, Record{
			Year:        *raw.Year,
			Seconds:     *secs,
			Time:        DerivedTime(*secs),
			Name:        raw.Name,
			Nationality: raw.Nationality,
			Doping:      raw.Doping,
			Place:       raw.Place,
			URL:         raw.URL,
		})
	}
	return recs, nil
}

//go:embed cyclist-data.json
var cyclistData []byte

var (
	defaultOnce sync.Once
	defaultRecs []Record
)

// Default returns the dataset bundled with this package. The bundled
// data is decoded once; each call returns a fresh copy.
func Default() []Record {
	defaultOnce.Do(func() {
		recs, err := Load(bytes.NewReader(cyclistData))
		if err != nil {
			panic("bundled race data: " + err.Error())
		}
		defaultRecs = recs
	})
	return append([]Record(nil), defaultRecs...)
}
