// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/racechart/race"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRenderSVG(t *testing.T) {
	code, out, stderr := runArgs(t, "-variant", "legend", "render")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 35, strings.Count(out, "<circle"))
	assert.Contains(t, out, `id="x-axis"`)
	assert.Contains(t, out, `id="legend"`)
	assert.NotContains(t, out, `id="title"`)
	assert.Contains(t, stderr, "rendered")
}

func TestRenderDefaultSubcommand(t *testing.T) {
	code, out, _ := runArgs(t, "-format", "html")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `id="tooltip"`)
	assert.Contains(t, out, "Doping in Professional Bicycle Racing")
}

func TestRenderPNGFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.png")
	code, out, stderr := runArgs(t, "-format", "png", "-variant", "axes", "-o", path,
		"-open", `sh -c 'test -s "$0"'`)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 720, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestOpenNeedsOutput(t *testing.T) {
	code, _, _ := runArgs(t, "-open", "true")
	assert.Equal(t, 1, code)
}

func TestTable(t *testing.T) {
	code, out, stderr := runArgs(t, "table")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "-- /yes")
	assert.Contains(t, out, "-- /no")
	assert.Contains(t, out, "Marco Pantani")
	assert.Contains(t, out, "Riders with doping allegations")
	assert.Contains(t, out, "No doping allegations")
}

func TestSummarize(t *testing.T) {
	recs := []race.Record{
		{Year: 1995, Seconds: 2200, Doping: "Alleged"},
		{Year: 1996, Seconds: 2210, Doping: "Alleged"},
		{Year: 2015, Seconds: 2300},
	}
	sums := summarize(recs)
	require.Len(t, sums, 2)
	assert.Equal(t, categorySummary{"Riders with doping allegations", 2, 2205, 2200, 2210}, sums[0])
	assert.Equal(t, categorySummary{"No doping allegations", 1, 2300, 2300, 2300}, sums[1])

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, recs))
	assert.Contains(t, buf.String(), "36:45")

	assert.Len(t, summarize(recs[2:]), 1)
}

func TestDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data := `[{"Year": 2001, "Seconds": 2300, "Name": "A", "Nationality": "FRA", "Doping": ""}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	code, out, stderr := runArgs(t, "-data", path, "-variant", "legend")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 1, strings.Count(out, "<circle"))

	code, _, _ = runArgs(t, "-data", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 1, code)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o644))
	code, _, stderr = runArgs(t, "-data", empty)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no records")
}

func TestUsageErrors(t *testing.T) {
	code, _, stderr := runArgs(t, "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown subcommand")
	assert.Contains(t, stderr, "serve")

	code, _, _ = runArgs(t, "-variant", "pie")
	assert.Equal(t, 2, code)

	code, _, _ = runArgs(t, "-format", "gif")
	assert.Equal(t, 2, code)

	code, _, _ = runArgs(t, "-nosuchflag")
	assert.Equal(t, 2, code)
}
