// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"
	"time"
)

// FormatYear formats a year tick as a plain integer.
func FormatYear(x float64) string {
	return strconv.FormatInt(int64(math.Round(x)), 10)
}

// FormatMinSec formats the minutes and seconds of t's time of day as
// MM:SS. Hours are dropped.
func FormatMinSec(t time.Time) string {
	return t.UTC().Format("04:05")
}

// num formats a coordinate for use in a path or transform.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
