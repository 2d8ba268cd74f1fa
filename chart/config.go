// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadConfig is returned by Build for a configuration with no room
// to plot.
var ErrBadConfig = errors.New("chart: bad config")

// Margins are the space between the edge of the chart and the plot
// area, in pixels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Config controls the size of a chart and which optional features it
// includes.
type Config struct {
	Width, Height float64
	Margin        Margins

	// Points enables one dot per record.
	Points bool
	// Legend enables the doping category legend.
	Legend bool
	// Tooltip enables the hover tooltip. It has no effect without
	// Points.
	Tooltip bool
	// Titles enables the title and subtitle.
	Titles bool

	// Radius is the dot radius.
	Radius float64

	Title, Subtitle string

	// Ticks is the maximum number of ticks per axis.
	Ticks int

	// Transition is the duration of the tooltip fade.
	Transition time.Duration
}

// Variants of the chart, in increasing order of features.
const (
	VariantAxes   = "axes"
	VariantLegend = "legend"
	VariantFull   = "full"
)

// AxesConfig returns the configuration for a chart with only axes.
func AxesConfig() Config {
	return Config{
		Width:      720,
		Height:     480,
		Margin:     Margins{Top: 20, Right: 20, Bottom: 30, Left: 40},
		Ticks:      10,
		Transition: 200 * time.Millisecond,
	}
}

// LegendConfig returns the configuration for a chart with axes, dots,
// and a legend.
func LegendConfig() Config {
	c := AxesConfig()
	c.Points = true
	c.Legend = true
	c.Radius = 5
	return c
}

// FullConfig returns the configuration for a chart with every
// feature: axes, dots, legend, tooltip, and titles.
func FullConfig() Config {
	c := LegendConfig()
	c.Tooltip = true
	c.Titles = true
	c.Radius = 6
	c.Width, c.Height = 920, 630
	c.Margin = Margins{Top: 100, Right: 20, Bottom: 30, Left: 60}
	c.Title = "Doping in Professional Bicycle Racing"
	c.Subtitle = "35 Fastest times up Alpe d'Huez"
	return c
}

// VariantConfig returns the configuration for the named variant.
func VariantConfig(name string) (Config, error) {
	switch name {
	case VariantAxes:
		return AxesConfig(), nil
	case VariantLegend:
		return LegendConfig(), nil
	case VariantFull, "":
		return FullConfig(), nil
	}
	return Config{}, fmt.Errorf("%w: unknown variant %q", ErrBadConfig, name)
}

func (c *Config) validate() error {
	if c.Width-c.Margin.Left-c.Margin.Right <= 0 || c.Height-c.Margin.Top-c.Margin.Bottom <= 0 {
		return fmt.Errorf("%w: %gx%g leaves no plot area inside margins %+v", ErrBadConfig, c.Width, c.Height, c.Margin)
	}
	if c.Points && c.Radius <= 0 {
		return fmt.Errorf("%w: dot radius %g", ErrBadConfig, c.Radius)
	}
	return nil
}
