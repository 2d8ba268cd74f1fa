// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws race times against year as a scatter plot.
//
// Build lays out the chart for a set of race records and attaches it
// to a scene container. The scale and layout math (Linear, Time,
// Category) is separate from scene construction, so it can be used
// and tested on its own.
//
// The chart comes in three variants of increasing detail (see
// AxesConfig, LegendConfig, and FullConfig): axes only; axes, dots,
// and a legend; and all of that plus a hover tooltip and titles.
package chart

import (
	"errors"
	"fmt"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/racechart/race"
	"github.com/aclements/racechart/scene"
)

// ErrNoRecords is returned by Build for an empty record set. The
// scales have no domain without data.
var ErrNoRecords = errors.New("chart: no records")

// Legend labels.
const (
	LabelFlagged = "Riders with doping allegations"
	LabelClean   = "No doping allegations"
)

// legendStep is the vertical distance between legend entries.
const legendStep = 20

// Chart is a built chart.
type Chart struct {
	cfg     Config
	records []race.Record

	root    *scene.Node
	x       *Linear
	y       *Time
	color   *Category
	dots    []*scene.Node
	legend  []*scene.Node
	tooltip *Tooltip
}

// Root returns the chart's svg element.
func (c *Chart) Root() *scene.Node { return c.root }

// X returns the horizontal (year) scale.
func (c *Chart) X() *Linear { return c.x }

// Y returns the vertical (time) scale.
func (c *Chart) Y() *Time { return c.y }

// Color returns the doping category scale.
func (c *Chart) Color() *Category { return c.color }

// Dots returns the dot elements, one per record in record order, or
// nil if dots are disabled.
func (c *Chart) Dots() []*scene.Node { return c.dots }

// LegendEntries returns the legend entry elements in domain order, or
// nil if the legend is disabled.
func (c *Chart) LegendEntries() []*scene.Node { return c.legend }

// Tooltip returns the chart's tooltip, or nil if it is disabled.
func (c *Chart) Tooltip() *Tooltip { return c.tooltip }

// Records returns the records the chart was built from. The caller
// must not modify them.
func (c *Chart) Records() []race.Record { return c.records }

// Config returns the chart's configuration.
func (c *Chart) Config() Config { return c.cfg }

// An Option changes how Build attaches a chart.
type Option func(*options)

type options struct {
	tooltip *scene.Node
	palette *Category
}

// WithTooltipContainer makes Build use n as the tooltip element
// instead of creating one next to the chart.
func WithTooltipContainer(n *scene.Node) Option {
	return func(o *options) { o.tooltip = n }
}

// WithCategory makes Build color dots with c. c's existing domain
// order is kept.
func WithCategory(c *Category) Option {
	return func(o *options) { o.palette = c }
}

// Build lays out a chart of records and appends it to container.
//
// records must not be empty. Build never modifies records or any of
// container's existing children.
func Build(container *scene.Node, records []race.Record, cfg Config, opts ...Option) (*Chart, error) {
	if container == nil {
		return nil, fmt.Errorf("%w: nil container", ErrBadConfig)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Ticks <= 0 {
		cfg.Ticks = 10
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chart{cfg: cfg, records: records}
	c.x, c.y = scales(records, cfg)
	c.color = o.palette
	if c.color == nil {
		c.color = NewCategory(DefaultPalette)
	}
	for _, r := range records {
		c.color.Map(r.Flagged())
	}
	// Both categories always appear in the legend, even if the data
	// only has one.
	c.color.Map(true)
	c.color.Map(false)

	w, h, m := cfg.Width, cfg.Height, cfg.Margin
	c.root = scene.Elem("svg").
		SetAttr("width", w).
		SetAttr("height", h).
		SetAttr("viewBox", "0 0 "+num(w)+" "+num(h))

	// Axes.
	var xt []axisTick
	for _, v := range c.x.Ticks(cfg.Ticks) {
		xt = append(xt, axisTick{c.x.Map(v), FormatYear(v)})
	}
	c.root.Append(axisBottom("x-axis", c.x.Range, h-m.Bottom, xt))
	var yt []axisTick
	for _, v := range c.y.Ticks(cfg.Ticks) {
		yt = append(yt, axisTick{c.y.Map(v), FormatMinSec(v)})
	}
	c.root.Append(axisLeft("y-axis", c.y.Range, m.Left, yt))

	if cfg.Points {
		c.drawDots()
	}
	if cfg.Legend {
		c.drawLegend()
	}
	if cfg.Titles {
		c.root.AppendElem("text").SetAttr("id", "title").
			SetAttr("x", w/2).SetAttr("y", m.Top*0.4).
			SetAttr("text-anchor", "middle").SetAttr("font-size", 24).
			SetText(cfg.Title)
		c.root.AppendElem("text").SetAttr("id", "subtitle").
			SetAttr("x", w/2).SetAttr("y", m.Top*0.7).
			SetAttr("text-anchor", "middle").SetAttr("font-size", 18).
			SetText(cfg.Subtitle)
	}

	container.Append(c.root)

	if cfg.Tooltip && cfg.Points {
		tn := o.tooltip
		if tn == nil {
			tn = container.AppendElem("div")
		}
		c.tooltip = newTooltip(tn, cfg.Transition)
		for i, dot := range c.dots {
			r := records[i]
			dot.On(scene.MouseOver, func(ev scene.Event) {
				c.tooltip.Enter(r, ev.X, ev.Y, ev.At)
			})
			dot.On(scene.MouseOut, func(ev scene.Event) {
				c.tooltip.Leave(ev.At)
			})
		}
	}
	return c, nil
}

// scales returns the year and time scales for records.
func scales(records []race.Record, cfg Config) (*Linear, *Time) {
	m := cfg.Margin

	years := make([]float64, len(records))
	for i, r := range records {
		years[i] = float64(r.Year)
	}
	ymin, ymax := stats.Bounds(years)
	x := &Linear{
		Domain:   [2]float64{ymin - 1, ymax + 1},
		Range:    [2]float64{m.Left, cfg.Width - m.Right},
		Integral: true,
	}

	tmin, tmax := records[0].Time, records[0].Time
	for _, r := range records[1:] {
		if r.Time.Before(tmin) {
			tmin = r.Time
		}
		if r.Time.After(tmax) {
			tmax = r.Time
		}
	}
	y := &Time{
		Domain: [2]time.Time{tmin, tmax},
		Range:  [2]float64{m.Top, cfg.Height - m.Bottom},
	}
	return x, y
}

func (c *Chart) drawDots() {
	g := c.root.AppendElem("g").SetAttr("class", "dots")
	for _, r := range c.records {
		dot := g.AppendElem("circle").
			SetAttr("class", "dot").
			SetAttr("cx", c.x.Map(float64(r.Year))).
			SetAttr("cy", c.y.Map(r.Time)).
			SetAttr("r", c.cfg.Radius).
			SetAttr("fill", c.color.CSS(r.Flagged())).
			SetAttr("data-xvalue", r.Year).
			SetAttr("data-yvalue", r.Time).
			SetAttr("data-name", r.Name).
			SetAttr("data-nationality", r.Nationality).
			SetAttr("data-doping", r.Doping)
		c.dots = append(c.dots, dot)
	}
}

// LegendLabel returns the legend text for a doping flag.
func LegendLabel(flagged bool) string {
	if flagged {
		return LabelFlagged
	}
	return LabelClean
}

func (c *Chart) drawLegend() {
	w, h, m := c.cfg.Width, c.cfg.Height, c.cfg.Margin
	g := c.root.AppendElem("g").SetAttr("id", "legend").
		SetAttr("font-size", 10).SetAttr("font-family", "sans-serif")
	for i, v := range c.color.Domain() {
		e := g.AppendElem("g").SetAttr("class", "legend-entry").
			SetAttr("transform", "translate(0,"+num(h/2-float64(i)*legendStep)+")")
		e.AppendElem("rect").
			SetAttr("x", w-m.Right-18).SetAttr("width", 18).SetAttr("height", 18).
			SetAttr("fill", c.color.CSS(v))
		e.AppendElem("text").
			SetAttr("x", w-m.Right-24).SetAttr("y", 9).SetAttr("dy", "0.35em").
			SetAttr("text-anchor", "end").
			SetText(LegendLabel(v))
		c.legend = append(c.legend, e)
	}
}
