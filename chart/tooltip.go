// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"time"

	"github.com/aclements/racechart/race"
	"github.com/aclements/racechart/scene"
)

// TooltipState is the logical state of a tooltip.
type TooltipState int

const (
	Hidden TooltipState = iota
	Visible
)

func (s TooltipState) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Offset of the tooltip from the pointer.
const (
	tooltipDX = 10
	tooltipDY = -28
)

// A Tooltip shows details of the record under the pointer.
//
// Enter and Leave switch the logical state immediately and start a
// fade toward full or zero opacity. A new event replaces any fade in
// progress, starting from the current opacity. The content is only
// replaced by Enter.
type Tooltip struct {
	node *scene.Node
	dur  time.Duration

	state     TooltipState
	lines     []string
	left, top float64
	year      int

	// The last requested transition.
	from, to float64
	start    time.Time
}

func newTooltip(node *scene.Node, dur time.Duration) *Tooltip {
	t := &Tooltip{node: node, dur: dur}
	node.SetAttr("id", "tooltip").SetAttr("class", "tooltip").
		SetAttr("data-duration", dur.Milliseconds())
	node.SetStyle("position", "absolute").
		SetStyle("opacity", 0).
		SetStyle("visibility", "hidden").
		SetStyle("transition", fmt.Sprintf("opacity %dms", dur.Milliseconds()))
	return t
}

// TooltipLines returns the tooltip text for r.
func TooltipLines(r race.Record) []string {
	lines := []string{
		fmt.Sprintf("%s: %s", r.Name, r.Nationality),
		fmt.Sprintf("Year: %d, Time: %s", r.Year, FormatMinSec(r.Time)),
	}
	if r.Doping != "" {
		lines = append(lines, r.Doping)
	}
	return lines
}

// Enter shows the tooltip for r near the pointer at (x, y).
func (t *Tooltip) Enter(r race.Record, x, y float64, at time.Time) {
	t.lines = TooltipLines(r)
	t.left, t.top = x+tooltipDX, y+tooltipDY
	t.year = r.Year
	t.transition(Visible, 1, at)

	t.node.RemoveChildren()
	for _, l := range t.lines {
		t.node.AppendElem("div").SetAttr("class", "tooltip-line").SetText(l)
	}
	t.node.SetAttr("data-year", r.Year)
	t.node.SetStyle("left", num(t.left)+"px").SetStyle("top", num(t.top)+"px")
	t.node.SetStyle("opacity", 1).SetStyle("visibility", "visible")
}

// Leave starts hiding the tooltip. Its content is left in place.
//
// The node keeps visibility "visible" until the fade completes; call
// Update once it has.
func (t *Tooltip) Leave(at time.Time) {
	t.transition(Hidden, 0, at)
	t.node.SetStyle("opacity", 0)
}

// Update brings the node's visibility in line with Visible(at).
func (t *Tooltip) Update(at time.Time) {
	vis := "hidden"
	if t.Visible(at) {
		vis = "visible"
	}
	t.node.SetStyle("visibility", vis)
}

func (t *Tooltip) transition(s TooltipState, to float64, at time.Time) {
	t.from = t.Opacity(at)
	t.to = to
	t.start = at
	t.state = s
}

// State returns the logical state set by the last event.
func (t *Tooltip) State() TooltipState {
	return t.state
}

// Lines returns the current content, one entry per line.
func (t *Tooltip) Lines() []string {
	return append([]string(nil), t.lines...)
}

// Position returns the tooltip's page position.
func (t *Tooltip) Position() (left, top float64) {
	return t.left, t.top
}

// Year returns the year of the record last shown.
func (t *Tooltip) Year() int {
	return t.year
}

// Node returns the tooltip's element.
func (t *Tooltip) Node() *scene.Node {
	return t.node
}

// Opacity returns the tooltip's opacity at time at, following the
// last requested transition.
func (t *Tooltip) Opacity(at time.Time) float64 {
	if t.start.IsZero() || t.dur <= 0 {
		return t.to
	}
	el := at.Sub(t.start)
	if el <= 0 {
		return t.from
	}
	if el >= t.dur {
		return t.to
	}
	p := easeCubic(float64(el) / float64(t.dur))
	return t.from + p*(t.to-t.from)
}

// Visible reports whether the tooltip is shown at time at. It becomes
// visible as soon as it is entered and stays visible until a fade
// out completes.
func (t *Tooltip) Visible(at time.Time) bool {
	if t.state == Visible {
		return true
	}
	return t.Opacity(at) > 0
}

// easeCubic is symmetric cubic easing on [0, 1].
func easeCubic(p float64) float64 {
	p *= 2
	if p <= 1 {
		return p * p * p / 2
	}
	p -= 2
	return (p*p*p + 2) / 2
}
