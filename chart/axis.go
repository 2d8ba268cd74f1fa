// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/aclements/racechart/scene"
)

// Axis geometry.
const (
	tickSize    = 6
	tickPadding = 3
)

type axisTick struct {
	pos   float64
	label string
}

// axisBottom returns a horizontal axis group positioned at y, with
// tick marks below the domain line.
func axisBottom(id string, r [2]float64, y float64, ticks []axisTick) *scene.Node {
	g := axisGroup(id, "translate(0,"+num(y)+")", "middle")
	g.AppendElem("path").SetAttr("class", "domain").SetAttr("stroke", "currentColor").
		SetAttr("d", "M"+num(r[0])+","+num(tickSize)+"V0H"+num(r[1])+"V"+num(tickSize))
	for _, t := range ticks {
		tg := g.AppendElem("g").SetAttr("class", "tick").SetAttr("opacity", 1).
			SetAttr("transform", "translate("+num(t.pos)+",0)")
		tg.AppendElem("line").SetAttr("stroke", "currentColor").SetAttr("y2", tickSize)
		tg.AppendElem("text").SetAttr("fill", "currentColor").
			SetAttr("y", tickSize+tickPadding).SetAttr("dy", "0.71em").SetText(t.label)
	}
	return g
}

// axisLeft returns a vertical axis group positioned at x, with tick
// marks left of the domain line.
func axisLeft(id string, r [2]float64, x float64, ticks []axisTick) *scene.Node {
	g := axisGroup(id, "translate("+num(x)+",0)", "end")
	g.AppendElem("path").SetAttr("class", "domain").SetAttr("stroke", "currentColor").
		SetAttr("d", "M"+num(-tickSize)+","+num(r[0])+"H0V"+num(r[1])+"H"+num(-tickSize))
	for _, t := range ticks {
		tg := g.AppendElem("g").SetAttr("class", "tick").SetAttr("opacity", 1).
			SetAttr("transform", "translate(0,"+num(t.pos)+")")
		tg.AppendElem("line").SetAttr("stroke", "currentColor").SetAttr("x2", -tickSize)
		tg.AppendElem("text").SetAttr("fill", "currentColor").
			SetAttr("x", -(tickSize + tickPadding)).SetAttr("dy", "0.32em").SetText(t.label)
	}
	return g
}

func axisGroup(id, transform, anchor string) *scene.Node {
	return scene.Elem("g").
		SetAttr("id", id).
		SetAttr("transform", transform).
		SetAttr("fill", "none").
		SetAttr("font-size", 10).
		SetAttr("font-family", "sans-serif").
		SetAttr("text-anchor", anchor)
}
