// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette/brewer"
)

// DefaultPalette is the palette for doping categories: the
// ColorBrewer Set1 qualitative palette.
var DefaultPalette = func() []color.Color {
	var p []color.Color
	for _, c := range brewer.Set1_3 {
		p = append(p, c)
	}
	return p
}()

// Category maps the doping flag to a palette color.
//
// Like an ordinal scale, the domain grows as values are mapped: the
// first value seen gets the first palette color, and so on. The
// domain order determines legend order.
type Category struct {
	palette []color.Color
	domain  []bool
	index   map[bool]int
}

// NewCategory returns a category scale over palette, which must have
// at least two colors.
func NewCategory(palette []color.Color) *Category {
	if len(palette) < 2 {
		panic("chart: category palette needs at least two colors")
	}
	return &Category{palette: palette, index: make(map[bool]int)}
}

// Map returns the color for v, adding v to the domain if it is new.
func (c *Category) Map(v bool) color.Color {
	i, ok := c.index[v]
	if !ok {
		i = len(c.domain)
		c.index[v] = i
		c.domain = append(c.domain, v)
	}
	return c.palette[i%len(c.palette)]
}

// Domain returns the values seen so far, in order of first
// appearance.
func (c *Category) Domain() []bool {
	return append([]bool(nil), c.domain...)
}

// CSS returns the color for v as a CSS hex color.
func (c *Category) CSS(v bool) string {
	return cssColor(c.Map(v))
}

// cssColor returns c in #rrggbb form, ignoring alpha.
func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a != 0 && a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
