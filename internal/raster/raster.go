// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster renders a chart scene to a PNG image.
//
// It understands the subset of SVG that package chart produces:
// circles, rects, lines, axis paths made of M, L, H, and V commands,
// text, and translate transforms. Shapes are drawn at twice the
// output resolution and scaled down for smoothing; text is drawn at
// the output resolution in a fixed bitmap face.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/racechart/scene"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ss is the supersampling factor for shapes.
const ss = 2

// Encode renders the svg scene rooted at root and writes it to w as a
// PNG.
func Encode(w io.Writer, root *scene.Node) error {
	img, err := Render(root)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render renders the svg scene rooted at root to an image.
func Render(root *scene.Node) (*image.RGBA, error) {
	if root.Tag != "svg" {
		return nil, fmt.Errorf("raster: root must be svg, not %s", root.Tag)
	}
	fw, _ := root.FloatAttr("width")
	fh, _ := root.FloatAttr("height")
	width, height := int(fw), int(fh)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: bad size %gx%g", fw, fh)
	}

	r := &renderer{
		big: image.NewRGBA(image.Rect(0, 0, width*ss, height*ss)),
		z:   vector.NewRasterizer(width*ss, height*ss),
	}
	draw.Draw(r.big, r.big.Bounds(), image.White, image.Point{}, draw.Src)
	if err := r.walk(root, state{anchor: "start"}); err != nil {
		return nil, err
	}

	// Scale down, then put text on top at full resolution.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), r.big, r.big.Bounds(), draw.Src, nil)
	for _, t := range r.texts {
		drawText(dst, t)
	}
	return dst, nil
}

type renderer struct {
	big   *image.RGBA
	z     *vector.Rasterizer
	texts []text
}

// state is the inherited drawing state at a node.
type state struct {
	dx, dy float64
	anchor string
}

type text struct {
	x, y   float64
	anchor string
	s      string
	c      color.Color
}

func (r *renderer) walk(n *scene.Node, st state) error {
	if tr, ok := n.Attr("transform"); ok {
		dx, dy, err := parseTranslate(tr)
		if err != nil {
			return err
		}
		st.dx += dx
		st.dy += dy
	}
	if a, ok := n.Attr("text-anchor"); ok {
		st.anchor = a
	}
	f := func(name string) float64 {
		v, _ := n.FloatAttr(name)
		return v
	}

	switch n.Tag {
	case "svg", "g":
		for _, c := range n.Children {
			if err := r.walk(c, st); err != nil {
				return err
			}
		}
	case "circle":
		if c, ok := paint(n, "fill", color.Black); ok {
			r.circle(st.dx+f("cx"), st.dy+f("cy"), f("r"), c)
		}
	case "rect":
		if c, ok := paint(n, "fill", color.Black); ok {
			x, y := st.dx+f("x"), st.dy+f("y")
			r.polygon(c, x, y, x+f("width"), y, x+f("width"), y+f("height"), x, y+f("height"))
		}
	case "line":
		if c, ok := paint(n, "stroke", nil); ok {
			r.stroke(c, st.dx+f("x1"), st.dy+f("y1"), st.dx+f("x2"), st.dy+f("y2"))
		}
	case "path":
		c, ok := paint(n, "stroke", nil)
		if !ok {
			break
		}
		d, _ := n.Attr("d")
		pts, err := parsePath(d)
		if err != nil {
			return err
		}
		for i := 1; i < len(pts); i++ {
			r.stroke(c, st.dx+pts[i-1][0], st.dy+pts[i-1][1], st.dx+pts[i][0], st.dy+pts[i][1])
		}
	case "text":
		c, ok := paint(n, "fill", color.Black)
		if !ok {
			break
		}
		y := st.dy + f("y")
		if dy, ok := n.Attr("dy"); ok && strings.HasSuffix(dy, "em") {
			em, _ := strconv.ParseFloat(strings.TrimSuffix(dy, "em"), 64)
			y += em * float64(basicfont.Face7x13.Ascent)
		}
		r.texts = append(r.texts, text{st.dx + f("x"), y, st.anchor, n.Text, c})
	default:
		return fmt.Errorf("raster: unsupported element %s", n.Tag)
	}
	return nil
}

// paint returns the color of paint attribute attr. It returns false
// for "none", or if the attribute is missing and def is nil.
func paint(n *scene.Node, attr string, def color.Color) (color.Color, bool) {
	v, ok := n.Attr(attr)
	if !ok {
		return def, def != nil
	}
	return parseColor(v)
}

func parseColor(v string) (color.Color, bool) {
	switch v {
	case "none", "transparent":
		return nil, false
	case "currentColor", "black":
		return color.Black, true
	case "white":
		return color.White, true
	}
	if !strings.HasPrefix(v, "#") {
		return color.Black, true
	}
	hex := v[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return color.Black, true
	}
	return color.RGBA{uint8(x >> 16), uint8(x >> 8), uint8(x), 0xff}, true
}

func (r *renderer) fill(c color.Color) {
	r.z.Draw(r.big, r.big.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *renderer) polygon(c color.Color, xy ...float64) {
	r.z.Reset(r.big.Bounds().Dx(), r.big.Bounds().Dy())
	r.z.MoveTo(float32(xy[0]*ss), float32(xy[1]*ss))
	for i := 2; i+1 < len(xy); i += 2 {
		r.z.LineTo(float32(xy[i]*ss), float32(xy[i+1]*ss))
	}
	r.z.ClosePath()
	r.fill(c)
}

// stroke draws a one pixel wide line segment.
func (r *renderer) stroke(c color.Color, x1, y1, x2, y2 float64) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*0.5, dx/l*0.5
	r.polygon(c, x1+nx, y1+ny, x2+nx, y2+ny, x2-nx, y2-ny, x1-nx, y1-ny)
}

// circle fills a circle, approximated by four cubic Béziers.
func (r *renderer) circle(cx, cy, rad float64, c color.Color) {
	const k = 0.5522847498
	cx, cy, rad = cx*ss, cy*ss, rad*ss
	p := func(x, y float64) (float32, float32) { return float32(cx + x), float32(cy + y) }
	z := r.z
	z.Reset(r.big.Bounds().Dx(), r.big.Bounds().Dy())
	z.MoveTo(p(rad, 0))
	for _, q := range [][6]float64{
		{rad, k * rad, k * rad, rad, 0, rad},
		{-k * rad, rad, -rad, k * rad, -rad, 0},
		{-rad, -k * rad, -k * rad, -rad, 0, -rad},
		{k * rad, -rad, rad, -k * rad, rad, 0},
	} {
		bx, by := p(q[0], q[1])
		ccx, ccy := p(q[2], q[3])
		dx, dy := p(q[4], q[5])
		z.CubeTo(bx, by, ccx, ccy, dx, dy)
	}
	z.ClosePath()
	r.fill(c)
}

func drawText(dst *image.RGBA, t text) {
	face := basicfont.Face7x13
	x := t.x
	switch t.anchor {
	case "middle":
		x -= float64(font.MeasureString(face, t.s).Round()) / 2
	case "end":
		x -= float64(font.MeasureString(face, t.s).Round())
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(int(math.Round(x))), Y: fixed.I(int(math.Round(t.y)))},
	}
	d.DrawString(t.s)
}

func parseTranslate(s string) (dx, dy float64, err error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "translate(") || !strings.HasSuffix(s, ")") {
		return 0, 0, fmt.Errorf("raster: unsupported transform %q", s)
	}
	args := strings.FieldsFunc(s[len("translate("):len(s)-1], func(r rune) bool { return r == ',' || r == ' ' })
	if len(args) < 1 || len(args) > 2 {
		return 0, 0, fmt.Errorf("raster: bad transform %q", s)
	}
	if dx, err = strconv.ParseFloat(args[0], 64); err != nil {
		return 0, 0, fmt.Errorf("raster: bad transform %q: %w", s, err)
	}
	if len(args) == 2 {
		if dy, err = strconv.ParseFloat(args[1], 64); err != nil {
			return 0, 0, fmt.Errorf("raster: bad transform %q: %w", s, err)
		}
	}
	return dx, dy, nil
}

// parsePath returns the vertices of a path made of absolute M, L, H,
// and V commands.
func parsePath(d string) ([][2]float64, error) {
	var pts [][2]float64
	var cur [2]float64
	i := 0
	number := func() (float64, error) {
		j := i
		for j < len(d) && (d[j] == '-' && j == i || d[j] == '.' || d[j] >= '0' && d[j] <= '9' || d[j] == 'e') {
			j++
		}
		v, err := strconv.ParseFloat(d[i:j], 64)
		i = j
		if i < len(d) && (d[i] == ',' || d[i] == ' ') {
			i++
		}
		return v, err
	}
	for i < len(d) {
		cmd := d[i]
		i++
		var err error
		switch cmd {
		case 'M', 'L':
			if cur[0], err = number(); err != nil {
				break
			}
			cur[1], err = number()
		case 'H':
			cur[0], err = number()
		case 'V':
			cur[1], err = number()
		case ' ':
			continue
		default:
			return nil, fmt.Errorf("raster: unsupported path command %q in %q", cmd, d)
		}
		if err != nil {
			return nil, fmt.Errorf("raster: bad path %q: %w", d, err)
		}
		if cmd == 'M' && len(pts) > 0 {
			return nil, fmt.Errorf("raster: path %q has more than one subpath", d)
		}
		pts = append(pts, cur)
	}
	return pts, nil
}
