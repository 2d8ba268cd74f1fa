// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/aclements/racechart/chart"
	"github.com/aclements/racechart/race"
	"github.com/aclements/racechart/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeChart(t *testing.T) {
	container := scene.Elem("div")
	c, err := chart.Build(container, race.Default(), chart.LegendConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c.Root()))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 720, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())

	// The center of a dot has the dot's color.
	d := c.Dots()[0]
	cx, _ := d.FloatAttr("cx")
	cy, _ := d.FloatAttr("cy")
	want, _ := parseColor(mustAttr(t, d, "fill"))
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := img.At(int(cx), int(cy)).RGBA()
	assert.InDelta(t, wr>>8, gr>>8, 8)
	assert.InDelta(t, wg>>8, gg>>8, 8)
	assert.InDelta(t, wb>>8, gb>>8, 8)

	// The corner is background.
	br, bg, bb, _ := img.At(1, 1).RGBA()
	for _, v := range []uint32{br, bg, bb} {
		assert.GreaterOrEqual(t, v>>8, uint32(250))
	}
}

func mustAttr(t *testing.T, n *scene.Node, name string) string {
	v, ok := n.Attr(name)
	require.True(t, ok, "missing attribute %s", name)
	return v
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(scene.Elem("div"))
	assert.Error(t, err)

	_, err = Render(scene.Elem("svg"))
	assert.Error(t, err)

	root := scene.Elem("svg").SetAttr("width", 10).SetAttr("height", 10)
	root.AppendElem("g").SetAttr("transform", "rotate(45)")
	_, err = Render(root)
	assert.Error(t, err)

	root = scene.Elem("svg").SetAttr("width", 10).SetAttr("height", 10)
	root.AppendElem("ellipse")
	_, err = Render(root)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	dx, dy, err := parseTranslate("translate(0,450)")
	require.NoError(t, err)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 450.0, dy)
	dx, dy, err = parseTranslate("translate(12.5)")
	require.NoError(t, err)
	assert.Equal(t, 12.5, dx)
	assert.Equal(t, 0.0, dy)

	pts, err := parsePath("M-6,20H0V450H-6")
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{-6, 20}, {0, 20}, {0, 450}, {-6, 450}}, pts)
	_, err = parsePath("M0,0C1,1 2,2 3,3")
	assert.Error(t, err)

	c, ok := parseColor("#377eb8")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0x37, 0x7e, 0xb8, 0xff}, c)
	c, _ = parseColor("#fff")
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, c)
	_, ok = parseColor("none")
	assert.False(t, ok)
}
