// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/aclements/racechart/scene"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}

func hover(dot *scene.Node, typ string, at time.Time) {
	dot.Dispatch(scene.Event{Type: typ, X: 100, Y: 200, At: at})
}

func style(n *scene.Node, name string) string {
	v, _ := n.Style(name)
	return v
}

func TestTooltipEnterFlagged(t *testing.T) {
	_, c := build(t, testRecords(), FullConfig())
	tt := c.Tooltip()
	if tt == nil {
		t.Fatal("full chart has no tooltip")
	}
	if tt.State() != Hidden || tt.Visible(ms(0)) || tt.Opacity(ms(0)) != 0 {
		t.Fatalf("initial tooltip: state %v, visible %v, opacity %v", tt.State(), tt.Visible(ms(0)), tt.Opacity(ms(0)))
	}

	hover(c.Dots()[2], scene.MouseOver, ms(0))
	if tt.State() != Visible || !tt.Visible(ms(0)) {
		t.Fatalf("after enter: state %v, visible %v", tt.State(), tt.Visible(ms(0)))
	}
	want := []string{"Admitter: XXX", "Year: 2006, Time: 39:01", "Admitted in 2013"}
	if got := tt.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("lines: want %q, got %q", want, got)
	}
	if left, top := tt.Position(); left != 110 || top != 172 {
		t.Errorf("position: want (110, 172), got (%v, %v)", left, top)
	}
	if tt.Year() != 2006 {
		t.Errorf("year: want 2006, got %d", tt.Year())
	}

	n := tt.Node()
	if len(n.Children) != 3 || n.Children[2].Text != "Admitted in 2013" {
		t.Errorf("tooltip children do not match lines")
	}
	if year, _ := n.Attr("data-year"); year != "2006" {
		t.Errorf("data-year: want 2006, got %q", year)
	}
	if l := style(n, "left"); l != "110px" {
		t.Errorf("left: want 110px, got %q", l)
	}

	// The fade in takes the configured 200ms.
	for _, test := range []struct {
		at   int
		want float64
	}{
		{0, 0}, {100, 0.5}, {200, 1}, {5000, 1},
	} {
		if got := tt.Opacity(ms(test.at)); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("opacity at %dms: want %v, got %v", test.at, test.want, got)
		}
	}
}

func TestTooltipEnterClean(t *testing.T) {
	_, c := build(t, testRecords(), FullConfig())
	hover(c.Dots()[1], scene.MouseOver, ms(0))
	lines := c.Tooltip().Lines()
	if len(lines) != 2 || lines[1] != "Year: 2015, Time: 39:42" {
		t.Errorf("lines: got %q", lines)
	}
	if n := len(c.Tooltip().Node().Children); n != 2 {
		t.Errorf("want 2 tooltip lines, got %d", n)
	}
}

func TestTooltipLeave(t *testing.T) {
	_, c := build(t, testRecords(), FullConfig())
	tt := c.Tooltip()
	dot := c.Dots()[0]
	hover(dot, scene.MouseOver, ms(0))
	before := tt.Lines()

	hover(dot, scene.MouseOut, ms(1000))
	if tt.State() != Hidden {
		t.Errorf("state after leave: want Hidden, got %v", tt.State())
	}
	if o := tt.Opacity(ms(1000)); o != 1 {
		t.Errorf("opacity at leave: want 1, got %v", o)
	}
	if o := tt.Opacity(ms(1100)); !tt.Visible(ms(1100)) || o >= 1 {
		t.Errorf("mid fade: visible %v, opacity %v", tt.Visible(ms(1100)), o)
	}
	if o := tt.Opacity(ms(1200)); tt.Visible(ms(1200)) || o != 0 {
		t.Errorf("after fade: visible %v, opacity %v", tt.Visible(ms(1200)), o)
	}

	// Content stays until the next enter.
	if !reflect.DeepEqual(before, tt.Lines()) || len(tt.Node().Children) != 3 {
		t.Errorf("content changed on leave: %q", tt.Lines())
	}

	// The node stays visible while fading and hides once the fade
	// is over.
	if v := style(tt.Node(), "visibility"); v != "visible" {
		t.Errorf("visibility at leave: want visible, got %q", v)
	}
	if o := style(tt.Node(), "opacity"); o != "0" {
		t.Errorf("target opacity at leave: want 0, got %q", o)
	}
	tt.Update(ms(1100))
	if v := style(tt.Node(), "visibility"); v != "visible" {
		t.Errorf("visibility mid fade: want visible, got %q", v)
	}
	tt.Update(ms(1200))
	if v := style(tt.Node(), "visibility"); v != "hidden" {
		t.Errorf("visibility after fade: want hidden, got %q", v)
	}
}

func TestTooltipLastEventWins(t *testing.T) {
	_, c := build(t, testRecords(), FullConfig())
	tt := c.Tooltip()
	dots := c.Dots()

	// Leave halfway through the fade in: the fade out starts from
	// the current opacity.
	hover(dots[0], scene.MouseOver, ms(0))
	hover(dots[0], scene.MouseOut, ms(100))
	if o := tt.Opacity(ms(100)); math.Abs(o-0.5) > 1e-9 {
		t.Errorf("fade out start: want 0.5, got %v", o)
	}
	if o := tt.Opacity(ms(300)); o != 0 {
		t.Errorf("fade out end: want 0, got %v", o)
	}

	// Re-entering while visible replaces the content.
	hover(dots[0], scene.MouseOver, ms(1000))
	hover(dots[1], scene.MouseOver, ms(1050))
	if tt.State() != Visible || tt.Year() != 2015 || len(tt.Lines()) != 2 {
		t.Errorf("after re-enter: state %v, year %d, lines %q", tt.State(), tt.Year(), tt.Lines())
	}
	if o := tt.Opacity(ms(1250)); o != 1 {
		t.Errorf("opacity after re-enter: want 1, got %v", o)
	}
	tt.Update(ms(1250))
	if v := style(tt.Node(), "visibility"); v != "visible" {
		t.Errorf("visibility: want visible, got %q", v)
	}
}

func TestEaseCubic(t *testing.T) {
	for _, x := range []float64{0, 0.5, 1} {
		if got := easeCubic(x); got != x {
			t.Errorf("easeCubic(%v) = %v, want %v", x, got, x)
		}
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := easeCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("easeCubic not monotonic at %v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}
