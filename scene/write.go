// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// geometry lists, for each SVG element WriteSVG understands, the
// attributes svgo takes as integer arguments.
var geometry = map[string][]string{
	"svg":    {"width", "height"},
	"circle": {"cx", "cy", "r"},
	"rect":   {"x", "y", "width", "height"},
	"line":   {"x1", "y1", "x2", "y2"},
	"text":   {"x", "y"},
	"g":      nil,
	"path":   {"d"},
}

// WriteSVG writes the SVG subtree rooted at root to w. root must be
// an "svg" node.
//
// Coordinates are rounded to whole pixels. Transforms and other
// attributes are written as given.
func WriteSVG(w io.Writer, root *Node) error {
	if root.Tag != "svg" {
		return fmt.Errorf("scene: root of SVG must be svg, not %s", root.Tag)
	}
	canvas := svg.New(w)
	return writeSVG(canvas, root)
}

func writeSVG(canvas *svg.SVG, n *Node) error {
	geom, ok := geometry[n.Tag]
	if !ok {
		return fmt.Errorf("scene: unsupported SVG element %s", n.Tag)
	}
	if n.Tag != "svg" && n.Tag != "g" && len(n.Children) > 0 {
		return fmt.Errorf("scene: %s element cannot have children", n.Tag)
	}
	ints := make([]int, len(geom))
	for i, name := range geom {
		if name == "d" {
			continue
		}
		f, _ := n.FloatAttr(name)
		ints[i] = round(f)
	}

	// Everything else goes through as raw attributes.
	var rest []string
	n.Attrs(func(name, value string) {
		for _, g := range geom {
			if g == name {
				return
			}
		}
		if n.Tag == "svg" && name == "xmlns" {
			return
		}
		rest = append(rest, name+`="`+html.EscapeString(value)+`"`)
	})
	if st := n.StyleText(); st != "" {
		rest = append(rest, `style="`+html.EscapeString(st)+`"`)
	}

	children := func() error {
		for _, c := range n.Children {
			if err := writeSVG(canvas, c); err != nil {
				return err
			}
		}
		return nil
	}

	switch n.Tag {
	case "svg":
		canvas.Start(ints[0], ints[1], rest...)
		if err := children(); err != nil {
			return err
		}
		canvas.End()
	case "g":
		canvas.Group(rest...)
		if err := children(); err != nil {
			return err
		}
		canvas.Gend()
	case "circle":
		canvas.Circle(ints[0], ints[1], ints[2], rest...)
	case "rect":
		canvas.Rect(ints[0], ints[1], ints[2], ints[3], rest...)
	case "line":
		canvas.Line(ints[0], ints[1], ints[2], ints[3], rest...)
	case "path":
		d, _ := n.Attr("d")
		canvas.Path(d, rest...)
	case "text":
		canvas.Text(ints[0], ints[1], n.Text, rest...)
	}
	return nil
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "link": true, "meta": true,
}

// WriteHTML writes the subtree rooted at n to w as HTML. Any svg
// subtrees are written with WriteSVG.
func WriteHTML(w io.Writer, n *Node) error {
	if n.Tag == "svg" {
		// Drop the XML prologue svgo writes; it isn't valid
		// inside an HTML document.
		var buf bytes.Buffer
		if err := WriteSVG(&buf, n); err != nil {
			return err
		}
		b := buf.Bytes()
		if i := bytes.Index(b, []byte("<svg")); i > 0 {
			b = b[i:]
		}
		_, err := w.Write(b)
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("<" + n.Tag)
	n.Attrs(func(name, value string) {
		fmt.Fprintf(&buf, ` %s="%s"`, name, html.EscapeString(value))
	})
	if st := n.StyleText(); st != "" {
		fmt.Fprintf(&buf, ` style="%s"`, html.EscapeString(st))
	}
	buf.WriteString(">")
	if voidElements[n.Tag] {
		_, err := w.Write(buf.Bytes())
		return err
	}
	buf.WriteString(html.EscapeString(n.Text))
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := WriteHTML(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}
