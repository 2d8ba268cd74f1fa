// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is a small DOM-like element tree.
//
// A scene is built from Nodes, each with a tag, ordered attributes
// and style properties, optional text, and children. Nodes can carry
// event listeners, which lets interactive behavior be exercised
// without a browser. Scenes are written out with WriteSVG and
// WriteHTML.
package scene

import (
	"fmt"
	"strconv"
	"time"
)

// A Node is an element in a scene.
type Node struct {
	Tag string

	// Text is the text content of the node. It is written before
	// any children.
	Text string

	Children []*Node

	parent    *Node
	attrs     []kv
	styles    []kv
	listeners map[string][]Listener
}

type kv struct {
	k, v string
}

// Elem returns a new detached node with the given tag.
func Elem(tag string) *Node {
	return &Node{Tag: tag}
}

// Parent returns n's parent, or nil if n is detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Append attaches child as the last child of n and returns child. If
// child is already attached elsewhere, it is moved.
func (n *Node) Append(child *Node) *Node {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.Children = append(n.Children, child)
	return child
}

// AppendElem creates a node with the given tag, appends it to n, and
// returns it.
func (n *Node) AppendElem(tag string) *Node {
	return n.Append(Elem(tag))
}

func (n *Node) remove(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// RemoveChildren detaches all of n's children.
func (n *Node) RemoveChildren() {
	for _, c := range n.Children {
		c.parent = nil
	}
	n.Children = nil
}

// SetAttr sets attribute name to value and returns n. value is
// formatted with FormatValue.
func (n *Node) SetAttr(name string, value interface{}) *Node {
	n.attrs = set(n.attrs, name, FormatValue(value))
	return n
}

// Attr returns the value of attribute name.
func (n *Node) Attr(name string) (string, bool) {
	return get(n.attrs, name)
}

// FloatAttr returns the value of attribute name parsed as a float. It
// returns 0, false if the attribute is missing or not a number.
func (n *Node) FloatAttr(name string) (float64, bool) {
	s, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Attrs calls fn for each attribute of n in the order they were
// first set.
func (n *Node) Attrs(fn func(name, value string)) {
	for _, a := range n.attrs {
		fn(a.k, a.v)
	}
}

// SetStyle sets style property name to value and returns n.
func (n *Node) SetStyle(name string, value interface{}) *Node {
	n.styles = set(n.styles, name, FormatValue(value))
	return n
}

// Style returns the value of style property name.
func (n *Node) Style(name string) (string, bool) {
	return get(n.styles, name)
}

// StyleText returns n's style properties in CSS declaration syntax,
// or "" if there are none.
func (n *Node) StyleText() string {
	var s string
	for i, p := range n.styles {
		if i > 0 {
			s += ";"
		}
		s += p.k + ":" + p.v
	}
	return s
}

// ID returns n's id attribute.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// Class returns n's class attribute.
func (n *Node) Class() string {
	c, _ := n.Attr("class")
	return c
}

// SetText sets n's text content and returns n.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

func set(list []kv, k, v string) []kv {
	for i := range list {
		if list[i].k == k {
			list[i].v = v
			return list
		}
	}
	return append(list, kv{k, v})
}

func get(list []kv, k string) (string, bool) {
	for _, p := range list {
		if p.k == k {
			return p.v, true
		}
	}
	return "", false
}

// FormatValue formats an attribute or style value. Floats are
// formatted with the shortest representation that round-trips;
// time.Times use RFC 3339 with nanoseconds; everything else uses
// fmt.Sprint.
func FormatValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case int:
		return strconv.Itoa(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// Walk calls fn for n and each of its descendants in document order.
// If fn returns false, Walk does not descend into that node's
// children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns n and all descendants of n for which pred is true,
// in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(m *Node) bool {
		if pred(m) {
			out = append(out, m)
		}
		return true
	})
	return out
}

// Find returns the first node in document order for which pred is
// true, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(m *Node) bool {
		if found != nil {
			return false
		}
		if pred(m) {
			found = m
			return false
		}
		return true
	})
	return found
}

// ByID returns the first node under n with the given id, or nil.
func (n *Node) ByID(id string) *Node {
	return n.Find(func(m *Node) bool { return m.ID() == id })
}

// ByClass returns all nodes under n with the given class.
func (n *Node) ByClass(class string) []*Node {
	return n.FindAll(func(m *Node) bool { return m.Class() == class })
}

// Equal reports whether n and m are structurally identical: same
// tags, text, attributes, styles, and children, recursively. Parents
// and listeners are not compared.
func (n *Node) Equal(m *Node) bool {
	if n.Tag != m.Tag || n.Text != m.Text || len(n.Children) != len(m.Children) {
		return false
	}
	if !equalKVs(n.attrs, m.attrs) || !equalKVs(n.styles, m.styles) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(m.Children[i]) {
			return false
		}
	}
	return true
}

func equalKVs(a, b []kv) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
