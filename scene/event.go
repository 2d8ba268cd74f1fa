// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "time"

// Pointer event types.
const (
	MouseOver = "mouseover"
	MouseOut  = "mouseout"
)

// An Event is a pointer event delivered to a node.
type Event struct {
	Type string

	// X and Y are the pointer's page coordinates.
	X, Y float64

	// At is when the event happened. Transitions started by a
	// listener are timed from At.
	At time.Time

	// Target is the node the event was dispatched to. Dispatch
	// fills it in.
	Target *Node
}

// A Listener handles an event dispatched to a node.
type Listener func(ev Event)

// On registers l to be called for events of type typ dispatched to
// n. Listeners run in registration order.
func (n *Node) On(typ string, l Listener) *Node {
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	n.listeners[typ] = append(n.listeners[typ], l)
	return n
}

// Listening reports whether n has any listeners for typ.
func (n *Node) Listening(typ string) bool {
	return len(n.listeners[typ]) > 0
}

// Dispatch delivers ev to n's listeners for ev.Type. Events do not
// bubble. Dispatch reports whether any listener ran.
func (n *Node) Dispatch(ev Event) bool {
	ev.Target = n
	ls := n.listeners[ev.Type]
	for _, l := range ls {
		l(ev)
	}
	return len(ls) > 0
}
