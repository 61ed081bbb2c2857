// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lay implements constraint-based layout. Widgets declare linear
// relationships between the edges of their boxes (equalities, fixed
// distances, orderings), and [System.Solve] narrows the interval of every
// edge until it is an exact position. A layout pass is one [Compute]
// call: collect the constraints of the whole widget tree, pin the root to
// the window, solve, and read the geometry back from each widget's
// [Rect].
package lay

import "cogentcore.org/lace/text"

// Layout is the interface for anything that can take part in a layout
// pass. Container widgets recurse into their children in Collect and
// relate the returned child edges to their own.
type Layout interface {
	// Collect registers the widget's edge variables and constraints
	// with the system of the given pass, recursing into any children,
	// and returns the handles of its own box edges for the parent to
	// constrain further.
	Collect(cx *Context) BB

	// Rect returns the box computed by the last layout pass.
	Rect() Rect
}

// Context carries the state of one layout pass: the constraint [System]
// being filled, and the [text.Source] that text widgets measure
// themselves with.
type Context struct {
	*System

	// Text measures strings and font metrics for widgets that size
	// themselves from text.
	Text text.Source
}

// Compute runs one layout pass over the tree rooted at root: it collects
// constraints from every widget, pins the root box to the window origin
// and the given width and height, and solves. The computed geometry is
// left in each widget's [Rect]. Layouts that contradict themselves or
// leave edges undetermined panic; see [System.Solve].
func Compute(root Layout, src text.Source, w, h float32) {
	cx := &Context{System: NewSystem(), Text: src}
	r := root.Collect(cx)
	r.X1.Assign(0)
	r.Y1.Assign(0)
	r.X2.Assign(w)
	r.Y2.Assign(h)
	cx.Solve()
}
