// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import (
	"slices"

	"cogentcore.org/lace/lay"
)

// Flow lays its children out in a row or column. Adjacent children
// share an edge along the flow axis and span the same extent across it,
// so the children tile the flow exactly: any slack has to be taken up
// by the children themselves, usually by including a [Space].
//
// A Flow has no box of its own; its extent is defined entirely by the
// boxes of its first and last children.
type Flow struct {
	// Dir is the direction children are laid out in.
	Dir Dir

	// Kids are the children, in declaration order. For the [Up] and
	// [Left] directions they are placed in reverse, so the first kid
	// sits at the bottom or right.
	Kids []lay.Layout
}

// NewFlow returns a new [Flow] of the given children along dir.
// It panics if there are no children, as an empty flow has no edges to
// define its extent with.
func NewFlow(dir Dir, kids ...lay.Layout) *Flow {
	if len(kids) == 0 {
		panic("lace.NewFlow: flow must have at least one child")
	}
	return &Flow{Dir: dir, Kids: kids}
}

func (fl *Flow) Collect(cx *lay.Context) lay.BB {
	bbs := make([]lay.BB, len(fl.Kids))
	for i, k := range fl.Kids {
		bbs[i] = k.Collect(cx)
	}
	if fl.Dir.Reversed() {
		slices.Reverse(bbs)
	}
	for i := 0; i+1 < len(bbs); i++ {
		a, b := bbs[i], bbs[i+1]
		if fl.Dir.Vertical() {
			cx.Equal(a.X1, b.X1)
			cx.Equal(a.X2, b.X2)
			cx.Equal(a.Y2, b.Y1)
		} else {
			cx.Equal(a.Y1, b.Y1)
			cx.Equal(a.Y2, b.Y2)
			cx.Equal(a.X2, b.X1)
		}
	}
	first, last := bbs[0], bbs[len(bbs)-1]
	return lay.BB{X1: first.X1, Y1: first.Y1, X2: last.X2, Y2: last.Y2}
}

// Rect returns the combined box of the flow, spanning from the
// top-left of its first placed child to the bottom-right of its last.
func (fl *Flow) Rect() lay.Rect {
	first := fl.Kids[0].Rect()
	last := fl.Kids[len(fl.Kids)-1].Rect()
	if fl.Dir.Reversed() {
		first, last = last, first
	}
	return lay.Rect{X1: first.X1, Y1: first.Y1, X2: last.X2, Y2: last.Y2}
}

// Hit returns the child owning the given position, the way events are
// routed: scanning in declaration order, each child claims every
// position that is not past its trailing edge, and the last child
// claims the rest. Nested flows are descended into.
func (fl *Flow) Hit(x, y float32) lay.Layout {
	k := fl.Kids[len(fl.Kids)-1]
	for _, kid := range fl.Kids[:len(fl.Kids)-1] {
		r := kid.Rect()
		var in bool
		switch fl.Dir {
		case Down:
			in = y < r.Y2
		case Up:
			in = y >= r.Y1
		case Left:
			in = x >= r.X1
		case Right:
			in = x < r.X2
		}
		if in {
			k = kid
			break
		}
	}
	if sub, ok := k.(*Flow); ok {
		return sub.Hit(x, y)
	}
	return k
}
