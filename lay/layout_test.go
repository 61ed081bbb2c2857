// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lay

import (
	"testing"

	"cogentcore.org/lace/text"
	"github.com/stretchr/testify/assert"
)

// demo is a minimal [Layout] leaf for tests, optionally of fixed width
// or height (0 leaves the axis flexible).
type demo struct {
	box  Rect
	name string
	w, h float32
}

func (d *demo) Collect(cx *Context) BB {
	bb := cx.Area(&d.box, d.name)
	if d.w > 0 {
		cx.Distance(bb.X1, bb.X2, d.w)
	}
	if d.h > 0 {
		cx.Distance(bb.Y1, bb.Y2, d.h)
	}
	return bb
}

func (d *demo) Rect() Rect { return d.box }

// column stacks its children vertically, sharing its horizontal extent
// with every child.
type column struct {
	box  Rect
	kids []Layout
}

func (c *column) Collect(cx *Context) BB {
	bb := cx.Area(&c.box, "column")
	var prev BB
	for i, k := range c.kids {
		kb := k.Collect(cx)
		cx.Equal(kb.X1, bb.X1)
		cx.Equal(kb.X2, bb.X2)
		if i == 0 {
			cx.Equal(kb.Y1, bb.Y1)
		} else {
			cx.Equal(kb.Y1, prev.Y2)
		}
		prev = kb
	}
	cx.Equal(prev.Y2, bb.Y2)
	return bb
}

func (c *column) Rect() Rect { return c.box }

func TestComputeLeaf(t *testing.T) {
	d := &demo{name: "leaf"}
	Compute(d, text.Fixed{}, 400, 300)
	assert.Equal(t, Rect{X1: 0, Y1: 0, X2: 400, Y2: 300}, d.Rect())
}

func TestComputeColumn(t *testing.T) {
	a := &demo{name: "a", h: 100}
	b := &demo{name: "b"}
	root := &column{kids: []Layout{a, b}}
	Compute(root, text.Fixed{}, 800, 600)

	assert.Equal(t, Rect{X1: 0, Y1: 0, X2: 800, Y2: 100}, a.Rect())
	assert.Equal(t, Rect{X1: 0, Y1: 100, X2: 800, Y2: 600}, b.Rect())

	// The children tile the column exactly.
	assert.Equal(t, root.Rect().Y1, a.Rect().Y1)
	assert.Equal(t, a.Rect().Y2, b.Rect().Y1)
	assert.Equal(t, b.Rect().Y2, root.Rect().Y2)
	for _, d := range []*demo{a, b} {
		assert.LessOrEqual(t, d.Rect().X1, d.Rect().X2)
		assert.LessOrEqual(t, d.Rect().Y1, d.Rect().Y2)
	}
}

func TestComputeCentering(t *testing.T) {
	// A fixed-height box between two flexible fillers gets centered,
	// with the slack split evenly.
	top := &demo{name: "top"}
	mid := &demo{name: "mid", h: 100}
	bot := &demo{name: "bot"}
	root := &column{kids: []Layout{top, mid, bot}}
	Compute(root, text.Fixed{}, 800, 600)

	assert.Equal(t, Rect{X1: 0, Y1: 250, X2: 800, Y2: 350}, mid.Rect())
	assert.Equal(t, Rect{X1: 0, Y1: 0, X2: 800, Y2: 250}, top.Rect())
	assert.Equal(t, Rect{X1: 0, Y1: 350, X2: 800, Y2: 600}, bot.Rect())
}

func TestComputeDeterminism(t *testing.T) {
	build := func() (*column, *demo, *demo) {
		a := &demo{name: "a", h: 100}
		b := &demo{name: "b"}
		return &column{kids: []Layout{a, b}}, a, b
	}

	r1, a1, b1 := build()
	r2, a2, b2 := build()
	Compute(r1, text.Fixed{}, 800, 600)
	Compute(r2, text.Fixed{}, 800, 600)
	assert.Equal(t, a1.Rect(), a2.Rect())
	assert.Equal(t, b1.Rect(), b2.Rect())

	// Recomputing the same tree resets and reproduces the same result.
	prev := a1.Rect()
	Compute(r1, text.Fixed{}, 800, 600)
	assert.Equal(t, prev, a1.Rect())
}

func TestComputeRoundTrip(t *testing.T) {
	// Pinning the sizes read back from one pass reproduces the identical
	// layout in the next.
	a := &demo{name: "a", h: 100}
	b := &demo{name: "b"}
	root := &column{kids: []Layout{a, b}}
	Compute(root, text.Fixed{}, 800, 600)

	ar, br := a.Rect(), b.Rect()
	a.w, a.h = ar.Size().X, ar.Size().Y
	b.w, b.h = br.Size().X, br.Size().Y
	Compute(root, text.Fixed{}, 800, 600)
	assert.Equal(t, ar, a.Rect())
	assert.Equal(t, br, b.Rect())
}

func TestComputeContradiction(t *testing.T) {
	// A fixed-width root cannot also fill the window.
	d := &demo{name: "leaf", w: 100}
	assert.Panics(t, func() {
		Compute(d, text.Fixed{}, 400, 300)
	})
}

func TestRect(t *testing.T) {
	r := Rect{X1: 10, Y1: 20, X2: 110, Y2: 70}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(110, 70))
	assert.True(t, r.Contains(50, 50))
	assert.False(t, r.Contains(111, 50))
	assert.False(t, r.Contains(50, 19))
	assert.Equal(t, float32(100), r.Size().X)
	assert.Equal(t, float32(50), r.Size().Y)
	assert.Equal(t, "(10, 20)-(110, 70)", r.String())
}
