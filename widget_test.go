// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import (
	"testing"

	"cogentcore.org/lace/lay"
	"github.com/stretchr/testify/assert"
)

// corner wraps a fixed-size widget so it can fill a window: the widget
// keeps its own size in the top-left, with fillers taking the rest.
func corner(w lay.Layout) *Flow {
	return NewFlow(Down, NewFlow(Right, w, NewSpace()), NewSpace())
}

func TestLabel(t *testing.T) {
	lb := NewLabel("Open")
	lay.Compute(corner(lb), testSrc, 800, 600)

	// 4 runes of 10 wide, one line of 10 tall.
	assert.Equal(t, lay.Rect{X1: 0, Y1: 0, X2: 40, Y2: 10}, lb.Box)
}

func TestButton(t *testing.T) {
	bt := NewButton("Open", nil)
	lay.Compute(corner(bt), testSrc, 800, 600)

	assert.Equal(t, lay.Rect{X1: 0, Y1: 0, X2: 80, Y2: 30}, bt.Box)
	assert.Equal(t, lay.Rect{X1: 20, Y1: 10, X2: 60, Y2: 20}, bt.Label.Box)
}

func TestButtonPads(t *testing.T) {
	old := *Prefs
	defer func() { *Prefs = old }()
	Prefs.ButtonPadX = 5
	Prefs.ButtonPadY = 5

	bt := NewButton("Open", nil)
	lay.Compute(corner(bt), testSrc, 800, 600)

	assert.Equal(t, lay.Rect{X1: 0, Y1: 0, X2: 50, Y2: 20}, bt.Box)
	assert.Equal(t, lay.Rect{X1: 5, Y1: 5, X2: 45, Y2: 15}, bt.Label.Box)
}

func TestButtonClick(t *testing.T) {
	clicks := 0
	bt := NewButton("Run", func() { clicks++ })
	bt.Click()
	bt.Click()
	assert.Equal(t, 2, clicks)

	assert.NotPanics(t, func() { NewButton("Idle", nil).Click() })
}

func TestMenuButton(t *testing.T) {
	mb := NewMenuButton("File")
	lay.Compute(corner(mb), testSrc, 800, 600)

	assert.Equal(t, lay.Rect{X1: 0, Y1: 0, X2: 50, Y2: 20}, mb.Box)
	assert.Equal(t, lay.Rect{X1: 5, Y1: 5, X2: 45, Y2: 15}, mb.Label.Box)
}

func TestPanel(t *testing.T) {
	pn := NewPanel("Demo")
	lay.Compute(pn, testSrc, 400, 300)

	assert.Equal(t, lay.Rect{X1: 0, Y1: 0, X2: 400, Y2: 300}, pn.Box)
	// The floating caption ends up centered.
	assert.Equal(t, lay.Rect{X1: 180, Y1: 145, X2: 220, Y2: 155}, pn.Label.Box)
}

func TestSpace(t *testing.T) {
	sp := NewSpace()
	lay.Compute(sp, testSrc, 400, 300)

	assert.Equal(t, lay.Rect{X1: 0, Y1: 0, X2: 400, Y2: 300}, sp.Box)
}
