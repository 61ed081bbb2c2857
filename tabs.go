// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import (
	"slices"

	"cogentcore.org/lace/lay"
	"cogentcore.org/lace/text"
)

// Tab is a [lay.Layout] that can be shown in a [Tabs] set and captions
// itself in the tab strip.
type Tab interface {
	lay.Layout

	// Title returns the caption shown in the tab strip.
	Title() string
}

// Tabs shows one of a set of [Tab] children at a time. The current tab
// fills the set's box apart from a caption strip at the top that is
// [Settings.TabStripLines] line heights tall; the other tabs keep the
// geometry of the last pass that showed them. An empty set is just a
// flexible box.
type Tabs struct {
	WidgetBase

	tabs    []Tab
	current int
}

// NewTabs returns a new empty [Tabs] set.
func NewTabs() *Tabs {
	return &Tabs{WidgetBase: WidgetBase{Name: "<tabset>"}}
}

// Add inserts t after the current tab and makes it current.
func (ts *Tabs) Add(t Tab) {
	if len(ts.tabs) > 0 {
		ts.current++
	}
	ts.tabs = slices.Insert(ts.tabs, ts.current, t)
}

// Remove takes the current tab out of the set and returns it, or nil if
// the set is empty. The tab before the removed one becomes current.
func (ts *Tabs) Remove() Tab {
	if ts.current >= len(ts.tabs) {
		return nil
	}
	t := ts.tabs[ts.current]
	ts.tabs = slices.Delete(ts.tabs, ts.current, ts.current+1)
	if ts.current > 0 {
		ts.current--
	}
	return t
}

// Current returns the tab shown by the set, or nil if it is empty.
func (ts *Tabs) Current() Tab {
	if ts.current >= len(ts.tabs) {
		return nil
	}
	return ts.tabs[ts.current]
}

// Select makes the tab at index i current, reporting whether that
// changed anything.
func (ts *Tabs) Select(i int) bool {
	if i < 0 || i >= len(ts.tabs) || i == ts.current {
		return false
	}
	ts.current = i
	return true
}

// Len returns the number of tabs in the set.
func (ts *Tabs) Len() int {
	return len(ts.tabs)
}

func (ts *Tabs) Collect(cx *lay.Context) lay.BB {
	bb := cx.Area(&ts.Box, ts.Name)
	if ts.current < len(ts.tabs) {
		tb := ts.tabs[ts.current].Collect(cx)

		height := Prefs.TabStripLines * cx.Text.Metrics(text.Regular).Height()

		cx.Equal(bb.X1, tb.X1)
		cx.Equal(tb.X2, bb.X2)
		cx.Distance(bb.Y1, tb.Y1, height)
		cx.Equal(tb.Y2, bb.Y2)
	}
	return bb
}
