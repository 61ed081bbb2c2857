// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import "cogentcore.org/lace/lay"

// Bar is a horizontal strip of items: a tool bar or a menu bar. The
// items flow left to right pinned to the bar's left edge and vertical
// extent, while the bar's own right edge stays free, so the bar spans
// whatever width its parent gives it and the items hug the left.
type Bar struct {
	WidgetBase

	// Items is the interior left-to-right flow of the bar's items.
	Items *Flow
}

// NewToolBar returns a new [Bar] holding the given items, typically
// [Button]s. It panics if there are no items.
func NewToolBar(items ...lay.Layout) *Bar {
	return &Bar{WidgetBase{Name: "<toolbar>"}, NewFlow(Right, items...)}
}

// NewMenuBar returns a new [Bar] holding the given items, typically
// [MenuButton]s. It panics if there are no items.
func NewMenuBar(items ...lay.Layout) *Bar {
	return &Bar{WidgetBase{Name: "<menubar>"}, NewFlow(Right, items...)}
}

func (br *Bar) Collect(cx *lay.Context) lay.BB {
	bb := cx.Area(&br.Box, br.Name)
	ib := br.Items.Collect(cx)
	cx.Equal(bb.X1, ib.X1)
	cx.Equal(bb.Y1, ib.Y1)
	cx.Equal(bb.Y2, ib.Y2)
	return bb
}
