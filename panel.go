// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import "cogentcore.org/lace/lay"

// Panel is a flexible box with a caption [Label] floating inside it.
// The label is only ordered within the panel's edges, not positioned;
// the solver spreads the surrounding slack evenly, which centers the
// caption in the panel.
type Panel struct {
	WidgetBase

	// Label is the caption, floating inside the panel box.
	Label Label
}

// NewPanel returns a new [Panel] with the given caption.
func NewPanel(txt string) *Panel {
	return &Panel{
		WidgetBase: WidgetBase{Name: txt},
		Label:      *NewLabel(txt),
	}
}

func (pn *Panel) Collect(cx *lay.Context) lay.BB {
	bb := cx.Area(&pn.Box, pn.Name)
	lb := pn.Label.Collect(cx)
	cx.Order(bb.X1, lb.X1)
	cx.Order(lb.X2, bb.X2)
	cx.Order(bb.Y1, lb.Y1)
	cx.Order(lb.Y2, bb.Y2)
	return bb
}
