// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import "cogentcore.org/lace/lay"

// MenuButton is a menu bar entry: a [Label] with the uniform
// [Settings.MenuPad] border on all four sides, denser than a tool bar
// [Button]. Opening an attached menu is not implemented.
type MenuButton struct {
	WidgetBase

	// Label is the caption, padded inside the button box.
	Label Label
}

// NewMenuButton returns a new [MenuButton] with the given caption.
func NewMenuButton(txt string) *MenuButton {
	return &MenuButton{
		WidgetBase: WidgetBase{Name: txt},
		Label:      *NewLabel(txt),
	}
}

func (mb *MenuButton) Collect(cx *lay.Context) lay.BB {
	bb := cx.Area(&mb.Box, mb.Name)
	lb := mb.Label.Collect(cx)
	cx.Distance(bb.X1, lb.X1, Prefs.MenuPad)
	cx.Distance(lb.X2, bb.X2, Prefs.MenuPad)
	cx.Distance(bb.Y1, lb.Y1, Prefs.MenuPad)
	cx.Distance(lb.Y2, bb.Y2, Prefs.MenuPad)
	return bb
}
