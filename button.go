// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import "cogentcore.org/lace/lay"

// Button is a tool bar button: a [Label] surrounded by the
// [Settings.ButtonPadX] and [Settings.ButtonPadY] insets, running
// OnClick when activated. The box is named after the label text, as is
// the box of the label inside it.
type Button struct {
	WidgetBase

	// Label is the caption, padded inside the button box.
	Label Label

	// OnClick is called when the button is activated.
	OnClick func()
}

// NewButton returns a new [Button] with the given caption and click
// function.
func NewButton(txt string, onClick func()) *Button {
	return &Button{
		WidgetBase: WidgetBase{Name: txt},
		Label:      *NewLabel(txt),
		OnClick:    onClick,
	}
}

func (bt *Button) Collect(cx *lay.Context) lay.BB {
	bb := cx.Area(&bt.Box, bt.Name)
	lb := bt.Label.Collect(cx)
	cx.Distance(bb.X1, lb.X1, Prefs.ButtonPadX)
	cx.Distance(lb.X2, bb.X2, Prefs.ButtonPadX)
	cx.Distance(bb.Y1, lb.Y1, Prefs.ButtonPadY)
	cx.Distance(lb.Y2, bb.Y2, Prefs.ButtonPadY)
	return bb
}

// Click activates the button, running OnClick if it is set.
func (bt *Button) Click() {
	if bt.OnClick != nil {
		bt.OnClick()
	}
}
