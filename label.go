// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import (
	"cogentcore.org/lace/lay"
	"cogentcore.org/lace/text"
)

// Label is a single line of text. Its box is exactly as wide as the
// measured text and exactly one line high, so a label never stretches;
// containers that need slack around a label must provide it themselves.
type Label struct {
	WidgetBase

	// Text is the displayed string.
	Text string

	// Face is the font face the text is measured in.
	Face text.Face
}

// NewLabel returns a new [Label] showing the given text in the
// [text.Regular] face.
func NewLabel(txt string) *Label {
	return &Label{WidgetBase: WidgetBase{Name: txt}, Text: txt}
}

func (lb *Label) Collect(cx *lay.Context) lay.BB {
	bb := cx.Area(&lb.Box, lb.Name)
	cx.Distance(bb.X1, bb.X2, cx.Text.Width(lb.Face, lb.Text))
	cx.Distance(bb.Y1, bb.Y2, cx.Text.Metrics(lb.Face).Height())
	return bb
}
