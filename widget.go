// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import "cogentcore.org/lace/lay"

// WidgetBase is the part shared by every widget that owns a box of its
// own: the persistent [lay.Rect] that layout passes write into, and the
// name that identifies the box in solver diagnostics. Widgets embed it
// and register the box with [lay.Context.Area] in their Collect method.
type WidgetBase struct {
	// Name identifies the widget's box in constraint diagnostics.
	Name string

	// Box is the widget's computed geometry, in window coordinates.
	// It is valid after the [lay.Compute] pass that collected it.
	Box lay.Rect
}

// Rect returns the box computed by the last layout pass.
func (wb *WidgetBase) Rect() lay.Rect {
	return wb.Box
}
