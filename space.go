// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import "cogentcore.org/lace/lay"

// Space is a flexible filler with no content of its own. It emits only
// its box, so the solver stretches it over whatever room its neighbors
// leave, which makes it the standard way to absorb leftover space in a
// [Flow] or to push siblings apart.
type Space struct {
	WidgetBase
}

// NewSpace returns a new flexible filler.
func NewSpace() *Space {
	return &Space{WidgetBase{Name: "<space>"}}
}

func (sp *Space) Collect(cx *lay.Context) lay.BB {
	return cx.Area(&sp.Box, sp.Name)
}
