// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lay

import (
	"fmt"

	"cogentcore.org/lace/math32"
)

// Rect is the computed axis-aligned box of one widget, in window
// coordinates with Y down. Its four fields are the persistent cells that
// [System.Area] registers variables over: each layout pass resets them to
// -Infinity and [System.Solve] narrows them back to exact positions, so a
// Rect is only meaningful after the pass that owns it completes.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

// Contains reports whether the point lies inside the rectangle,
// inclusive of all four edges.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Size returns the width and height.
func (r Rect) Size() math32.Vector2 {
	return math32.Vec2(r.X2-r.X1, r.Y2-r.Y1)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g)-(%g, %g)", r.X1, r.Y1, r.X2, r.Y2)
}

// BB bundles the four edge [Var]s of one box for the duration of a pass.
// Parents receive the BB of each child from [Layout.Collect] and relate
// child edges to their own through it.
type BB struct {
	X1, Y1, X2, Y2 Var
}
