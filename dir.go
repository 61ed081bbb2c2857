// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

// Dir is the direction a [Flow] lays its children out in: children are
// placed in declaration order moving along the named direction.
type Dir int32

const (
	// Down stacks children top to bottom.
	Down Dir = iota

	// Up stacks children bottom to top.
	Up

	// Left places children right to left.
	Left

	// Right places children left to right.
	Right
)

func (d Dir) String() string {
	switch d {
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Dir(invalid)"
}

// Vertical reports whether the direction runs along the Y axis.
func (d Dir) Vertical() bool {
	return d == Down || d == Up
}

// Reversed reports whether children run against the axis, so that the
// first child ends up at the greater coordinate.
func (d Dir) Reversed() bool {
	return d == Up || d == Left
}
