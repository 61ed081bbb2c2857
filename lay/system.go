// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lay

import (
	"fmt"
	"strings"

	"cogentcore.org/lace/math32"
)

// System owns all the [Var]s and [Constraint]s of one layout pass.
// A fresh System is created per [Compute] call, filled by the widget tree
// during collection, solved once, and then discarded; only the persistent
// cells inside each widget's [Rect] carry values out of the pass.
type System struct {
	vars        []varState
	constraints []Constraint // FIFO queue: push back, pop front
}

// NewSystem returns a new empty [System] for one layout pass.
func NewSystem() *System {
	return &System{}
}

// Var registers a new [Var] backed by the given persistent cell, resetting
// the cell to -Infinity and allocating a fresh +Infinity upper-bound cell
// scoped to this pass. The owner and edge names are only for diagnostics.
func (s *System) Var(cell *float32, owner, edge string) Var {
	*cell = -math32.Infinity
	s.vars = append(s.vars, varState{min: cell, max: math32.Infinity, name: [2]string{owner, edge}})
	return Var{sys: s, index: int32(len(s.vars) - 1)}
}

// Area creates the four edge [Var]s for the given box and emits the two
// box-validity orderings x1 <= x2 and y1 <= y2 at lowered priority, as they
// can be redundant with the widget's own constraints. Call it exactly once
// per box per pass: a second call would register an independent set of
// variables over the same cells and double-count the box.
func (s *System) Area(r *Rect, name string) BB {
	bb := BB{
		X1: s.Var(&r.X1, name, "x1"),
		Y1: s.Var(&r.Y1, name, "y1"),
		X2: s.Var(&r.X2, name, "x2"),
		Y2: s.Var(&r.Y2, name, "y2"),
	}
	s.Order(bb.X1, bb.X2)
	s.constraints[len(s.constraints)-1].Priority--
	s.Order(bb.Y1, bb.Y2)
	s.constraints[len(s.constraints)-1].Priority--
	return bb
}

// Equal constrains a == b.
func (s *System) Equal(a, b Var) {
	s.Distance(a, b, 0)
}

// Distance constrains b - a == x.
func (s *System) Distance(a, b Var, x float32) {
	s.constraints = append(s.constraints, Constraint{
		Terms: []Term{
			{Factor: 1, Var: b},
			{Factor: -1, Var: a},
		},
		Bounds: Exact(x),
	})
}

// Order constrains a <= b.
func (s *System) Order(a, b Var) {
	s.constraints = append(s.constraints, Constraint{
		Terms: []Term{
			{Factor: 1, Var: a},
			{Factor: -1, Var: b},
		},
		Bounds: Bounds{Min: -math32.Infinity, Max: 0},
	})
}

// Constrain bounds an arbitrary linear expression over variables.
// The builder methods [System.Equal], [System.Distance], and [System.Order]
// cover all the relations the standard widgets emit; Constrain is the
// general entry for custom widgets with richer linear relationships
// (the solver normalizes and reduces any term count).
func (s *System) Constrain(b Bounds, terms ...Term) {
	s.constraints = append(s.constraints, Constraint{Terms: terms, Bounds: b})
}

// String dumps every variable and pending constraint, in the form the
// solver panics carry.
func (s *System) String() string {
	var sb strings.Builder
	sb.WriteString("System [")
	for i := range s.vars {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(Var{sys: s, index: int32(i)}.String())
	}
	sb.WriteString("] {\n")
	for i := range s.constraints {
		fmt.Fprintf(&sb, "    %s\n", s.constraints[i].String())
	}
	sb.WriteString("}")
	return sb.String()
}
