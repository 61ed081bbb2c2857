// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lay

import (
	"fmt"

	"cogentcore.org/lace/math32"
)

// Var is a handle to one scalar unknown in a [System]: one widget box edge
// for one layout pass. Its lower bound lives in a persistent cell inside the
// widget's [Rect] (the value that survives after solving), and its upper
// bound lives in a pass-scoped cell owned by the System. Two Vars are equal
// exactly when they were created by the same [System.Var] call; identity is
// by index, never by cell address.
type Var struct {
	sys   *System
	index int32
}

// varState is the backing state of one [Var] inside its [System].
// min points at the persistent cell in the widget's [Rect]; max is the
// transient upper bound, discarded with the System when the pass ends.
type varState struct {
	min  *float32
	max  float32
	name [2]string
}

func (v Var) state() *varState {
	return &v.sys.vars[v.index]
}

// Name returns the diagnostic name of the variable, as "owner.edge",
// e.g. "save.x1" for the left edge of a button named "save".
func (v Var) Name() string {
	st := v.state()
	return st.name[0] + "." + st.name[1]
}

// Value returns the resolved value of the variable, which it has only
// when its bounds have narrowed to a single point.
func (v Var) Value() (float32, bool) {
	st := v.state()
	if *st.min == st.max {
		return *st.min, true
	}
	return 0, false
}

// Bounds returns the current candidate interval of the variable.
func (v Var) Bounds() Bounds {
	st := v.state()
	return Bounds{Min: *st.min, Max: st.max}
}

// Restrict narrows the variable's interval to its intersection with the
// given bounds, panicking on an empty intersection (see [Bounds.Restrict]).
func (v Var) Restrict(b Bounds) {
	r := v.Bounds()
	r.Restrict(b)
	st := v.state()
	*st.min = r.Min
	st.max = r.Max
}

// Assign resolves the variable to exactly the given value.
// Equivalent to Restrict([Exact](x)).
func (v Var) Assign(x float32) {
	v.Restrict(Exact(x))
}

// String renders the variable name decorated with its current state:
// nothing for a fully unbounded variable, (=x) once resolved, and
// (∈[min, max]) in between.
func (v Var) String() string {
	s := v.Name()
	b := v.Bounds()
	switch {
	case b.IsExact():
		s += fmt.Sprintf("(=%g)", b.Min)
	case b.Min != -math32.Infinity || b.Max != math32.Infinity:
		s += fmt.Sprintf("(∈[%g, %g])", b.Min, b.Max)
	}
	return s
}
