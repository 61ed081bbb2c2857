// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lay

import (
	"fmt"
	"strings"
)

// Term is one coefficient-variable pair in the linear expression of a
// [Constraint].
type Term struct {
	Factor float32
	Var    Var
}

func (t Term) String() string {
	if t.Factor == 1 {
		return t.Var.String()
	}
	return fmt.Sprintf("%g * %s", t.Factor, t.Var.String())
}

// Constraint bounds a linear expression over [Var]s:
// sum(Terms[i].Factor * Terms[i].Var) must lie in Bounds.
// Equalities, fixed distances, and orderings are all Constraints with two
// terms of factors (1, -1); see [System.Equal], [System.Distance], and
// [System.Order]. Priority is a hint to the chained-inequality heuristic:
// lower-priority constraints (such as the automatic x1 <= x2 box orderings)
// are considered last. The solver keeps constraints normalized so that the
// first term's factor is exactly 1.
type Constraint struct {
	Terms    []Term
	Bounds   Bounds
	Priority int
}

// String renders the constraint as a linear relation, e.g.
// "a.x2 - a.x1 = 100" or "a.x1 - b.x1 ∈ [-Inf, 0]".
func (c *Constraint) String() string {
	var sb strings.Builder
	for i, t := range c.Terms {
		f := t.Factor
		sign := "+"
		if f < 0 {
			f = -f
			sign = "-"
		}
		switch {
		case i == 0 && sign == "-":
			sb.WriteString("-")
		case i > 0:
			sb.WriteString(" " + sign + " ")
		}
		sb.WriteString(Term{Factor: f, Var: t.Var}.String())
	}
	if c.Bounds.IsExact() {
		fmt.Fprintf(&sb, " = %g", c.Bounds.Min)
	} else {
		fmt.Fprintf(&sb, " ∈ [%g, %g]", c.Bounds.Min, c.Bounds.Max)
	}
	return sb.String()
}
