// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lay

import (
	"cmp"
	"log/slog"
	"slices"

	"cogentcore.org/lace/logx"
	"cogentcore.org/lace/math32"
)

// Solve narrows every [Var] to an exact value, leaving the results in the
// persistent cells registered through [System.Var]. It interleaves three
// mechanisms until the constraint queue drains: interval propagation over
// the queued constraints, even distribution of chains of difference
// constraints, and as a last resort fixing one finite-ranged variable at
// its midpoint. Contradictory constraints panic from [Bounds.Restrict]
// with the two incompatible intervals; a system the mechanisms cannot
// narrow further panics with "could not solve"; a drained queue that
// leaves variables ranged panics with "unresolved ranges". All three are
// programming errors in the widget constraints, not runtime conditions.
func (s *System) Solve() {
	if logx.UserLevel <= logx.Debug {
		slog.Debug("lay: solving\n" + s.String())
	}
	age := 0 // constraints processed since the last narrowing
	for {
		if len(s.constraints) == 0 {
			s.finish()
			return
		}

	simplify:
		for len(s.constraints) > age {
			modified := false
			c := s.constraints[0]
			s.constraints = s.constraints[1:]
			terms, bounds := c.Terms, c.Bounds

			// Substitute terms whose variable is already exact, and sum
			// the interval contributions of the ones that are not.
			sum := Exact(0)
			j := 0
			for _, t := range terms {
				if v, ok := t.Var.Value(); ok {
					bounds = bounds.SubScalar(v * t.Factor)
					modified = true
				} else {
					sum = sum.Add(t.Var.Bounds().MulScalar(t.Factor))
					terms[j] = t
					j++
				}
			}
			terms = terms[:j]

			old := bounds
			bounds.Restrict(sum)
			if bounds != old {
				modified = true
			}

			slices.SortStableFunc(terms, func(a, b Term) int {
				return cmp.Compare(a.Var.index, b.Var.index)
			})

			// Normalize so the leading term has factor 1.
			if len(terms) > 0 {
				if f := terms[0].Factor; f != 1 {
					for i := range terms {
						terms[i].Factor /= f
					}
					bounds = bounds.DivScalar(f)
				}
			}

			// Fold into a pending constraint over the same terms.
			for i := range s.constraints {
				if slices.Equal(s.constraints[i].Terms, terms) {
					s.constraints[i].Bounds.Restrict(bounds)
					continue simplify
				}
			}

			switch len(terms) {
			case 0:
				modified = true
			case 1:
				terms[0].Var.Restrict(bounds)
				modified = true
			default:
				if len(terms) == 2 {
					// Two-term a - b constraints bound each variable by
					// the other's interval shifted by the constraint.
					a, b := terms[0], terms[1]
					if b.Factor == -1 {
						ab, bb := a.Var.Bounds(), b.Var.Bounds()
						a.Var.Restrict(bb.Add(bounds))
						b.Var.Restrict(ab.Sub(bounds))
						if ab != a.Var.Bounds() || bb != b.Var.Bounds() {
							modified = true
						}
					}
				}
				s.constraints = append(s.constraints, Constraint{Terms: terms, Bounds: bounds, Priority: c.Priority})
			}

			if len(s.constraints) == 0 {
				s.finish()
				return
			}

			if modified {
				age = 0
			} else {
				age++
			}
		}

		// Propagation has stalled: look for a chain of difference
		// constraints spanning a bounded extent and distribute it, giving
		// each flexible link (and an implicit margin on both ends) an
		// equal share of the slack.
		constraints := slices.Clone(s.constraints)
		slices.SortStableFunc(constraints, func(a, b Constraint) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
		for i := range constraints {
			c := &constraints[i]
			if len(c.Terms) != 2 || c.Terms[1].Factor != -1 {
				continue
			}
			a, b, bounds := c.Terms[0], c.Terms[1], c.Bounds

			// Orient the seed as a before b, with bounds on b - a.
			if bounds.Min >= 0 {
				a, b = b, a
			} else {
				bounds = bounds.Negate()
			}
			if bounds.Max <= 0 {
				// The ordering of the two is not determined.
				continue
			}

			q := []Var{a.Var, b.Var}
			spans := []span{chainSpan(bounds)}

			min, max := a.Var.Bounds().Min, a.Var.Bounds().Max
			extend := func(v Var) {
				b := v.Bounds()
				if b.Min < min {
					min = b.Min
				}
				if b.Max > max {
					max = b.Max
				}
			}
			extend(b.Var)

			flex := float32(2) // implicit flexible margin on each end
			base := float32(0)
			grow := func(sp span) {
				if sp.flex {
					flex += sp.x
				} else {
					base += sp.x
				}
			}
			grow(spans[0])

			used := make([]bool, len(constraints))
			used[i] = true

			for {
				before := len(q)
				for j := range constraints {
					c := &constraints[j]
					if used[j] || len(c.Terms) != 2 || c.Terms[1].Factor != -1 {
						continue
					}
					a, b, bounds := c.Terms[0], c.Terms[1], c.Bounds
					sp := chainSpan(bounds)

					prev := len(q)
					added := a.Var
					if bounds.Max <= 0 { // a <= b
						if q[0] == b.Var {
							q = slices.Insert(q, 0, a.Var)
							spans = slices.Insert(spans, 0, sp)
						} else if q[len(q)-1] == a.Var {
							q = append(q, b.Var)
							spans = append(spans, sp)
							added = b.Var
						}
					}
					if len(q) <= prev {
						if bounds.Min >= 0 { // b <= a
							if q[0] == a.Var {
								q = slices.Insert(q, 0, b.Var)
								spans = slices.Insert(spans, 0, sp)
								added = b.Var
							} else if q[len(q)-1] == b.Var {
								q = append(q, a.Var)
								spans = append(spans, sp)
							}
						}
						if len(q) <= prev {
							continue
						}
					}

					extend(added)
					grow(sp)
					used[j] = true
				}
				if len(q) <= before {
					break
				}
			}

			unit := (max - min - base) / flex
			if 0 < unit && unit < math32.Infinity {
				val := min + unit
				q[0].Assign(val)
				for k, sp := range spans {
					if sp.flex {
						val += sp.x * unit
					} else {
						val += sp.x
					}
					q[k+1].Assign(val)
				}
				age = 0
				break
			}
		}
		if age == 0 {
			continue
		}

		// Still stuck: fix the first variable with a finite range at its
		// midpoint and resume propagation from there.
		for i := range s.vars {
			v := Var{sys: s, index: int32(i)}
			b := v.Bounds()
			if -math32.Infinity < b.Min && b.Min < b.Max && b.Max < math32.Infinity {
				v.Assign(b.Midpoint())
				age = 0
				break
			}
		}

		if age > 0 {
			panic("lay.System.Solve: could not solve\n" + s.String())
		}
	}
}

// finish checks that the pass resolved everything once the constraint
// queue has drained.
func (s *System) finish() {
	for i := range s.vars {
		if _, ok := (Var{sys: s, index: int32(i)}).Value(); !ok {
			panic("lay.System.Solve: unresolved ranges\n" + s.String())
		}
	}
}

// span is one link of a chain under distribution: a run of fixed length x,
// or a flexible one with weight x.
type span struct {
	flex bool
	x    float32
}

// chainSpan classifies a difference constraint for chain distribution.
func chainSpan(b Bounds) span {
	if b.IsExact() {
		return span{x: math32.Abs(b.Min)}
	}
	return span{flex: true, x: 1}
}
