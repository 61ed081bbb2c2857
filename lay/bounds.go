// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lay

import (
	"fmt"

	"cogentcore.org/lace/math32"
)

// Bounds is a closed interval [Min, Max] of candidate values for a [Var].
// Min <= Max is an invariant maintained by every operation; [Bounds.Restrict]
// is the single narrowing primitive, and it panics if narrowing would make
// the interval empty (see [System.Solve]).
type Bounds struct {
	Min float32
	Max float32
}

// B returns a new [Bounds] with the given min and max values.
func B(min, max float32) Bounds {
	return Bounds{Min: min, Max: max}
}

// Exact returns a new [Bounds] containing exactly the given value.
func Exact(x float32) Bounds {
	return Bounds{Min: x, Max: x}
}

// Full returns a new unbounded [Bounds] spanning [-Infinity, Infinity].
func Full() Bounds {
	return Bounds{Min: -math32.Infinity, Max: math32.Infinity}
}

// IsExact returns whether the interval contains exactly one value.
func (b Bounds) IsExact() bool {
	return b.Min == b.Max
}

// Contains returns whether the interval contains the given value.
func (b Bounds) Contains(x float32) bool {
	return b.Min <= x && x <= b.Max
}

// Intersects returns whether the two intervals overlap, i.e. whether
// [Bounds.Restrict] with the other interval would succeed.
func (b Bounds) Intersects(other Bounds) bool {
	return other.Min <= b.Max && other.Max >= b.Min
}

// Midpoint returns the point halfway between Min and Max.
func (b Bounds) Midpoint() float32 {
	return (b.Min + b.Max) / 2
}

// Restrict intersects this interval with the other one, in place.
// It panics if the intersection is empty: a contradiction in the
// constraint graph.
func (b *Bounds) Restrict(other Bounds) {
	min, max := b.Min, b.Max
	if other.Min > min {
		if other.Min > max {
			panic(fmt.Sprintf("lay.Bounds.Restrict: [%g, %g] ∩ [%g, %g] is empty: min exceeds max", min, max, other.Min, other.Max))
		}
		b.Min = other.Min
	}
	if other.Max < max {
		if other.Max < min {
			panic(fmt.Sprintf("lay.Bounds.Restrict: [%g, %g] ∩ [%g, %g] is empty: max below min", min, max, other.Min, other.Max))
		}
		b.Max = other.Max
	}
}

// Negate returns the interval negated: -[a, b] = [-b, -a].
func (b Bounds) Negate() Bounds {
	return Bounds{Min: -b.Max, Max: -b.Min}
}

// AddScalar returns the interval shifted up by the given scalar.
func (b Bounds) AddScalar(x float32) Bounds {
	return Bounds{Min: b.Min + x, Max: b.Max + x}
}

// SubScalar returns the interval shifted down by the given scalar.
func (b Bounds) SubScalar(x float32) Bounds {
	return Bounds{Min: b.Min - x, Max: b.Max - x}
}

// MulScalar returns the interval scaled by the given scalar,
// swapping the ends when the scalar is negative.
func (b Bounds) MulScalar(x float32) Bounds {
	if x < 0 {
		return Bounds{Min: b.Max * x, Max: b.Min * x}
	}
	return Bounds{Min: b.Min * x, Max: b.Max * x}
}

// DivScalar returns the interval divided by the given scalar,
// swapping the ends when the scalar is negative.
func (b Bounds) DivScalar(x float32) Bounds {
	if x < 0 {
		return Bounds{Min: b.Max / x, Max: b.Min / x}
	}
	return Bounds{Min: b.Min / x, Max: b.Max / x}
}

// Add returns the componentwise sum of the two intervals:
// [a, b] + [c, d] = [a+c, b+d].
func (b Bounds) Add(other Bounds) Bounds {
	return Bounds{Min: b.Min + other.Min, Max: b.Max + other.Max}
}

// Sub returns the componentwise difference of the two intervals:
// [a, b] - [c, d] = [a-d, b-c].
func (b Bounds) Sub(other Bounds) Bounds {
	return b.Add(other.Negate())
}

func (b Bounds) String() string {
	if b.IsExact() {
		return fmt.Sprintf("[%g]", b.Min)
	}
	return fmt.Sprintf("[%g, %g]", b.Min, b.Max)
}
