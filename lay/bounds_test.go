// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lay

import (
	"testing"

	"cogentcore.org/lace/math32"
	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	b := B(2, 5)
	assert.False(t, b.IsExact())
	assert.True(t, b.Contains(2))
	assert.True(t, b.Contains(5))
	assert.False(t, b.Contains(5.5))
	assert.Equal(t, float32(3.5), b.Midpoint())

	e := Exact(4)
	assert.True(t, e.IsExact())
	assert.True(t, b.Intersects(e))
	assert.False(t, e.Intersects(Exact(3)))

	f := Full()
	assert.Equal(t, -math32.Infinity, f.Min)
	assert.Equal(t, math32.Infinity, f.Max)
	assert.True(t, f.Contains(1e30))
}

func TestBoundsRestrict(t *testing.T) {
	b := B(0, 10)
	b.Restrict(B(2, 20))
	assert.Equal(t, B(2, 10), b)
	b.Restrict(B(-5, 7))
	assert.Equal(t, B(2, 7), b)
	b.Restrict(Full())
	assert.Equal(t, B(2, 7), b)

	assert.Panics(t, func() {
		b := B(0, 10)
		b.Restrict(B(11, 20))
	})
	assert.Panics(t, func() {
		b := B(10, 20)
		b.Restrict(B(0, 9))
	})
	assert.Panics(t, func() {
		b := Exact(20)
		b.Restrict(Exact(10))
	})
}

func TestBoundsArithmetic(t *testing.T) {
	b := B(1, 3)
	assert.Equal(t, B(-3, -1), b.Negate())
	assert.Equal(t, B(11, 13), b.AddScalar(10))
	assert.Equal(t, B(-9, -7), b.SubScalar(10))
	assert.Equal(t, B(2, 6), b.MulScalar(2))
	assert.Equal(t, B(-6, -2), b.MulScalar(-2)) // the ends flip
	assert.Equal(t, B(0.5, 1.5), b.DivScalar(2))
	assert.Equal(t, B(-1.5, -0.5), b.DivScalar(-2))

	assert.Equal(t, B(5, 10), b.Add(B(4, 7)))
	assert.Equal(t, B(-6, -1), b.Sub(B(4, 7)))

	// Negation and infinite ends interact the way intervals require.
	assert.Equal(t, B(-math32.Infinity, 0), B(0, math32.Infinity).Negate())
	assert.Equal(t, Full(), Full().MulScalar(-1))
}

func TestBoundsString(t *testing.T) {
	assert.Equal(t, "[4]", Exact(4).String())
	assert.Equal(t, "[2, 5]", B(2, 5).String())
	assert.Equal(t, "[-Inf, 0]", B(-math32.Infinity, 0).String())
}
