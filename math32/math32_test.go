// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar(t *testing.T) {
	assert.Equal(t, float32(2.5), Abs(-2.5))
	assert.Equal(t, float32(-1), Sign(-0.001))
	assert.Equal(t, float32(1), Sign(0))
	assert.True(t, IsInf(Infinity, 1))
	assert.True(t, IsInf(-Infinity, -1))
	assert.False(t, IsInf(42, 0))
	assert.Equal(t, float32(3), Floor(3.7))
	assert.Equal(t, float32(4), Ceil(3.2))
	assert.Equal(t, float32(4), Round(3.5))
	assert.Equal(t, float32(-2), Min(-2, 7))
	assert.Equal(t, float32(7), Max(-2, 7))
}

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.5)
	assert.Equal(t, Vector2{8.5, 8.5}, v)

	assert.Equal(t, Vec2(3, 9), Vec2(1, 4).Add(Vec2(2, 5)))
	assert.Equal(t, Vec2(2, 5), Vec2(1, 4).AddScalar(1).Sub(Vec2(0, 0)))
	assert.Equal(t, Vec2(-1, 2), Vec2(1, 4).SubScalar(2))
	assert.Equal(t, Vec2(2, 8), Vec2(1, 4).MulScalar(2))
	assert.Equal(t, Vec2(1, 4), Vec2(2, 8).DivScalar(2))
	assert.Equal(t, Vector2{}, Vec2(2, 8).DivScalar(0))
	assert.Equal(t, Vec2(-1, -4), Vec2(1, 4).Negate())
	assert.Equal(t, "(1, 4)", Vec2(1, 4).String())
}
