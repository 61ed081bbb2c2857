// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{X: scalar, Y: scalar}
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// AddScalar adds the given scalar to each component of this vector
// and returns the result as a new vector.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	return Vec2(v.X+scalar, v.Y+scalar)
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// SubScalar subtracts the given scalar from each component of this vector
// and returns the result as a new vector.
func (v Vector2) SubScalar(scalar float32) Vector2 {
	return Vec2(v.X-scalar, v.Y-scalar)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result as a new vector.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vec2(v.X*scalar, v.Y*scalar)
}

// DivScalar divides each component of this vector by the given scalar
// and returns the result as a new vector. If the scalar is zero,
// it returns the zero vector.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	if scalar == 0 {
		return Vector2{}
	}
	return Vec2(v.X/scalar, v.Y/scalar)
}

// Negate negates each of this vector's components
// and returns the result as a new vector.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
