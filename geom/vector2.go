// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the minimal float32 geometry used by the boxwood
// render engine: 2D vectors, axis dimensions, and layout constraints.
// Scalar math goes through github.com/chewxy/math32.
package geom

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D vector/point with X and Y float32 components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with both components set to the
// given scalar value.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{X: s, Y: s}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Dim returns this vector's component value for the given dimension.
func (v Vector2) Dim(d Dims) float32 {
	if d == X {
		return v.X
	}
	return v.Y
}

// SetDim sets this vector's component value for the given dimension.
func (v *Vector2) SetDim(d Dims, value float32) {
	if d == X {
		v.X = value
	} else {
		v.Y = value
	}
}

// Add returns the vector sum of this vector and the given one.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns this vector minus the given one.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// MulScalar returns this vector multiplied by the given scalar.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Min returns the component-wise minimum of this vector and the given one.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{X: math32.Min(v.X, other.X), Y: math32.Min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of this vector and the given one.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{X: math32.Max(v.X, other.X), Y: math32.Max(v.Y, other.Y)}
}

// Clamp returns this vector clamped component-wise into the range of the
// given minimum and maximum vectors, independently on each axis.
func (v Vector2) Clamp(minv, maxv Vector2) Vector2 {
	return v.Max(minv).Min(maxv)
}

// ToPointFloor returns this vector as an [image.Point] with components
// rounded down.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{X: int(math32.Floor(v.X)), Y: int(math32.Floor(v.Y))}
}

// String implements the [fmt.Stringer] interface.
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
