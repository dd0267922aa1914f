// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Constraints is an immutable min / max bound on width and height, passed
// from a parent to a child during layout, before the child chooses its size.
// Both bounds are inclusive on each axis. A child's chosen size that falls
// outside the constraints is clamped, never treated as an error.
type Constraints struct {
	Min Vector2
	Max Vector2
}

// NewConstraints returns constraints with the given minimum and maximum
// width and height.
func NewConstraints(minw, minh, maxw, maxh float32) Constraints {
	return Constraints{Min: Vec2(minw, minh), Max: Vec2(maxw, maxh)}
}

// TightConstraints returns constraints that admit exactly the given size.
func TightConstraints(sz Vector2) Constraints {
	return Constraints{Min: sz, Max: sz}
}

// Unbounded returns constraints with zero minimums and infinite maximums.
func Unbounded() Constraints {
	return Constraints{Max: Vector2Scalar(math32.Inf(1))}
}

// Constrain returns the given size clamped into [Min, Max] independently
// on each axis. This is the permissive resolution for sizes that do not
// fit: the nearest satisfying value wins and no error is reported.
func (c Constraints) Constrain(sz Vector2) Vector2 {
	return sz.Clamp(c.Min, c.Max)
}

// Loosen returns constraints with the same maximums and zero minimums,
// which is how constraints are typically derived for children.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

// Contains reports whether the given size satisfies the constraints
// on both axes.
func (c Constraints) Contains(sz Vector2) bool {
	return sz.X >= c.Min.X && sz.X <= c.Max.X && sz.Y >= c.Min.Y && sz.Y <= c.Max.Y
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// IsValid reports whether Min <= Max on both axes.
func (c Constraints) IsValid() bool {
	return c.Min.X <= c.Max.X && c.Min.Y <= c.Max.Y
}

// MinDim returns the minimum bound for the given dimension.
func (c Constraints) MinDim(d Dims) float32 {
	return c.Min.Dim(d)
}

// MaxDim returns the maximum bound for the given dimension.
func (c Constraints) MaxDim(d Dims) float32 {
	return c.Max.Dim(d)
}

// String implements the [fmt.Stringer] interface.
func (c Constraints) String() string {
	return fmt.Sprintf("[%v -- %v]", c.Min, c.Max)
}
