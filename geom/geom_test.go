// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, Vec2(5, 6), v.Add(Vec2(2, 2)))
	assert.Equal(t, Vec2(1, 2), v.Sub(Vec2(2, 2)))
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	assert.Equal(t, float32(3), v.Dim(X))
	assert.Equal(t, float32(4), v.Dim(Y))
	v.SetDim(Y, 9)
	assert.Equal(t, Vec2(3, 9), v)
	assert.Equal(t, Y, X.Other())
	assert.Equal(t, X, Y.Other())
}

func TestConstrain(t *testing.T) {
	c := NewConstraints(0, 0, 100, 100)
	// each axis clamps independently
	assert.Equal(t, Vec2(100, 20), c.Constrain(Vec2(150, 20)))
	assert.Equal(t, Vec2(20, 100), c.Constrain(Vec2(20, 150)))
	assert.Equal(t, Vec2(50, 50), c.Constrain(Vec2(50, 50)))

	cm := NewConstraints(10, 10, 100, 100)
	assert.Equal(t, Vec2(10, 10), cm.Constrain(Vec2(0, 0)))
}

func TestConstraintsLoosen(t *testing.T) {
	c := NewConstraints(40, 40, 100, 100)
	l := c.Loosen()
	assert.Equal(t, Vec2(0, 0), l.Min)
	assert.Equal(t, Vec2(100, 100), l.Max)
	assert.True(t, l.Contains(Vec2(5, 5)))
	assert.False(t, c.Contains(Vec2(5, 5)))
}

func TestConstraintsTight(t *testing.T) {
	tc := TightConstraints(Vec2(30, 40))
	assert.True(t, tc.IsTight())
	assert.True(t, tc.IsValid())
	assert.Equal(t, Vec2(30, 40), tc.Constrain(Vec2(0, 0)))
	assert.Equal(t, Vec2(30, 40), tc.Constrain(Vec2(500, 500)))
}

func TestConstraintsUnbounded(t *testing.T) {
	u := Unbounded()
	assert.True(t, u.IsValid())
	assert.Equal(t, Vec2(1e9, 2e9), u.Constrain(Vec2(1e9, 2e9)))
	assert.True(t, u.Contains(Vec2(0, 0)))
}
