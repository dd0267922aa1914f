// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/boxwoodui/boxwood/geom"
	"github.com/boxwoodui/boxwood/tree"
	"github.com/stretchr/testify/assert"
)

func TestLayoutLeafClamp(t *testing.T) {
	// a leaf with desired size 150x20 under root constraints [0,100]x[0,100]
	// ends at 100x20: width clamped, height unaffected
	fr := NewFrame()
	bx := NewBox(fr)
	bx.SetIdeal(150, 20)

	sz := fr.Layout(geom.NewConstraints(0, 0, 100, 100))
	assert.Equal(t, geom.Vec2(100, 20), bx.Geom.Size)
	assert.Equal(t, geom.Vec2(100, 20), sz)
	assert.Equal(t, geom.Vec2(100, 20), fr.Geom.Size)
}

func TestLayoutRow(t *testing.T) {
	fr := NewFrame()
	b0 := NewBox(fr)
	b0.SetIdeal(30, 10)
	b1 := NewBox(fr)
	b1.SetIdeal(50, 20)

	sz := fr.Layout(geom.NewConstraints(0, 0, 200, 200))
	assert.Equal(t, geom.Vec2(80, 20), sz)
	assert.Equal(t, geom.Vec2(0, 0), b0.Geom.Pos)
	assert.Equal(t, geom.Vec2(30, 0), b1.Geom.Pos)
	assert.Equal(t, geom.Vec2(30, 10), b0.Geom.Size)
	assert.Equal(t, geom.Vec2(50, 20), b1.Geom.Size)
}

func TestLayoutColumn(t *testing.T) {
	fr := NewFrame().SetDirection(Column)
	b0 := NewBox(fr)
	b0.SetIdeal(30, 10)
	b1 := NewBox(fr)
	b1.SetIdeal(50, 20)

	sz := fr.Layout(geom.NewConstraints(0, 0, 200, 200))
	assert.Equal(t, geom.Vec2(50, 30), sz)
	assert.Equal(t, geom.Vec2(0, 0), b0.Geom.Pos)
	assert.Equal(t, geom.Vec2(0, 10), b1.Geom.Pos)
}

func TestLayoutNested(t *testing.T) {
	root := NewFrame().SetDirection(Column)
	row := NewFrame(root)
	ra := NewBox(row)
	ra.SetIdeal(40, 10)
	rb := NewBox(row)
	rb.SetIdeal(40, 10)
	foot := NewBox(root)
	foot.SetIdeal(60, 5)

	sz := root.Layout(geom.NewConstraints(0, 0, 100, 100))
	assert.Equal(t, geom.Vec2(80, 10), row.Geom.Size)
	assert.Equal(t, geom.Vec2(80, 15), sz)
	assert.Equal(t, geom.Vec2(0, 0), row.Geom.Pos)
	assert.Equal(t, geom.Vec2(0, 10), foot.Geom.Pos)
	assert.Equal(t, geom.Vec2(40, 0), rb.Geom.Pos)
}

func TestLayoutOverflowClampsSilently(t *testing.T) {
	// children sum past the frame's maximum: frame size is clamped, no error
	fr := NewFrame()
	for i := 0; i < 4; i++ {
		bx := NewBox(fr)
		bx.SetIdeal(30, 10)
	}
	sz := fr.Layout(geom.NewConstraints(0, 0, 60, 60))
	assert.Equal(t, geom.Vec2(60, 10), sz)
	// positions are still assigned sequentially
	assert.Equal(t, geom.Vec2(90, 0), fr.Child(3).(Element).AsElement().Geom.Pos)
}

func TestLayoutMinimumEnforced(t *testing.T) {
	fr := NewFrame()
	bx := NewBox(fr)
	bx.SetIdeal(5, 5)
	sz := fr.Layout(geom.NewConstraints(50, 50, 100, 100))
	// the frame must satisfy its own minimums even though the child is small
	assert.Equal(t, geom.Vec2(50, 50), sz)
	// the child was given loosened constraints and keeps its own size
	assert.Equal(t, geom.Vec2(5, 5), bx.Geom.Size)
}

func TestLayoutSizesSatisfyConstraints(t *testing.T) {
	root := NewFrame().SetDirection(Column)
	for i := 0; i < 3; i++ {
		row := NewFrame(root)
		for j := 0; j < 3; j++ {
			bx := NewBox(row)
			bx.SetIdeal(float32(20*(i+1)), float32(7*(j+1)))
		}
	}
	rc := geom.NewConstraints(0, 0, 90, 90)
	root.Layout(rc)
	root.WalkDown(func(n tree.Node) bool {
		eb := n.(Element).AsElement()
		if eb.Parent == nil {
			assert.True(t, rc.Contains(eb.Geom.Size), eb.Path())
		} else {
			cc := rc.Loosen()
			assert.True(t, cc.Contains(eb.Geom.Size), eb.Path())
		}
		return tree.Continue
	})
}

func TestLayoutEmptyFrameUsesIdeal(t *testing.T) {
	fr := NewFrame()
	fr.SetIdeal(25, 35)
	sz := fr.Layout(geom.NewConstraints(0, 0, 100, 100))
	assert.Equal(t, geom.Vec2(25, 35), sz)
}
