// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"github.com/boxwoodui/boxwood/geom"
	"github.com/boxwoodui/boxwood/tree"
	"github.com/chewxy/math32"
)

// Directions are the stacking directions of a [Frame].
type Directions int32

const (
	// Row stacks children horizontally, along X.
	Row Directions = iota

	// Column stacks children vertically, along Y.
	Column
)

// Dim returns the main-axis dimension of the direction.
func (d Directions) Dim() geom.Dims {
	if d == Row {
		return geom.X
	}
	return geom.Y
}

// String implements the [fmt.Stringer] interface.
func (d Directions) String() string {
	if d == Row {
		return "Row"
	}
	return "Column"
}

// Frame is a layout container that stacks its children sequentially along
// its main axis ([Frame.Direction]). Frames are boundary capable: they are
// the element type that can absorb dirty propagation and cache rendered
// output for their subtree.
type Frame struct {
	ElementBase

	// Direction is the main axis children are stacked along.
	Direction Directions
}

// NewFrame returns a new [Frame] with the given optional parent.
func NewFrame(parent ...tree.Node) *Frame {
	return tree.New[*Frame](parent...)
}

// SetDirection sets the stacking direction and returns the frame for
// chaining.
func (fr *Frame) SetDirection(d Directions) *Frame {
	fr.Direction = d
	return fr
}

// CanBoundary reports that frames can be repaint boundaries.
func (fr *Frame) CanBoundary() bool {
	return true
}

// ChildConstraints returns the constraints the frame passes to each of its
// children, derived from its own: the minimums are dropped so children
// choose their size freely up to the frame's maximums.
func (fr *Frame) ChildConstraints(c geom.Constraints) geom.Constraints {
	return c.Loosen()
}

// SizeIntrinsic returns the frame's own ideal size, which is only used
// when it has no children.
func (fr *Frame) SizeIntrinsic() geom.Vector2 {
	return fr.Ideal
}

// Layout implements [Element.Layout] for frames. Children are laid out in
// order with [Frame.ChildConstraints] (phase 1); the frame then sizes itself
// to the sum of the child sizes on the main axis and the maximum on the
// cross axis, clamped into its own constraints, and places the children one
// by one along the main axis (phase 2).
func (fr *Frame) Layout(c geom.Constraints) geom.Vector2 {
	ma := fr.Direction.Dim()
	cr := ma.Other()

	var main, cross float32
	sizes := make([]geom.Vector2, len(fr.Children))
	for i, k := range fr.Children {
		kel := k.(Element)
		cc := fr.ChildConstraints(c)
		ksz := cc.Constrain(kel.Layout(cc)) // clamp even if the child misbehaves
		kel.AsElement().Geom.Size = ksz
		sizes[i] = ksz
		main += ksz.Dim(ma)
		cross = math32.Max(cross, ksz.Dim(cr))
	}

	var sz geom.Vector2
	if fr.HasChildren() {
		sz.SetDim(ma, main)
		sz.SetDim(cr, cross)
	} else {
		sz = fr.SizeIntrinsic()
	}
	sz = c.Constrain(sz)
	fr.Geom.Size = sz

	off := float32(0)
	for i, k := range fr.Children {
		kb := k.(Element).AsElement()
		var pos geom.Vector2
		pos.SetDim(ma, off)
		kb.Geom.Pos = pos
		off += sizes[i].Dim(ma)
	}

	if DebugSettings.LayoutTrace {
		slog.Info("Frame.Layout", "frame", fr.Path(), "direction", fr.Direction, "constraints", c, "size", sz)
	}
	return sz
}
