// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/boxwoodui/boxwood/geom"
	"github.com/stretchr/testify/assert"
)

// boundaryChain builds the 3-level chain a -> b -> c with b flagged as a
// repaint boundary, attached to a fresh scene, with the first frame
// (which paints everything) already consumed.
func boundaryChain(t *testing.T) (sc *Scene, a, b *Frame, c *Box) {
	t.Helper()
	a = NewFrame()
	a.SetName("a")
	b = NewFrame(a)
	b.SetName("b")
	c = NewBox(b)
	c.SetName("c")
	c.SetIdeal(10, 10)

	sc = NewScene()
	assert.NoError(t, sc.SetRoot(a))
	assert.NoError(t, b.SetBoundary(true))
	sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))
	return
}

func TestMarkNeedsPaintStopsAtBoundary(t *testing.T) {
	_, a, b, c := boundaryChain(t)
	c.MarkNeedsPaint()
	assert.True(t, c.NeedsPaint())
	assert.True(t, b.NeedsPaint())
	assert.False(t, a.NeedsPaint())
}

func TestMarkNeedsPaintOnBoundaryItself(t *testing.T) {
	_, a, b, _ := boundaryChain(t)
	b.MarkNeedsPaint()
	assert.True(t, b.NeedsPaint())
	assert.False(t, a.NeedsPaint())
}

func TestMarkNeedsPaintIdempotent(t *testing.T) {
	sc, a, b, c := boundaryChain(t)
	c.MarkNeedsPaint()
	c.MarkNeedsPaint()
	assert.Equal(t, 1, sc.dirty.Len())
	assert.True(t, sc.dirty.Has(b))

	pass := sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))
	assert.Equal(t, 2, len(pass.Painted))
	assert.False(t, a.NeedsPaint())
	assert.False(t, b.NeedsPaint())
	assert.False(t, c.NeedsPaint())
}

func TestPaintPassFromBoundary(t *testing.T) {
	sc, a, b, c := boundaryChain(t)
	c.MarkNeedsPaint()
	pass := sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))
	// the pass starts at b, the topmost marked element; a is never repainted
	assert.True(t, pass.Contains(b))
	assert.True(t, pass.Contains(c))
	assert.False(t, pass.Contains(a))
}

func TestPaintClearsFlags(t *testing.T) {
	sc, _, _, c := boundaryChain(t)
	c.MarkNeedsPaint()
	pass := sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))
	for _, el := range pass.Painted {
		assert.False(t, el.AsElement().NeedsPaint(), el.AsElement().Path())
	}
}

func TestPaintSkipsCleanBoundaryChild(t *testing.T) {
	root := NewFrame()
	inner := NewFrame(root)
	leaf := NewBox(inner)
	leaf.SetIdeal(10, 10)
	side := NewBox(root)
	side.SetIdeal(10, 10)

	sc := NewScene()
	assert.NoError(t, sc.SetRoot(root))
	assert.NoError(t, inner.SetBoundary(true))
	sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))

	// marking the root repaints root and side, but the clean boundary
	// subtree is skipped: its cached raster output is reused
	root.MarkNeedsPaint()
	pass := sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))
	assert.True(t, pass.Contains(root))
	assert.True(t, pass.Contains(side))
	assert.False(t, pass.Contains(inner))
	assert.False(t, pass.Contains(leaf))
}

func TestPaintDirtyBoundaryChildRepainted(t *testing.T) {
	root := NewFrame()
	inner := NewFrame(root)
	leaf := NewBox(inner)
	leaf.SetIdeal(10, 10)

	sc := NewScene()
	assert.NoError(t, sc.SetRoot(root))
	assert.NoError(t, inner.SetBoundary(true))
	sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))

	// both the boundary subtree and the root region are dirty: everything
	// is repainted exactly once
	leaf.MarkNeedsPaint()
	root.MarkNeedsPaint()
	pass := sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))
	assert.Equal(t, 3, len(pass.Painted))
	assert.True(t, pass.Contains(root))
	assert.True(t, pass.Contains(inner))
	assert.True(t, pass.Contains(leaf))
}

func TestPaintOrderParentsFirst(t *testing.T) {
	sc, _, b, c := boundaryChain(t)
	c.MarkNeedsPaint()
	pass := sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))
	assert.Equal(t, []Element{Element(b), Element(c)}, pass.Painted)
}

func TestMarkWithoutSceneOnlySetsFlags(t *testing.T) {
	fr := NewFrame()
	bx := NewBox(fr)
	bx.MarkNeedsPaint()
	assert.True(t, bx.NeedsPaint())
	assert.True(t, fr.NeedsPaint())
}

func TestDirtySetDedup(t *testing.T) {
	ds := NewDirtySet()
	fr := NewFrame()
	ds.Add(fr)
	ds.Add(fr)
	assert.Equal(t, 1, ds.Len())
	assert.True(t, ds.Has(fr))
	assert.Equal(t, []Element{Element(fr)}, ds.Roots())
}

// recordPainter records PaintBox calls for position checks.
type recordPainter struct {
	boxes map[string]geom.Vector2
}

func (rp *recordPainter) PaintBox(el Element, pos, size geom.Vector2) {
	if rp.boxes == nil {
		rp.boxes = map[string]geom.Vector2{}
	}
	rp.boxes[el.AsTree().Name] = pos
}

func TestPaintScenePositions(t *testing.T) {
	root := NewFrame().SetDirection(Column)
	root.SetName("root")
	row := NewFrame(root)
	row.SetName("row")
	b0 := NewBox(row)
	b0.SetName("b0")
	b0.SetIdeal(30, 10)
	b1 := NewBox(row)
	b1.SetName("b1")
	b1.SetIdeal(30, 10)
	head := NewBox(root)
	head.SetName("head")
	head.SetIdeal(60, 5)

	rp := &recordPainter{}
	sc := NewScene()
	sc.Painter = rp
	assert.NoError(t, sc.SetRoot(root))
	sc.DoFrame(geom.NewConstraints(0, 0, 100, 100))

	assert.Equal(t, geom.Vec2(0, 0), rp.boxes["root"])
	assert.Equal(t, geom.Vec2(0, 0), rp.boxes["row"])
	assert.Equal(t, geom.Vec2(30, 0), rp.boxes["b1"])
	assert.Equal(t, geom.Vec2(0, 10), rp.boxes["head"])
}
