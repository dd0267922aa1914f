// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"github.com/boxwoodui/boxwood/geom"
	"github.com/boxwoodui/boxwood/tree"
)

// Painting logic:
//
// * Mutation sources (state changes, animation ticks) call
//   [ElementBase.MarkNeedsPaint] when an element's visual content changes.
//   The mark propagates up the tree until a repaint boundary absorbs it,
//   and the topmost marked element lands in the scene's current [DirtySet].
// * The paint pass is driven top-down once per frame by [Scene.DoFrame],
//   painting each dirty subtree and reusing the cached output of clean
//   boundaries it encounters on the way down.
// * Marks made while a paint pass is running are queued on the scene for
//   the next frame, never interleaved into the running pass.

// MarkNeedsPaint records that the element's visual content changed and it
// must be repainted. It sets [NeedsPaint] on the element, then walks up the
// parent chain setting the flag until the root is reached or an element
// flagged as a [Boundary] is encountered; the boundary itself is marked but
// propagation stops there and does not continue to its parent. An element
// that is itself a boundary halts propagation at itself. Marking an already
// dirty element is idempotent.
func (eb *ElementBase) MarkNeedsPaint() {
	if eb.Scene != nil && eb.Scene.painting {
		eb.Scene.queue(eb.This.(Element))
		return
	}
	if DebugSettings.UpdateTrace {
		slog.Info("MarkNeedsPaint", "element", eb.Path())
	}
	var top Element
	eb.WalkUp(func(n tree.Node) bool {
		el := n.(Element)
		b := el.AsElement()
		b.Flags.Set(true, NeedsPaint)
		top = el
		if b.IsBoundary() {
			return tree.Break
		}
		return tree.Continue
	})
	if eb.Scene != nil && top != nil {
		eb.Scene.addDirty(top)
	}
}

// DirtySet is the frame-scoped set of paint roots: the topmost elements
// reached by [ElementBase.MarkNeedsPaint] since the last paint pass. It is
// passed explicitly into [Scene.PaintDirty] rather than read as ambient
// scene state, so one pass always consumes exactly one frame's marks.
type DirtySet struct {
	roots []Element
	have  map[*ElementBase]bool
}

// NewDirtySet returns a new empty [DirtySet].
func NewDirtySet() *DirtySet {
	return &DirtySet{have: map[*ElementBase]bool{}}
}

// Add adds the given element as a paint root, keeping insertion order and
// ignoring duplicates.
func (ds *DirtySet) Add(el Element) {
	eb := el.AsElement()
	if ds.have[eb] {
		return
	}
	ds.have[eb] = true
	ds.roots = append(ds.roots, el)
}

// Has returns whether the given element is in the set.
func (ds *DirtySet) Has(el Element) bool {
	return ds.have[el.AsElement()]
}

// Roots returns the paint roots in insertion order.
func (ds *DirtySet) Roots() []Element {
	return ds.roots
}

// Len returns the number of paint roots in the set.
func (ds *DirtySet) Len() int {
	return len(ds.roots)
}

// Painter is the backend a paint pass draws into. Backends only need to
// rasterize boxes; the engine tells them what to paint and where. A nil
// painter is valid and paints into nothing (flags are still maintained).
type Painter interface {

	// PaintBox paints the box of the given element at the given position
	// and size in scene coordinates.
	PaintBox(el Element, pos, size geom.Vector2)
}

// PaintContext carries per-pass painting state down the paint walk.
type PaintContext struct {

	// Painter is the backend being painted into; may be nil.
	Painter Painter

	// pos is the accumulated scene position of the element being painted.
	pos geom.Vector2

	// pass records the elements painted so far.
	pass *PaintPass
}

// Pos returns the scene position of the element currently being painted.
func (pc *PaintContext) Pos() geom.Vector2 {
	return pc.pos
}

// PaintPass is the record of one completed paint pass.
type PaintPass struct {

	// Painted has every element actually painted in this pass, in paint
	// order (parents before children).
	Painted []Element
}

// Contains returns whether the given element was painted in this pass.
func (pp *PaintPass) Contains(el Element) bool {
	for _, p := range pp.Painted {
		if p == el {
			return true
		}
	}
	return false
}

// Paint paints just this element: the base implementation hands the
// element's box to the backend. Element types override this for custom
// painting; they should not descend into children, the paint pass does.
func (eb *ElementBase) Paint(pc *PaintContext) {
	if pc.Painter == nil {
		return
	}
	pc.Painter.PaintBox(eb.This.(Element), pc.pos, eb.Geom.Size)
}

// PaintDirty runs one paint pass over the given dirty set: every root in
// the set that is still marked has its subtree painted, topmost first.
// Within a subtree, [NeedsPaint] is cleared on each visited element,
// [Element.Paint] is called, and children are descended into, except that
// a clean boundary child is skipped, its cached raster output being reused.
// A dirty boundary child is painted as a root of its own. It returns the
// set of elements actually painted.
func (sc *Scene) PaintDirty(ds *DirtySet) *PaintPass {
	pass := &PaintPass{}
	sc.painting = true
	defer func() { sc.painting = false }()

	for _, el := range ds.Roots() {
		eb := el.AsElement()
		if eb.This == nil || eb.Scene != sc {
			continue // detached since it was marked
		}
		if !eb.NeedsPaint() {
			continue // already painted inside an earlier root's subtree
		}
		pc := &PaintContext{Painter: sc.Painter, pos: eb.scenePos(), pass: pass}
		sc.paintSubtree(el, pc)
	}
	return pass
}

// paintSubtree paints el and descends into its children, skipping clean
// boundary children.
func (sc *Scene) paintSubtree(el Element, pc *PaintContext) {
	eb := el.AsElement()
	eb.Flags.Set(false, NeedsPaint)
	opos := pc.pos
	pc.pos = pc.pos.Add(eb.Geom.Pos)
	el.Paint(pc)
	pc.pass.Painted = append(pc.pass.Painted, el)
	if DebugSettings.PaintTrace {
		slog.Info("Paint", "element", eb.Path(), "pos", pc.pos, "size", eb.Geom.Size)
	}
	for _, k := range eb.Children {
		kel, ok := k.(Element)
		if !ok || kel.AsTree().This == nil {
			continue
		}
		kb := kel.AsElement()
		if kb.IsBoundary() && !kb.NeedsPaint() {
			continue // cached raster output is reused
		}
		sc.paintSubtree(kel, pc)
	}
	pc.pos = opos
}
