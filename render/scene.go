// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/boxwoodui/boxwood/geom"
)

// Scene owns one render tree and drives its frame passes. Execution is
// single threaded, synchronous, and cooperative: an external scheduler
// calls [Scene.DoFrame] once per tick (typically once per animation frame)
// with the root constraints, and each pass runs to completion once started.
// No mutation of the tree is permitted while a pass is running, except
// through [ElementBase.MarkNeedsPaint], which queues for the next frame.
type Scene struct {

	// Painter is the backend paint passes draw into; nil is valid and
	// paints into nothing.
	Painter Painter

	// root is the root element; exclusively owns the tree.
	root Element

	// dirty accumulates the paint roots marked since the last frame.
	dirty *DirtySet

	// queued has elements whose marks arrived during a paint pass and
	// are replayed at the start of the next frame.
	queued []Element

	// painting is set while a paint pass is running.
	painting bool
}

// NewScene returns a new empty [Scene].
func NewScene() *Scene {
	return &Scene{dirty: NewDirtySet()}
}

// Root returns the scene's root element, or nil if none is set.
func (sc *Scene) Root() Element {
	return sc.root
}

// SetRoot sets the root element of the scene. Only boundary-capable layout
// containers are accepted as roots: inserting leaf content here fails with
// [ErrStructuralMismatch]. The root is flagged as a boundary and marked for
// painting, so the first frame paints the whole tree.
func (sc *Scene) SetRoot(root Element) error {
	if root == nil || root.AsTree().This == nil {
		return fmt.Errorf("render.Scene.SetRoot: nil root")
	}
	if !root.CanBoundary() {
		return fmt.Errorf("%w: %T cannot be a scene root; only boundary-capable containers are accepted", ErrStructuralMismatch, root)
	}
	sc.root = root
	eb := root.AsElement()
	eb.setSceneTree(sc)
	if err := eb.SetBoundary(true); err != nil {
		return err
	}
	eb.markTreeNeedsPaint()
	return nil
}

// DoFrame runs one complete frame: marks queued during the previous paint
// pass are replayed, the tree is laid out against the given root
// constraints (typically the viewport size), and the dirty set accumulated
// since the last frame is painted. It returns the completed paint pass.
func (sc *Scene) DoFrame(rc geom.Constraints) *PaintPass {
	if sc.root == nil {
		return &PaintPass{}
	}
	queued := sc.queued
	sc.queued = nil
	for _, el := range queued {
		if el.AsTree().This != nil {
			el.AsElement().MarkNeedsPaint()
		}
	}
	sc.root.Layout(rc)
	ds := sc.dirty
	if ds == nil {
		ds = NewDirtySet()
	}
	sc.dirty = NewDirtySet()
	return sc.PaintDirty(ds)
}

// addDirty records a paint root in the current frame's dirty set.
func (sc *Scene) addDirty(el Element) {
	if sc.dirty == nil {
		sc.dirty = NewDirtySet()
	}
	sc.dirty.Add(el)
}

// MarkFullRepaint marks the entire tree for painting on the next frame,
// invalidating all cached boundary output. Use after viewport changes,
// when cached rasters no longer match the layout.
func (sc *Scene) MarkFullRepaint() {
	if sc.root == nil {
		return
	}
	sc.root.AsElement().markTreeNeedsPaint()
}

// queue defers a mark made during a running paint pass to the next frame.
func (sc *Scene) queue(el Element) {
	sc.queued = append(sc.queued, el)
}
