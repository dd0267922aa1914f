// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the boxwood render tree: a tree of elements
// with dirty-propagation repaint marking, boundary-based paint passes,
// and two-phase constraint layout, driven by a [Scene] once per frame.
package render

import (
	"errors"
	"fmt"

	"github.com/boxwoodui/boxwood/geom"
	"github.com/boxwoodui/boxwood/tree"
)

// ErrStructuralMismatch is returned when a content element is used where
// only a boundary-capable layout container is accepted. This is the one
// hard validation point in the model; everything else in the engine is
// clamped or ignored rather than surfaced as an error.
var ErrStructuralMismatch = errors.New("render: structural type mismatch")

// Element is the interface that all render elements satisfy. The core
// functionality is defined on [ElementBase], which all element types must
// embed; this interface has the methods element types may need to override.
type Element interface {
	tree.Node

	// AsElement returns the [ElementBase] of this element.
	AsElement() *ElementBase

	// CanBoundary reports whether this element type can act as a repaint
	// boundary. Layout containers can; leaf content cannot.
	CanBoundary() bool

	// SizeIntrinsic returns the size the element wants for itself,
	// before the constraints given by its parent are applied.
	SizeIntrinsic() geom.Vector2

	// Layout performs the two-phase layout of this element's subtree:
	// constraints are passed down to children, sizes flow back up (clamped
	// into the constraints each child was given), and each child's position
	// is set exactly once. It returns the element's own size, which always
	// satisfies the given constraints.
	Layout(c geom.Constraints) geom.Vector2

	// Paint paints just this element into the given paint context. It is
	// only called by paint passes (see [Scene.PaintDirty]), which handle
	// flag clearing and descent into children.
	Paint(pc *PaintContext)
}

// Geom holds the layout outputs of an element.
type Geom struct {

	// Size is the size chosen on the last layout pass. It always satisfies
	// the constraints the parent passed in; sizes that did not fit were
	// clamped per axis.
	Size geom.Vector2

	// Pos is the position relative to the parent, set by the parent during
	// the position phase of its layout, exactly once per layout pass.
	Pos geom.Vector2
}

// ElementBase implements the [Element] interface and provides the core
// render element functionality. It behaves as leaf content: it takes its
// [ElementBase.Ideal] size and cannot act as a repaint boundary. Container
// types override [Element.Layout] and [Element.CanBoundary].
type ElementBase struct {
	tree.NodeBase

	// Scene is the scene this element lives in. It is set when the element
	// is added to a scene-attached tree and is nil for detached trees.
	Scene *Scene `copier:"-"`

	// Geom has the layout geometry of the element.
	Geom Geom `copier:"-"`

	// Ideal is the intrinsic size the element requests during layout,
	// before constraints are applied.
	Ideal geom.Vector2

	// Flags has the [NeedsPaint] and [Boundary] state of the element.
	Flags Flags `copier:"-"`
}

// AsElement returns the [ElementBase] for this element.
func (eb *ElementBase) AsElement() *ElementBase {
	return eb
}

// CanBoundary reports whether the element can be a repaint boundary.
// The base implementation is leaf content and returns false.
func (eb *ElementBase) CanBoundary() bool {
	return false
}

// SizeIntrinsic returns [ElementBase.Ideal].
func (eb *ElementBase) SizeIntrinsic() geom.Vector2 {
	return eb.Ideal
}

// SetIdeal sets the intrinsic size the element requests during layout
// and returns the element for chaining.
func (eb *ElementBase) SetIdeal(w, h float32) *ElementBase {
	eb.Ideal = geom.Vec2(w, h)
	return eb
}

// IsBoundary returns whether the element is currently flagged as a
// repaint boundary.
func (eb *ElementBase) IsBoundary() bool {
	return eb.Flags.Has(Boundary)
}

// NeedsPaint returns whether the element is currently marked as needing
// to be painted.
func (eb *ElementBase) NeedsPaint() bool {
	return eb.Flags.Has(NeedsPaint)
}

// SetBoundary flags the element as a repaint boundary (or clears the flag).
// Only boundary-capable element types accept it: setting it on leaf content
// fails with [ErrStructuralMismatch], reported at this point of insertion
// rather than surfacing later during a paint pass.
func (eb *ElementBase) SetBoundary(on bool) error {
	el := eb.This.(Element)
	if on && !el.CanBoundary() {
		return fmt.Errorf("%w: %q (%T) is not a boundary-capable container", ErrStructuralMismatch, eb.Path(), el)
	}
	eb.Flags.Set(on, Boundary)
	return nil
}

// OnAdd is called when the element is added to a parent: it inherits the
// parent's scene across the whole added subtree, so elements built while
// detached pick up the scene when their root is attached. The added
// subtree has never been painted, so all of it is marked for painting.
func (eb *ElementBase) OnAdd() {
	pe := eb.parentElement()
	if pe == nil || pe.Scene == nil {
		return
	}
	eb.setSceneTree(pe.Scene)
	eb.markTreeNeedsPaint()
}

// markTreeNeedsPaint marks this element's entire subtree as needing paint
// and propagates the mark upward from this element. Flagging every
// descendant ensures boundaries inside the subtree are painted too,
// since they have no cached output yet.
func (eb *ElementBase) markTreeNeedsPaint() {
	eb.WalkDown(func(n tree.Node) bool {
		n.(Element).AsElement().Flags.Set(true, NeedsPaint)
		return tree.Continue
	})
	eb.MarkNeedsPaint()
}

// Destroy clears the scene reference and then destroys the tree node.
func (eb *ElementBase) Destroy() {
	eb.Scene = nil
	eb.NodeBase.Destroy()
}

// parentElement returns the parent as an [ElementBase], or nil if there
// is none.
func (eb *ElementBase) parentElement() *ElementBase {
	if eb.Parent == nil {
		return nil
	}
	pe, ok := eb.Parent.(Element)
	if !ok {
		return nil
	}
	return pe.AsElement()
}

// setSceneTree sets the scene on this element and all of its descendants.
func (eb *ElementBase) setSceneTree(sc *Scene) {
	eb.WalkDown(func(n tree.Node) bool {
		n.(Element).AsElement().Scene = sc
		return tree.Continue
	})
}

// scenePos returns the element's position in scene coordinates: the sum
// of the relative positions of all of its parents.
func (eb *ElementBase) scenePos() geom.Vector2 {
	pos := geom.Vector2{}
	eb.WalkUpParent(func(n tree.Node) bool {
		pos = pos.Add(n.(Element).AsElement().Geom.Pos)
		return tree.Continue
	})
	return pos
}
