// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"github.com/boxwoodui/boxwood/geom"
)

// Layout is a single recursive pass with two phases per element:
//
// Phase 1 (down): the element receives constraints from its caller,
// derives (possibly child-specific) constraints for each child, and lays
// out every child in order with them.
//
// Phase 2 (up): once the children return their chosen sizes, each clamped
// into the constraints it was given, the element computes its own size from
// its constraints and the child sizes, and then sets each child's position
// relative to itself, exactly once, sequentially along one axis.
//
// A size that does not fit the received constraints is clamped to the
// nearest satisfying value within [min, max] on each axis independently.
// The clamp is silent; layout never fails on a well-formed tree.
//
// The same constraint-down / size-up structure is used by the retained-mode
// layouts in Flutter and in Cogent Core:
// https://docs.flutter.dev/resources/architectural-overview#rendering-and-layout

// Layout implements the leaf case of [Element.Layout]: the element takes
// its intrinsic size, clamped into the given constraints. Children, if any,
// are given loosened constraints and positioned at the origin; container
// types such as [Frame] override this with a real placement policy.
func (eb *ElementBase) Layout(c geom.Constraints) geom.Vector2 {
	for _, k := range eb.Children {
		kel := k.(Element)
		kel.Layout(c.Loosen())
		kel.AsElement().Geom.Pos = geom.Vector2{}
	}
	sz := c.Constrain(eb.This.(Element).SizeIntrinsic())
	eb.Geom.Size = sz
	if DebugSettings.LayoutTrace {
		slog.Info("Layout", "element", eb.Path(), "constraints", c, "size", sz)
	}
	return sz
}
