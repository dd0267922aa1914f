// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/boxwoodui/boxwood/tree"
)

// Box is leaf content with an intrinsic ideal size, set with
// [ElementBase.SetIdeal]. Boxes are not boundary capable and hold no
// children; they exist to occupy space and be painted.
type Box struct {
	ElementBase
}

// NewBox returns a new [Box] with the given optional parent.
func NewBox(parent ...tree.Node) *Box {
	return tree.New[*Box](parent...)
}
