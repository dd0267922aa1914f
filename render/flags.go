// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// Flags are bit flags for the core state of render elements. The engine is
// single threaded (see [Scene]), so flag access is plain, not atomic.
type Flags int64

const (
	// NeedsPaint indicates that the element's content changed and it must
	// be painted on the next paint pass. Set by [ElementBase.MarkNeedsPaint]
	// and cleared when the paint pass visits the element.
	NeedsPaint Flags = 1 << iota

	// Boundary marks a repaint boundary: the element caches its rendered
	// output, absorbs upward dirty propagation from its descendants, and
	// is skipped by paint passes rooted above it while it is clean.
	Boundary
)

// Has returns whether these flags have the given flag set.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Set sets the given flags to the given state.
func (f *Flags) Set(on bool, flags ...Flags) {
	for _, flag := range flags {
		if on {
			*f |= flag
		} else {
			*f &^= flag
		}
	}
}
