// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Dims is a 2D axis dimension: [X] or [Y].
type Dims int32

const (
	// X is the horizontal axis.
	X Dims = iota

	// Y is the vertical axis.
	Y
)

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}

// String implements the [fmt.Stringer] interface.
func (d Dims) String() string {
	if d == X {
		return "X"
	}
	return "Y"
}
