// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outline

import "fmt"

// FillRule decides which side of a self-intersecting outline is
// "inside" for rasterization purposes.
type FillRule int

const (
	// NonZero fills any point enclosed by an unequal number of
	// clockwise and counter-clockwise windings.
	NonZero FillRule = iota
	// EvenOdd fills any point enclosed by an odd number of windings,
	// regardless of direction.
	EvenOdd
)

func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(f))
	}
}
