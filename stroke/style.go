// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stroke turns a source outline into a new filled outline
// whose area is the stroked (and optionally dashed) region: offset
// curves, joins, caps and arc-length dash re-parameterization.
package stroke

// Cap is the end-cap style applied to open sub-paths.
type Cap int

const (
	CapButt Cap = iota
	CapSquare
	CapRound
)

// Join is the corner style applied between consecutive segments.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style bundles a stroke operation's parameters, spec §4.D's input
// list.
type Style struct {
	Width      float32
	Cap        Cap
	Join       Join
	MiterLimit float32 // 0 means "use the default of 4*Width"
	Dashes     []float32
	DashOffset float32
}

func (s Style) miterLimit() float32 {
	if s.MiterLimit > 0 {
		return s.MiterLimit
	}
	return 4 * s.Width
}
