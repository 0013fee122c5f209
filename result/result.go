// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result defines the error values returned across the
// rasterizer's package boundaries. The error kinds mirror the result
// codes a caller of the whole engine ultimately sees; internal packages
// wrap one of these with additional context via fmt.Errorf's %w verb.
package result

import "errors"

// Kinds of failure a caller of the engine can observe. These are
// sentinel values: use errors.Is to test for them after unwrapping.
var (
	// ErrInvalidArguments is returned for a null/empty input that the
	// caller should have validated before calling in (empty path,
	// radius <= epsilon, nil surface buffer).
	ErrInvalidArguments = errors.New("vgr: invalid arguments")

	// ErrInsufficientCondition is returned for a query made against
	// state that hasn't reached the precondition it needs, such as
	// asking for the bounds of a shape that was never prepared.
	ErrInsufficientCondition = errors.New("vgr: insufficient condition")

	// ErrNonSupport is returned when an input format or operation
	// isn't supported by this build (e.g. an unrecognized colorspace).
	ErrNonSupport = errors.New("vgr: not supported")

	// ErrFailedAllocation is returned when a heap allocation needed to
	// continue failed. Per spec, this is recoverable at the shape
	// level: the shape's render-data is marked invalid and later
	// render calls for it become no-ops.
	ErrFailedAllocation = errors.New("vgr: allocation failed")

	// ErrMemoryCorruption signals a detected internal invariant
	// violation (e.g. a cell arena index out of range) that could not
	// be recovered by band bisection. This should never surface from
	// correct inputs.
	ErrMemoryCorruption = errors.New("vgr: memory corruption")

	// ErrUnknown covers parse/decode failures from external
	// collaborators (loaders) that this module only reports, not
	// produces itself.
	ErrUnknown = errors.New("vgr: unknown error")

	// ErrInvalidOutline marks a malformed outline: a contour that
	// starts on a control point, a dangling cubic control point pair,
	// or a non-monotonic contour-end list. Rasterizing such an outline
	// yields an empty RLE rather than undefined behavior.
	ErrInvalidOutline = errors.New("vgr: invalid outline")

	// ErrArenaExhausted marks a cell-pool overflow within one band;
	// the rasterizer reacts by bisecting the band. An overflow that
	// persists on a single-scanline band is reported as
	// ErrFailedAllocation, fatal for the current shape, not the frame.
	ErrArenaExhausted = errors.New("vgr: cell arena exhausted")

	// ErrInvalidSequence marks a call made outside the renderer
	// façade's legal frame sequence (pre_render -> any number of
	// render_* -> post_render).
	ErrInvalidSequence = errors.New("vgr: invalid frame sequence")
)
