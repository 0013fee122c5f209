// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/kesho-gfx/vgr/raster"

// RenderData is the per-shape cache a prepare task fills in and a
// later render_shape call consumes: fill and stroke coverage spans,
// already clipped, plus a validity flag. A failed prepare (allocation
// failure, invalid outline) marks Valid false rather than returning an
// error asynchronously — spec §4.J/§7's "prepare failure marks
// render-data invalid; later render_* is a no-op returning success".
type RenderData struct {
	FillSpans   []raster.RLE
	StrokeSpans []raster.RLE
	Valid       bool
}

// NewRenderData returns an empty, invalid RenderData ready for a
// shape's first Prepare call.
func NewRenderData() *RenderData {
	return &RenderData{}
}

// reset clears d for reuse by the next Prepare call on the same
// shape, keeping backing array capacity (the pool package's
// "monotonic growth, zeroed on acquire" contract applied to
// render-data rather than outline buffers).
func (d *RenderData) reset() {
	d.FillSpans = d.FillSpans[:0]
	d.StrokeSpans = d.StrokeSpans[:0]
	d.Valid = false
}
