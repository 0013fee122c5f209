// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip implements the three clipping operations of spec §4.F,
// all as O(spans) merge-walks over raster.RLE slices rather than any
// bitmap representation.
package clip

import "github.com/kesho-gfx/vgr/raster"

// Rect is an integer pixel bounding box, inclusive of MinX/MinY,
// exclusive of MaxX/MaxY.
type Rect struct {
	MinX, MinY, MaxX, MaxY int32
}

// Contains reports whether the pixel (x, y) lies within r.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// ClipRect clips target's spans to bbox, coverage unchanged: trims
// [x,x+len) to [bbox.MinX,bbox.MaxX) and drops spans whose y falls
// outside [bbox.MinY,bbox.MaxY). Spec §4.F "Rect clip".
func ClipRect(target []raster.RLE, bbox Rect) []raster.RLE {
	out := make([]raster.RLE, 0, len(target))
	for _, s := range target {
		if s.Y < bbox.MinY || s.Y >= bbox.MaxY {
			continue
		}
		x, end := s.X, s.End()
		if x < bbox.MinX {
			x = bbox.MinX
		}
		if end > bbox.MaxX {
			end = bbox.MaxX
		}
		if end <= x {
			continue
		}
		out = append(out, raster.RLE{X: x, Y: s.Y, Len: end - x, Cov: s.Cov})
	}
	return out
}

// BoundsOf returns the tight bounding rectangle of spans, or ok=false
// if spans is empty.
func BoundsOf(spans []raster.RLE) (Rect, bool) {
	if len(spans) == 0 {
		return Rect{}, false
	}
	r := Rect{MinX: 1 << 30, MinY: 1 << 30, MaxX: -(1 << 30), MaxY: -(1 << 30)}
	for _, s := range spans {
		if s.X < r.MinX {
			r.MinX = s.X
		}
		if s.End() > r.MaxX {
			r.MaxX = s.End()
		}
		if s.Y < r.MinY {
			r.MinY = s.Y
		}
		if s.Y+1 > r.MaxY {
			r.MaxY = s.Y + 1
		}
	}
	return r, true
}

// ClipPath intersects clip and target in RLE span space, walking both
// in lock-step by scanline; overlapping x-ranges emit coverage
// (cov_T*cov_C)>>8 (premultiplied), spec §4.F "Path clip". Both
// inputs must already be sorted by (y,x), the RLE invariant.
func ClipPath(clipSpans, target []raster.RLE) []raster.RLE {
	if len(clipSpans) == 0 || len(target) == 0 {
		return nil
	}
	out := make([]raster.RLE, 0, len(target)+len(clipSpans))
	ci, ti := 0, 0
	for ci < len(clipSpans) && ti < len(target) {
		c, tt := clipSpans[ci], target[ti]
		if c.Y != tt.Y {
			if c.Y < tt.Y {
				ci++
			} else {
				ti++
			}
			continue
		}
		lo := maxI32(c.X, tt.X)
		hi := minI32(c.End(), tt.End())
		if lo < hi {
			cov := uint8((uint32(tt.Cov) * uint32(c.Cov)) >> 8)
			if cov > 0 {
				out = appendCoalesced(out, raster.RLE{X: lo, Y: c.Y, Len: hi - lo, Cov: cov})
			}
		}
		if c.End() <= tt.End() {
			ci++
		} else {
			ti++
		}
	}
	return out
}

// AlphaMask subtracts mask from target: scanlines of target outside
// the mask's y-extent pass through unchanged; within it, each target
// span is split into the strips left of and right of the mask's
// x-range on that scanline, target's own coverage preserved. Spec
// §4.F "Alpha mask (subtract)".
func AlphaMask(mask, target []raster.RLE) []raster.RLE {
	if len(target) == 0 {
		return nil
	}
	if len(mask) == 0 {
		return append([]raster.RLE(nil), target...)
	}
	maskMinY, maskMaxY := mask[0].Y, mask[len(mask)-1].Y
	out := make([]raster.RLE, 0, len(target)+len(mask))
	mi := 0
	for _, tt := range target {
		if tt.Y < maskMinY || tt.Y > maskMaxY {
			out = appendCoalesced(out, tt)
			continue
		}
		for mi < len(mask) && mask[mi].Y < tt.Y {
			mi++
		}
		j := mi
		x := tt.X
		end := tt.End()
		for j < len(mask) && mask[j].Y == tt.Y && mask[j].X < end {
			m := mask[j]
			if m.End() <= x {
				j++
				continue
			}
			if m.X > x {
				out = appendCoalesced(out, raster.RLE{X: x, Y: tt.Y, Len: m.X - x, Cov: tt.Cov})
			}
			if m.End() > x {
				x = m.End()
			}
			j++
		}
		if x < end {
			out = appendCoalesced(out, raster.RLE{X: x, Y: tt.Y, Len: end - x, Cov: tt.Cov})
		}
	}
	return out
}

func appendCoalesced(spans []raster.RLE, s raster.RLE) []raster.RLE {
	if n := len(spans); n > 0 {
		prev := &spans[n-1]
		if prev.Y == s.Y && prev.End() == s.X && prev.Cov == s.Cov {
			prev.Len += s.Len
			return spans
		}
	}
	return append(spans, s)
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
