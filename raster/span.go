// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster turns a flattened outline into run-length-encoded
// anti-aliased coverage spans: the cell/area/cover accumulation
// rasterizer, banded to a fixed memory budget with automatic
// subdivision on overflow.
package raster

import "fmt"

// RLE is one run of horizontally adjacent pixels on a single scanline
// sharing one coverage value. Spans within one RLE slice are sorted by
// (Y, X), non-overlapping, and coalesced: no two adjacent spans on the
// same scanline share a coverage value.
type RLE struct {
	X, Y int32
	Len  int32
	Cov  uint8
}

// End returns the exclusive end column of the span.
func (s RLE) End() int32 { return s.X + s.Len }

// Validate checks the structural invariants spec §8 properties 1-3
// name: coverage in [1,255], len >= 1, sorted and non-overlapping per
// scanline, and contained within [0,w)x[0,h).
func Validate(spans []RLE, w, h int32) error {
	var prevY, prevEnd int32 = -1, -1
	for i, s := range spans {
		if s.Len < 1 {
			return fmt.Errorf("raster: span %d has len %d < 1", i, s.Len)
		}
		if s.Cov < 1 {
			return fmt.Errorf("raster: span %d has coverage %d < 1", i, s.Cov)
		}
		if s.X < 0 || s.End() > w {
			return fmt.Errorf("raster: span %d [%d,%d) escapes viewport width %d", i, s.X, s.End(), w)
		}
		if s.Y < 0 || s.Y >= h {
			return fmt.Errorf("raster: span %d y=%d escapes viewport height %d", i, s.Y, h)
		}
		if s.Y == prevY {
			if s.X < prevEnd {
				return fmt.Errorf("raster: span %d overlaps previous span ending at %d", i, prevEnd)
			}
		} else if s.Y < prevY {
			return fmt.Errorf("raster: span %d out of (y) order", i)
		}
		prevY, prevEnd = s.Y, s.End()
	}
	return nil
}

// ClipViewport clips spans in place to [0,w)x[0,h), dropping any span
// whose row falls outside the height and trimming any span whose
// columns straddle the width. Spec §4.E step 9.
func ClipViewport(spans []RLE, w, h int32) []RLE {
	out := spans[:0]
	for _, s := range spans {
		if s.Y < 0 || s.Y >= h {
			continue
		}
		if s.X < 0 {
			s.Len += s.X
			s.X = 0
		}
		if s.End() > w {
			s.Len = w - s.X
		}
		if s.Len <= 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// appendCoalesced appends s to spans, merging it into the previous
// entry first if they share a row, are horizontally adjacent, and
// carry equal coverage (spec §4.E step 8).
func appendCoalesced(spans []RLE, s RLE) []RLE {
	if n := len(spans); n > 0 {
		prev := &spans[n-1]
		if prev.Y == s.Y && prev.End() == s.X && prev.Cov == s.Cov {
			prev.Len += s.Len
			return spans
		}
	}
	return append(spans, s)
}
