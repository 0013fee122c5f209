// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package outline implements the canonical flattened-path buffer: an
// ordered list of fixed-point points tagged as on-curve or cubic
// control points, with contour-end markers delimiting subpaths. It is
// the structure every other stage of the pipeline (flatten, stroke,
// raster) reads or writes.
package outline

import (
	"fmt"

	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/result"
)

// PointType tags one entry of an Outline's Points slice.
type PointType uint8

const (
	// OnPoint marks a line endpoint / curve endpoint.
	OnPoint PointType = iota
	// Cubic marks a cubic Bezier control point. Control points always
	// appear in pairs, immediately between two on-curve points.
	Cubic
)

// Outline is a contiguous flattened-path buffer. The zero value is an
// empty outline ready to use.
type Outline struct {
	Points      []geom.Point
	Types       []PointType
	ContourEnds []int32
	// Closed[i] reports whether contour i was explicitly closed with
	// Close() (true) or left open and only terminated by the next
	// MoveTo/Finish (false). The stroker caps open contours and joins
	// closed ones; the rasterizer fills both the same way, adding an
	// implicit closing edge for open contours.
	Closed []bool
	Rule   FillRule

	contourOpen   bool // whether a contour is being built; false in the zero value
	contourStart  int  // index of the first point of the contour being built, valid while contourOpen
	pendingClosed bool // Closed flag for the contour currently being ended
}

// Reserve grows the backing slices to hold at least the given number
// of additional points and contours without further allocation. It
// never shrinks existing capacity.
func (o *Outline) Reserve(points, contours int) {
	if need := len(o.Points) + points; need > cap(o.Points) {
		grown := make([]geom.Point, len(o.Points), need)
		copy(grown, o.Points)
		o.Points = grown
		grownT := make([]PointType, len(o.Types), need)
		copy(grownT, o.Types)
		o.Types = grownT
	}
	if need := len(o.ContourEnds) + contours; need > cap(o.ContourEnds) {
		grown := make([]int32, len(o.ContourEnds), need)
		copy(grown, o.ContourEnds)
		o.ContourEnds = grown
	}
}

// Clear empties the outline, keeping the underlying array capacity so
// repeated per-frame flattening does not re-allocate (the memory pool
// relies on this).
func (o *Outline) Clear() {
	o.Points = o.Points[:0]
	o.Types = o.Types[:0]
	o.ContourEnds = o.ContourEnds[:0]
	o.Closed = o.Closed[:0]
	o.contourOpen = false
	o.contourStart = -1
	o.pendingClosed = false
}

// Empty reports whether the outline has no points at all.
func (o *Outline) Empty() bool { return len(o.Points) == 0 }

// MoveTo starts a new contour at p. If a contour is already open, it
// is ended first as an open contour (Closed false) without adding a
// closing line (the rasterizer itself treats an open contour's
// last-to-first edge as implicit; see raster for details).
func (o *Outline) MoveTo(p geom.Point) {
	if o.contourOpen {
		o.endContour()
	}
	o.contourOpen = true
	o.contourStart = len(o.Points)
	o.Points = append(o.Points, p)
	o.Types = append(o.Types, OnPoint)
}

// LineTo appends a line from the current point to p. Panics if called
// before any MoveTo, since that is a programmer error rather than a
// data error (an outline builder contract violation, not bad input
// data the caller couldn't have avoided).
func (o *Outline) LineTo(p geom.Point) {
	o.requireOpenContour("LineTo")
	o.Points = append(o.Points, p)
	o.Types = append(o.Types, OnPoint)
}

// CubicTo appends a cubic Bezier from the current point through
// control points c1, c2 to endpoint p.
func (o *Outline) CubicTo(c1, c2, p geom.Point) {
	o.requireOpenContour("CubicTo")
	o.Points = append(o.Points, c1, c2, p)
	o.Types = append(o.Types, Cubic, Cubic, OnPoint)
}

// Close closes the current contour. If the current point differs from
// the contour's first point, a closing line is appended first. No-op
// if no contour is open.
func (o *Outline) Close() {
	if !o.contourOpen {
		return
	}
	first := o.Points[o.contourStart]
	last := o.Points[len(o.Points)-1]
	if first != last {
		o.Points = append(o.Points, first)
		o.Types = append(o.Types, OnPoint)
	}
	o.pendingClosed = true
	o.endContour()
}

func (o *Outline) endContour() {
	o.ContourEnds = append(o.ContourEnds, int32(len(o.Points)-1))
	o.Closed = append(o.Closed, o.pendingClosed)
	o.contourOpen = false
	o.contourStart = -1
	o.pendingClosed = false
}

func (o *Outline) requireOpenContour(op string) {
	if !o.contourOpen {
		panic(fmt.Sprintf("outline: %s called with no open contour (call MoveTo first)", op))
	}
}

// CurrentPoint returns the pen position: the last point appended, or
// the zero point if the outline is empty.
func (o *Outline) CurrentPoint() geom.Point {
	if len(o.Points) == 0 {
		return geom.Point{}
	}
	return o.Points[len(o.Points)-1]
}

// Finish ends any still-open contour, recording it as open (Closed
// false). Call this after the last drawing command and before handing
// the outline to the rasterizer or stroker, in case the caller did not
// end the last contour with Close.
func (o *Outline) Finish() {
	if o.contourOpen {
		o.endContour()
	}
}

// ContourCount returns the number of complete contours.
func (o *Outline) ContourCount() int { return len(o.ContourEnds) }

// Contour returns the point range [start, end] (inclusive) of contour
// i, where start is ContourEnds[i-1]+1 (or 0 for i==0) and end is
// ContourEnds[i].
func (o *Outline) Contour(i int) (start, end int) {
	if i == 0 {
		start = 0
	} else {
		start = int(o.ContourEnds[i-1]) + 1
	}
	end = int(o.ContourEnds[i])
	return
}

// Bounds returns the integer pixel bounding box of all points, using
// Trunc/ceil on the fixed-point coordinates. Returns false if the
// outline is empty.
func (o *Outline) Bounds() (minX, minY, maxX, maxY int32, ok bool) {
	if len(o.Points) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = 1<<30, 1<<30
	maxX, maxY = -(1 << 30), -(1 << 30)
	for _, p := range o.Points {
		x, y := int32(p.X), int32(p.Y)
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}
	return minX >> geom.PixelBits, minY >> geom.PixelBits, (maxX + (1 << geom.PixelBits) - 1) >> geom.PixelBits, (maxY + (1 << geom.PixelBits) - 1) >> geom.PixelBits, true
}

// Validate checks the structural invariants this package's data model
// requires: no contour starts on a control point, every Cubic appears
// in a pair immediately bounded by on-curve points, and ContourEnds is
// strictly increasing. It does not check geometric validity (e.g.
// self-intersection), only structural well-formedness.
func (o *Outline) Validate() error {
	if len(o.Points) != len(o.Types) {
		return fmt.Errorf("%w: points/types length mismatch", result.ErrInvalidOutline)
	}
	prevEnd := -1
	for ci, end := range o.ContourEnds {
		endI := int(end)
		if endI <= prevEnd {
			return fmt.Errorf("%w: contour %d end %d not strictly increasing after %d", result.ErrInvalidOutline, ci, endI, prevEnd)
		}
		start := prevEnd + 1
		if start >= len(o.Types) || o.Types[start] != OnPoint {
			return fmt.Errorf("%w: contour %d starts on a control point", result.ErrInvalidOutline, ci)
		}
		i := start
		for i <= endI {
			if o.Types[i] == Cubic {
				if i+1 > endI || o.Types[i+1] != Cubic {
					return fmt.Errorf("%w: contour %d has an unpaired cubic control point at %d", result.ErrInvalidOutline, ci, i)
				}
				if i+2 > endI || o.Types[i+2] != OnPoint {
					return fmt.Errorf("%w: contour %d cubic control pair at %d not followed by an on-curve point", result.ErrInvalidOutline, ci, i)
				}
				i += 3
				continue
			}
			i++
		}
		prevEnd = endI
	}
	if prevEnd != len(o.Points)-1 {
		return fmt.Errorf("%w: trailing points after last contour end (unclosed contour?)", result.ErrInvalidOutline)
	}
	return nil
}

// segment is one drawing command within a contour, relative to an
// implicit current point.
type segment struct {
	cubic    bool
	c1, c2   geom.Point
	endPoint geom.Point
}

func (o *Outline) segments(start, end int) []segment {
	segs := make([]segment, 0, end-start)
	i := start + 1
	for i <= end {
		if o.Types[i] == Cubic {
			segs = append(segs, segment{cubic: true, c1: o.Points[i], c2: o.Points[i+1], endPoint: o.Points[i+2]})
			i += 3
		} else {
			segs = append(segs, segment{endPoint: o.Points[i]})
			i++
		}
	}
	return segs
}

// Reversed returns a new outline with every contour's winding
// direction flipped: each contour starts at its original end point and
// walks its segments in reverse order, swapping cubic control point
// order, ending at the original start point. The enclosed region is
// unchanged; only the winding sign flips. Used by fill-rule symmetry
// tests and by callers that need to invert a hole.
func (o *Outline) Reversed() Outline {
	var r Outline
	r.Rule = o.Rule
	r.Reserve(len(o.Points), len(o.ContourEnds))
	for ci := 0; ci < o.ContourCount(); ci++ {
		start, end := o.Contour(ci)
		segs := o.segments(start, end)
		r.MoveTo(o.Points[end])
		for i := len(segs) - 1; i >= 0; i-- {
			s := segs[i]
			var from geom.Point
			if i == 0 {
				from = o.Points[start]
			} else {
				from = segs[i-1].endPoint
			}
			if s.cubic {
				r.CubicTo(s.c2, s.c1, from)
			} else {
				r.LineTo(from)
			}
		}
		if o.Closed[ci] {
			r.Close()
		} else {
			r.Finish()
		}
	}
	return r
}

// Transformed returns a copy of o with every point mapped through m,
// preserving point types, contour ends, and closed flags exactly —
// used by the renderer façade to place a shape's outline before
// flattening and rasterizing it.
func (o *Outline) Transformed(m geom.Matrix) Outline {
	var r Outline
	r.Rule = o.Rule
	r.Points = make([]geom.Point, len(o.Points))
	for i, p := range o.Points {
		r.Points[i] = m.MulPoint(geom.FromPoint(p)).ToPoint()
	}
	r.Types = append([]PointType(nil), o.Types...)
	r.ContourEnds = append([]int32(nil), o.ContourEnds...)
	r.Closed = append([]bool(nil), o.Closed...)
	return r
}
