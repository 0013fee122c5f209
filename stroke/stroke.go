// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stroke

import (
	"fmt"

	math32 "github.com/chewxy/math32"
	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/outline"
	"github.com/kesho-gfx/vgr/result"
)

// Stroke returns a new outline whose filled area is the stroked (and
// optionally dashed) region of src, per spec §4.D. src is flattened
// internally, so it may contain cubics; the result is line/arc-only.
func Stroke(src *outline.Outline, style Style) (outline.Outline, error) {
	if style.Width <= 0 {
		return outline.Outline{}, fmt.Errorf("%w: stroke width must be > 0", result.ErrInvalidArguments)
	}
	flat := outline.FlattenOutline(src)
	if err := flat.Validate(); err != nil {
		return outline.Outline{}, fmt.Errorf("%w: %v", result.ErrInvalidOutline, err)
	}

	var dst outline.Outline
	dst.Rule = outline.NonZero
	hw := style.Width / 2

	for ci := 0; ci < flat.ContourCount(); ci++ {
		start, end := flat.Contour(ci)
		pl := contourPolyline(&flat, start, end, flat.Closed[ci])
		if len(pl.pts) < 2 {
			if len(pl.pts) == 1 && !flat.Closed[ci] {
				emitDegenerateDot(&dst, pl.pts[0], hw, style.Cap)
			}
			continue
		}
		subs := []polyline{pl}
		if len(style.Dashes) > 0 {
			subs = dash(pl, style.DashOffset, style.Dashes)
		}
		for _, s := range subs {
			strokePolyline(&dst, s, hw, style)
		}
	}
	dst.Finish()
	return dst, nil
}

// emitDegenerateDot draws the cap shape for a single-point open
// subpath (a MoveTo ended as an open contour with no LineTo): a
// round cap produces a full circle of radius hw, a square cap a 2hw
// square, and a butt cap draws nothing, matching the original engine's
// special-cased single-point subpath.
func emitDegenerateDot(dst *outline.Outline, at geom.Vector2, hw float32, cap Cap) {
	switch cap {
	case CapRound:
		dst.MoveTo(at.Add(geom.Vec2(hw, 0)).ToPoint())
		emitArc(dst, at, hw, 0, math32.Pi)
		emitArc(dst, at, hw, math32.Pi, 2*math32.Pi)
		dst.Close()
	case CapSquare:
		dst.MoveTo(at.Add(geom.Vec2(-hw, -hw)).ToPoint())
		dst.LineTo(at.Add(geom.Vec2(hw, -hw)).ToPoint())
		dst.LineTo(at.Add(geom.Vec2(hw, hw)).ToPoint())
		dst.LineTo(at.Add(geom.Vec2(-hw, hw)).ToPoint())
		dst.Close()
	}
}

// contourPolyline extracts the distinct vertices of a flattened
// contour, dropping the duplicate closing point Close() appended.
func contourPolyline(o *outline.Outline, start, end int, closed bool) polyline {
	pts := make([]geom.Vector2, 0, end-start+1)
	last := end
	if closed && o.Points[end] == o.Points[start] {
		last = end - 1
	}
	for i := start; i <= last; i++ {
		pts = append(pts, geom.FromPoint(o.Points[i]))
	}
	return polyline{pts: pts, closed: closed}
}

// strokePolyline appends the offset-curve stroke contour(s) for one
// polyline onto dst. Closed input polylines produce two separate
// closed contours (outer + inner, opposite winding, spec's annulus
// construction); open polylines produce one closed contour per spec
// §4.D step 5.
func strokePolyline(dst *outline.Outline, p polyline, hw float32, style Style) {
	n := len(p.pts)
	if n < 2 {
		return
	}
	dirs, normals := segmentDirsAndNormals(p.pts, p.closed)

	if p.closed {
		// First boundary: offset along each segment's left-hand
		// normal, same winding as the source.
		emitClosedOffsetLoop(dst, p.pts, dirs, normals, hw, style)
		// Second boundary: the same offset applied to the *reversed*
		// point order, which lands on the source's other side with
		// winding flipped, so NonZero treats the band between the two
		// loops as filled and the inner loop's interior as a hole
		// (spec's annulus construction for closed sub-paths).
		revPts := reversePts(p.pts)
		revDirs, revNormals := segmentDirsAndNormals(revPts, true)
		emitClosedOffsetLoop(dst, revPts, revDirs, revNormals, hw, style)
		return
	}

	emitOpenStrokeContour(dst, p.pts, dirs, normals, hw, style)
}

func segmentDirsAndNormals(pts []geom.Vector2, closed bool) (dirs, normals []geom.Vector2) {
	n := len(pts)
	segCount := n - 1
	if closed {
		segCount = n
	}
	dirs = make([]geom.Vector2, segCount)
	normals = make([]geom.Vector2, segCount)
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		dirs[i] = b.Sub(a).Normalize()
		normals[i] = dirs[i].Normal()
	}
	return
}

func reversePts(pts []geom.Vector2) []geom.Vector2 {
	out := make([]geom.Vector2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// emitClosedOffsetLoop appends one closed contour offset by hw along
// each segment's left-hand normal, with joins at every
// vertex, for a closed source polyline.
func emitClosedOffsetLoop(dst *outline.Outline, pts, dirs, normals []geom.Vector2, hw float32, style Style) {
	n := len(pts)
	off := func(i int) geom.Vector2 { return pts[i].Add(normals[i].Mul(hw)) }

	start := off(0)
	dst.MoveTo(start.ToPoint())
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		segEnd := pts[next].Add(normals[i].Mul(hw))
		dst.LineTo(segEnd.ToPoint())
		joinTo := off(next)
		if next != 0 {
			emitJoin(dst, pts[next], segEnd, joinTo, hw, style)
		} else {
			emitJoin(dst, pts[next], segEnd, start, hw, style)
		}
	}
	dst.Close()
}

// emitOpenStrokeContour appends the single closed contour for an open
// source polyline: left chain forward, end cap, right chain backward,
// start cap.
func emitOpenStrokeContour(dst *outline.Outline, pts, dirs, normals []geom.Vector2, hw float32, style Style) {
	n := len(pts)
	segCount := n - 1

	leftStart := pts[0].Add(normals[0].Mul(hw))
	dst.MoveTo(leftStart.ToPoint())
	for i := 0; i < segCount; i++ {
		segEnd := pts[i+1].Add(normals[i].Mul(hw))
		dst.LineTo(segEnd.ToPoint())
		if i+1 < segCount {
			joinTo := pts[i+1].Add(normals[i+1].Mul(hw))
			emitJoin(dst, pts[i+1], segEnd, joinTo, hw, style)
		}
	}

	leftEnd := pts[n-1].Add(normals[segCount-1].Mul(hw))
	rightEnd := pts[n-1].Add(normals[segCount-1].Mul(-hw))
	emitCap(dst, pts[n-1], dirs[segCount-1], leftEnd, rightEnd, hw, style.Cap)

	for i := segCount - 1; i >= 0; i-- {
		segEnd := pts[i].Add(normals[i].Mul(-hw))
		dst.LineTo(segEnd.ToPoint())
		if i > 0 {
			joinTo := pts[i].Add(normals[i-1].Mul(-hw))
			emitJoin(dst, pts[i], segEnd, joinTo, hw, style)
		}
	}

	rightStart := pts[0].Add(normals[0].Mul(-hw))
	startTangent := dirs[0].Mul(-1)
	emitCap(dst, pts[0], startTangent, rightStart, leftStart, hw, style.Cap)
	dst.Close()
}
