// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outline

import "github.com/kesho-gfx/vgr/geom"

// maxFlattenDepth bounds the explicit subdivision stack. 32 levels of
// binary subdivision is already far finer than any pixel grid will
// ever need; the *3+1 sizing in spec §4.C accounts for the stack
// holding full cubic control quads rather than bisection midpoints
// only, at up to 3 entries pushed per level plus the initial curve.
const maxFlattenDepth = 32*3 + 1

// flattenCubic struct holds one quadrisected cubic on the explicit
// subdivision stack.
type flattenCubic struct {
	p0, c1, c2, p3 geom.Point
}

// FlattenTo appends the flattened (line-segment-only) form of the
// cubic Bezier from `from` through c1, c2 to `to` onto dst, via
// dst.LineTo calls. dst's current point must already be `from`.
//
// The split predicate follows spec §4.C: split on chord-length
// overflow, on a control point lying more than 1/6 pixel from the
// chord, or on an acute ("super curvy") control polygon; emit a
// single line once none of those apply.
func FlattenTo(dst *Outline, from, c1, c2, to geom.Point) {
	stack := make([]flattenCubic, 0, maxFlattenDepth)
	stack = append(stack, flattenCubic{from, c1, c2, to})
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(stack) >= maxFlattenDepth-4 || !needsSplit(cur) {
			dst.LineTo(cur.p3)
			continue
		}
		left, right := splitCubic(cur)
		// Push right first so left is processed next (popped last),
		// preserving left-to-right emission order.
		stack = append(stack, right, left)
	}
}

func needsSplit(c flattenCubic) bool {
	d := geom.Vector2{X: float32(c.p3.X - c.p0.X), Y: float32(c.p3.Y - c.p0.Y)}
	adx, ady := abs32(d.X), abs32(d.Y)
	var length float32
	if adx > ady {
		length = adx + 0.375*ady
	} else {
		length = ady + 0.375*adx
	}
	const shrtMax = 1 << 23 // generous overflow guard in our fixed-point domain
	if length > shrtMax {
		return true
	}
	onePixel := float32(geom.OnePixel)
	thresh := length * onePixel / 6

	v1 := geom.Vector2{X: float32(c.c1.X - c.p0.X), Y: float32(c.c1.Y - c.p0.Y)}
	v2 := geom.Vector2{X: float32(c.c2.X - c.p0.X), Y: float32(c.c2.Y - c.p0.Y)}
	cross1 := abs32(d.X*v1.Y - d.Y*v1.X)
	cross2 := abs32(d.X*v2.Y - d.Y*v2.X)
	if cross1 > thresh || cross2 > thresh {
		return true
	}

	// Acute-angle ("super curvy") test: (c1-p0)."(c1-p3) > 0 or
	// (c2-p0).(c2-p3) > 0.
	c1p0 := geom.Vector2{X: float32(c.c1.X - c.p0.X), Y: float32(c.c1.Y - c.p0.Y)}
	c1p3 := geom.Vector2{X: float32(c.c1.X - c.p3.X), Y: float32(c.c1.Y - c.p3.Y)}
	if c1p0.Dot(c1p3) > 0 {
		return true
	}
	c2p0 := geom.Vector2{X: float32(c.c2.X - c.p0.X), Y: float32(c.c2.Y - c.p0.Y)}
	c2p3 := geom.Vector2{X: float32(c.c2.X - c.p3.X), Y: float32(c.c2.Y - c.p3.Y)}
	if c2p0.Dot(c2p3) > 0 {
		return true
	}
	return false
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func midFixed(a, b geom.Fixed) geom.Fixed { return (a + b) / 2 }

func midPoint(a, b geom.Point) geom.Point {
	return geom.Point{X: midFixed(a.X, b.X), Y: midFixed(a.Y, b.Y)}
}

// splitCubic performs one de Casteljau bisection at t=0.5, returning
// the left and right halves as their own cubic control quads.
func splitCubic(c flattenCubic) (left, right flattenCubic) {
	p01 := midPoint(c.p0, c.c1)
	p12 := midPoint(c.c1, c.c2)
	p23 := midPoint(c.c2, c.p3)
	p012 := midPoint(p01, p12)
	p123 := midPoint(p12, p23)
	p0123 := midPoint(p012, p123)

	left = flattenCubic{p0: c.p0, c1: p01, c2: p012, p3: p0123}
	right = flattenCubic{p0: p0123, c1: p123, c2: p23, p3: c.p3}
	return
}

// FlattenOutline returns a new outline equal to o but with every cubic
// contour replaced by line segments only, suitable input for the
// rasterizer's edge scanner (which only walks lines).
func FlattenOutline(o *Outline) Outline {
	var dst Outline
	dst.Rule = o.Rule
	dst.Reserve(len(o.Points)*2, len(o.ContourEnds))
	for ci := 0; ci < o.ContourCount(); ci++ {
		start, end := o.Contour(ci)
		dst.MoveTo(o.Points[start])
		pen := o.Points[start]
		i := start + 1
		for i <= end {
			if o.Types[i] == Cubic {
				c1, c2, to := o.Points[i], o.Points[i+1], o.Points[i+2]
				FlattenTo(&dst, pen, c1, c2, to)
				pen = to
				i += 3
			} else {
				dst.LineTo(o.Points[i])
				pen = o.Points[i]
				i++
			}
		}
		if o.Closed[ci] {
			dst.Close()
		} else {
			dst.Finish()
		}
	}
	return dst
}
