// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stroke

import (
	math32 "github.com/chewxy/math32"
	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/outline"
)

// maxArcStep is the largest angular step approximated by a single
// cubic, spec §4.D step 3's "≥ one Bezier per π/2".
const maxArcStep = math32.Pi / 2

// emitArc appends a circular arc of the given radius centered at
// center, from angle a0 to a1 (radians, either direction), as a chain
// of cubics onto dst. dst's current point must already be the arc's
// starting point.
func emitArc(dst *outline.Outline, center geom.Vector2, radius, a0, a1 float32) {
	delta := a1 - a0
	steps := int(math32.Ceil(math32.Abs(delta) / maxArcStep))
	if steps < 1 {
		steps = 1
	}
	step := delta / float32(steps)
	for i := 0; i < steps; i++ {
		s0 := a0 + float32(i)*step
		s1 := s0 + step
		c1, c2, p3 := arcSegment(center, radius, s0, s1)
		dst.CubicTo(c1.ToPoint(), c2.ToPoint(), p3.ToPoint())
	}
}

// arcSegment returns the cubic control points approximating the arc
// [a0,a1] (assumed |a1-a0| <= maxArcStep) around center at radius.
func arcSegment(center geom.Vector2, radius, a0, a1 float32) (c1, c2, p3 geom.Vector2) {
	p0 := onCircle(center, radius, a0)
	p3 = onCircle(center, radius, a1)
	k := 4.0 / 3.0 * math32.Tan((a1-a0)/4)
	t0 := geom.Vec2(-math32.Sin(a0), math32.Cos(a0))
	t1 := geom.Vec2(-math32.Sin(a1), math32.Cos(a1))
	c1 = p0.Add(t0.Mul(k * radius))
	c2 = p3.Sub(t1.Mul(k * radius))
	return
}

func onCircle(center geom.Vector2, radius, angle float32) geom.Vector2 {
	return center.Add(geom.Vec2(math32.Cos(angle)*radius, math32.Sin(angle)*radius))
}
