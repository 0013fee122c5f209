// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stroke

import (
	math32 "github.com/chewxy/math32"
	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/outline"
)

// emitJoin appends the join geometry between two offset-chain
// endpoints, `from` and `to`, both at distance hw from center, per
// the style named in s. dst's current point must already be `from`.
func emitJoin(dst *outline.Outline, center, from, to geom.Vector2, hw float32, s Style) {
	switch s.Join {
	case JoinRound:
		fromAngle := from.Sub(center).Angle()
		toAngle := to.Sub(center).Angle()
		fromAngle, toAngle = shortestSweep(fromAngle, toAngle)
		emitArc(dst, center, hw, fromAngle, toAngle)
		return
	case JoinMiter:
		if mp, ok := miterPoint(center, from, to, hw, s.miterLimit()); ok {
			dst.LineTo(mp.ToPoint())
		}
	}
	dst.LineTo(to.ToPoint())
}

// shortestSweep picks the direction (by possibly adding/subtracting
// 2π to `to`) that sweeps the shorter way from `from` to `to`, so the
// join arc bulges outward rather than wrapping the long way around.
func shortestSweep(from, to float32) (float32, float32) {
	const twoPi = 2 * math32.Pi
	for to-from > math32.Pi {
		to -= twoPi
	}
	for to-from < -math32.Pi {
		to += twoPi
	}
	return from, to
}

// miterPoint returns the miter apex for the corner at center between
// incoming offset point `from` and outgoing offset point `to`, or
// ok=false if the miter length would exceed limit, an absolute length
// already (degrade to bevel, spec §4.D step 3).
func miterPoint(center, from, to geom.Vector2, hw, limit float32) (geom.Vector2, bool) {
	d1 := from.Sub(center).Normalize()
	d2 := to.Sub(center).Normalize()
	bis := d1.Add(d2)
	blen := bis.Length()
	if blen < 1e-6 {
		return geom.Vector2{}, false
	}
	bis = bis.Mul(1 / blen)
	cosHalf := d1.Dot(bis)
	if cosHalf < 1e-6 {
		return geom.Vector2{}, false
	}
	miterLen := hw / cosHalf
	if miterLen > limit {
		return geom.Vector2{}, false
	}
	return center.Add(bis.Mul(miterLen)), true
}
