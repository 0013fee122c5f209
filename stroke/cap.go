// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stroke

import (
	math32 "github.com/chewxy/math32"
	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/outline"
)

const (
	math32HalfTurn    = math32.Pi
	math32QuarterTurn = math32.Pi / 2
)

// angleDist returns the absolute angular distance between two angles,
// normalized into [0,π].
func angleDist(a, b float32) float32 {
	d := a - b
	for d > math32.Pi {
		d -= 2 * math32.Pi
	}
	for d < -math32.Pi {
		d += 2 * math32.Pi
	}
	if d < 0 {
		d = -d
	}
	return d
}

// emitCap appends the end-cap geometry at a sub-path endpoint.
// `center` is the path endpoint, `tangent` the unit direction the
// path was travelling (pointing away from the path body), `from` is
// the left-offset endpoint (dst's current point) and `to` the
// right-offset endpoint the cap must reach. hw is the half stroke
// width.
func emitCap(dst *outline.Outline, center, tangent, from, to geom.Vector2, hw float32, c Cap) {
	switch c {
	case CapSquare:
		ext := tangent.Mul(hw)
		dst.LineTo(from.Add(ext).ToPoint())
		dst.LineTo(to.Add(ext).ToPoint())
		dst.LineTo(to.ToPoint())
	case CapRound:
		// from and to are exactly antipodal (both at distance hw from
		// center), so a +π and -π sweep both reach `to`; pick the one
		// that bulges toward `tangent` (away from the stroke body)
		// rather than folding back across it.
		fromAngle := from.Sub(center).Angle()
		outward := tangent.Angle()
		toAngle := fromAngle + math32HalfTurn
		if angleDist(fromAngle+math32QuarterTurn, outward) > angleDist(fromAngle-math32QuarterTurn, outward) {
			toAngle = fromAngle - math32HalfTurn
		}
		emitArc(dst, center, hw, fromAngle, toAngle)
	default: // CapButt
		dst.LineTo(to.ToPoint())
	}
}
