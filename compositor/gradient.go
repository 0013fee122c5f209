// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compositor

import (
	math32 "github.com/chewxy/math32"
	"github.com/kesho-gfx/vgr/geom"
)

// maxGradientStops bounds the precomputed lookup table, spec §4.G
// "stop table (≤ 256 precomputed entries)".
const maxGradientStops = 256

// Spread selects how a gradient's parameter t is folded back into
// [0,1] once it runs past an endpoint.
type Spread uint8

const (
	// Pad clamps t to [0,1].
	Pad Spread = iota
	// Repeat takes the fractional part of t.
	Repeat
	// Reflect triangle-folds t into [0,1], mirroring every other unit
	// interval.
	Reflect
)

func (s Spread) apply(t float32) float32 {
	switch s {
	case Repeat:
		t -= math32.Floor(t)
		return t
	case Reflect:
		t = math32.Abs(t)
		f := math32.Floor(t)
		frac := t - f
		if int64(f)%2 != 0 {
			return 1 - frac
		}
		return frac
	default: // Pad
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
}

// Stop is one color stop of a gradient ramp, Offset in [0,1].
type Stop struct {
	Offset float32
	Color  Color
}

// table precomputes up to maxGradientStops lerped entries from a
// caller-supplied stop list, shared by Linear and Radial.
type table struct {
	entries [maxGradientStops]Color
	n       int
}

func buildTable(stops []Stop) table {
	var tb table
	tb.n = maxGradientStops
	if len(stops) == 0 {
		return tb
	}
	for i := 0; i < tb.n; i++ {
		t := float32(i) / float32(tb.n-1)
		tb.entries[i] = sampleStops(stops, t)
	}
	return tb
}

func sampleStops(stops []Stop, t float32) Color {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			lt := (t - a.Offset) / span
			return lerpColor(a.Color, b.Color, lt)
		}
	}
	return last.Color
}

func lerpColor(a, b Color, t float32) Color {
	lerp := func(x, y uint8) uint8 { return uint8(float32(x) + t*(float32(y)-float32(x))) }
	return Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func (tb table) lookup(t float32) Color {
	if tb.n == 0 {
		return Color{}
	}
	idx := int(t * float32(tb.n-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= tb.n {
		idx = tb.n - 1
	}
	return tb.entries[idx]
}

// Linear is a Source that samples a precomputed stop table by
// projecting each destination pixel onto the axis from P0 to P1; P0
// and P1 must already be in destination-surface pixel coordinates
// (the caller transforms the gradient's own local-space endpoints
// once, rather than every pixel ColorAt visits).
type Linear struct {
	P0, P1 geom.Vector2
	Spread Spread
	table  table
}

// NewLinear builds a Linear gradient source from p0, p1, and stops.
func NewLinear(p0, p1 geom.Vector2, spread Spread, stops []Stop) *Linear {
	return &Linear{P0: p0, P1: p1, Spread: spread, table: buildTable(stops)}
}

// ColorAt implements Source.
func (g *Linear) ColorAt(x, y float32) Color {
	axis := g.P1.Sub(g.P0)
	lenSq := axis.Dot(axis)
	if lenSq == 0 {
		return g.table.lookup(0)
	}
	p := geom.Vec2(x, y).Sub(g.P0)
	t := p.Dot(axis) / lenSq
	return g.table.lookup(g.Spread.apply(t))
}

// Radial is a Source that samples a precomputed stop table by
// distance from Center, scaled by Radius.
type Radial struct {
	Center geom.Vector2
	Radius float32
	Spread Spread
	table  table
}

// NewRadial builds a Radial gradient source.
func NewRadial(center geom.Vector2, radius float32, spread Spread, stops []Stop) *Radial {
	return &Radial{Center: center, Radius: radius, Spread: spread, table: buildTable(stops)}
}

// ColorAt implements Source.
func (g *Radial) ColorAt(x, y float32) Color {
	if g.Radius <= 0 {
		return g.table.lookup(0)
	}
	d := geom.Vec2(x, y).Sub(g.Center).Length()
	return g.table.lookup(g.Spread.apply(d / g.Radius))
}
