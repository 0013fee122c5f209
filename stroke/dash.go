// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stroke

import (
	math32 "github.com/chewxy/math32"
	"github.com/kesho-gfx/vgr/geom"
)

// polyline is one sub-path's vertices, already flattened to lines.
type polyline struct {
	pts    []geom.Vector2
	closed bool
}

func (p polyline) length() float32 {
	var l float32
	for i := 1; i < len(p.pts); i++ {
		l += p.pts[i].Sub(p.pts[i-1]).Length()
	}
	if p.closed && len(p.pts) > 1 {
		l += p.pts[0].Sub(p.pts[len(p.pts)-1]).Length()
	}
	return l
}

// dash re-parameterizes one polyline by arc length against the dash
// pattern, returning the "on" sub-segments as independent open
// polylines. Each call restarts at phase offset (spec §4.D: "each
// sub-path restarts at phase 0 unless otherwise specified" — callers
// pass the same offset for every sub-path of a source outline).
func dash(p polyline, offset float32, pattern []float32) []polyline {
	pat := canonicalDash(pattern)
	if len(pat) == 0 {
		return []polyline{p}
	}
	if len(pat) == 1 {
		return nil // a single all-zero/degenerate pattern draws nothing
	}

	verts := p.pts
	if p.closed && len(verts) > 0 {
		verts = append(append([]geom.Vector2{}, verts...), verts[0])
	}
	if len(verts) < 2 {
		return nil
	}

	idx, pos := dashPhase(offset, pat)
	var out []polyline
	var cur []geom.Vector2
	on := idx%2 == 0
	if on {
		cur = append(cur, verts[0])
	}

	for i := 1; i < len(verts); i++ {
		segStart, segEnd := verts[i-1], verts[i]
		segLen := segEnd.Sub(segStart).Length()
		segPos := float32(0)
		for segPos < segLen {
			remaining := pat[idx] - pos
			step := segLen - segPos
			if remaining < step {
				step = remaining
			}
			segPos += step
			pos += step
			pt := segStart.Lerp(segEnd, clamp01(segPos/maxf(segLen, 1e-9)))
			if on {
				cur = append(cur, pt)
			}
			if pos >= pat[idx]-epsilonDash {
				if on && len(cur) >= 2 {
					out = append(out, polyline{pts: cur})
				}
				on = !on
				cur = nil
				if on {
					cur = append(cur, pt)
				}
				idx++
				if idx == len(pat) {
					idx = 0
				}
				pos = 0
			}
		}
	}
	if on && len(cur) >= 2 {
		out = append(out, polyline{pts: cur})
	}
	return out
}

const epsilonDash = 1e-6

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// canonicalDash drops zero-length entries (merging into neighbors)
// and duplicates an odd-length pattern so on/off always alternate at
// even/odd indices, spec §4.D's dash invariants.
func canonicalDash(d []float32) []float32 {
	if len(d) == 0 {
		return nil
	}
	out := make([]float32, 0, len(d))
	var total float32
	for _, v := range d {
		if v < 0 {
			return []float32{0}
		}
		total += v
	}
	if total <= 0 {
		return []float32{0}
	}
	for _, v := range d {
		if v == 0 {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return []float32{0}
	}
	if len(out)%2 == 1 {
		out = append(out, out...)
	}
	return out
}

func dashPhase(offset float32, pat []float32) (int, float32) {
	var total float32
	for _, v := range pat {
		total += v
	}
	if total <= 0 {
		return 0, 0
	}
	offset = math32.Mod(offset, total)
	if offset < 0 {
		offset += total
	}
	idx := 0
	for offset >= pat[idx] {
		offset -= pat[idx]
		idx++
		if idx == len(pat) {
			idx = 0
		}
	}
	return idx, offset
}
