// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compositor

import (
	"testing"

	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/raster"
	"github.com/kesho-gfx/vgr/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSurface(t *testing.T, w, h int) surface.Surface {
	s, err := surface.New(make([]uint32, w*h), w, w, h, surface.ARGB8888)
	require.NoError(t, err)
	return s
}

// TestCompositeOpaqueFullCoverage covers scenario S1: an opaque white
// fill over a cleared surface at full coverage must write 0xFFFFFFFF.
func TestCompositeOpaqueFullCoverage(t *testing.T) {
	s := newSurface(t, 8, 8)
	spans := []raster.RLE{{X: 0, Y: 0, Len: 8, Cov: 255}}
	Composite(s, spans, Solid{R: 255, G: 255, B: 255, A: 255}, None, 255)
	for x := 0; x < 8; x++ {
		assert.Equal(t, uint32(0xFFFFFFFF), s.At(x, 0))
	}
}

func TestCompositeHalfCoverageBlendsWithDestination(t *testing.T) {
	s := newSurface(t, 4, 1)
	s.Set(0, 0, 0xFF000000) // opaque black background
	spans := []raster.RLE{{X: 0, Y: 0, Len: 1, Cov: 128}}
	Composite(s, spans, Solid{R: 255, G: 255, B: 255, A: 255}, None, 255)
	r, g, b, a := surface.ARGB8888.Channels(s.At(0, 0))
	assert.InDelta(t, 128, int(r), 2)
	assert.InDelta(t, 128, int(g), 2)
	assert.InDelta(t, 128, int(b), 2)
	assert.Equal(t, uint8(255), a)
}

func TestCompositeZeroCoverageLeavesDestinationUnchanged(t *testing.T) {
	s := newSurface(t, 2, 1)
	s.Set(0, 0, 0xAABBCCDD)
	spans := []raster.RLE{{X: 0, Y: 0, Len: 1, Cov: 0}}
	Composite(s, spans, Solid{R: 1, G: 2, B: 3, A: 4}, None, 255)
	assert.Equal(t, uint32(0xAABBCCDD), s.At(0, 0))
}

func TestCompositeClipPathMultipliesDestinationAlpha(t *testing.T) {
	s := newSurface(t, 1, 1)
	s.Set(0, 0, surface.ARGB8888.Pack(10, 20, 30, 0x80)) // half-alpha destination
	spans := []raster.RLE{{X: 0, Y: 0, Len: 1, Cov: 255}}
	Composite(s, spans, Solid{A: 128}, ClipPath, 255)
	r, g, b, a := surface.ARGB8888.Channels(s.At(0, 0))
	assert.InDelta(t, 0x80*128/255, int(a), 2)
	// ClipPath is alpha-only: color channels must survive untouched.
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})
}

func TestCompositeAlphaMaskErasesWhereMaskCovers(t *testing.T) {
	s := newSurface(t, 1, 1)
	s.Set(0, 0, surface.ARGB8888.Pack(1, 2, 3, 255))
	spans := []raster.RLE{{X: 0, Y: 0, Len: 1, Cov: 255}}
	Composite(s, spans, Solid{A: 255}, AlphaMask, 255)
	_, _, _, a := surface.ARGB8888.Channels(s.At(0, 0))
	assert.Equal(t, uint8(0), a)
}

func TestCompositeInvAlphaMaskErasesWhereMaskDoesNotCover(t *testing.T) {
	s := newSurface(t, 1, 1)
	s.Set(0, 0, surface.ARGB8888.Pack(1, 2, 3, 255))
	spans := []raster.RLE{{X: 0, Y: 0, Len: 1, Cov: 0}} // mask has zero coverage here
	Composite(s, spans, Solid{A: 255}, InvAlphaMask, 255)
	// inverted coverage is 255, so this still erases: InvAlphaMask with
	// zero span coverage behaves like AlphaMask with full coverage.
	_, _, _, a := surface.ARGB8888.Channels(s.At(0, 0))
	assert.Equal(t, uint8(0), a)
}

func TestLinearGradientEndpointsMatchStops(t *testing.T) {
	g := NewLinear(geom.Vec2(0, 0), geom.Vec2(10, 0), Pad, []Stop{
		{Offset: 0, Color: Color{R: 0, A: 255}},
		{Offset: 1, Color: Color{R: 255, A: 255}},
	})
	assert.Equal(t, uint8(0), g.ColorAt(0, 0).R)
	assert.InDelta(t, 255, int(g.ColorAt(10, 0).R), 2)
	mid := g.ColorAt(5, 0).R
	assert.InDelta(t, 128, int(mid), 10)
}

func TestLinearGradientPadClampsBeyondEndpoints(t *testing.T) {
	g := NewLinear(geom.Vec2(0, 0), geom.Vec2(10, 0), Pad, []Stop{
		{Offset: 0, Color: Color{R: 10, A: 255}},
		{Offset: 1, Color: Color{R: 200, A: 255}},
	})
	assert.Equal(t, g.ColorAt(-5, 0), g.ColorAt(0, 0))
	assert.Equal(t, g.ColorAt(50, 0), g.ColorAt(10, 0))
}

func TestRadialGradientCenterMatchesFirstStop(t *testing.T) {
	g := NewRadial(geom.Vec2(4, 4), 4, Pad, []Stop{
		{Offset: 0, Color: Color{R: 9, A: 255}},
		{Offset: 1, Color: Color{R: 200, A: 255}},
	})
	assert.Equal(t, uint8(9), g.ColorAt(4, 4).R)
}
