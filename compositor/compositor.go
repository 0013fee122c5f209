// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compositor blends rasterized coverage spans into a
// destination surface: solid colors, gradients, and image fills, each
// combined with the span's coverage and one of four composite
// methods. The per-pixel arithmetic mirrors the premultiplied
// fixed-point blend weights of an image/RGBA span-drawing routine,
// generalized from "draw into one *image.RGBA" to "blend one coverage
// span into a surface.Surface under a chosen composite method".
package compositor

import (
	"github.com/kesho-gfx/vgr/raster"
	"github.com/kesho-gfx/vgr/surface"
)

// Color is a premultiplied 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Source supplies the premultiplied paint color for one destination
// pixel, in destination-surface pixel coordinates. A Source whose
// paint geometry is defined in a shape's local space (gradient
// endpoints, an image's own pixel grid) bakes the shape's transform
// into its own state once at construction, rather than Composite
// inverse-transforming every pixel it visits.
type Source interface {
	ColorAt(x, y float32) Color
}

// Solid is a Source that returns the same color everywhere.
type Solid Color

// ColorAt implements Source.
func (s Solid) ColorAt(float32, float32) Color { return Color(s) }

// Method is a span-level composite method, spec §4.G's table.
type Method uint8

const (
	// None is standard source-over.
	None Method = iota
	// ClipPath multiplies destination alpha by source alpha.
	ClipPath
	// AlphaMask multiplies destination alpha by (1 - source alpha).
	AlphaMask
	// InvAlphaMask is AlphaMask with the source's covered region and
	// its complement swapped before the multiply.
	InvAlphaMask
)

// weight widens an 8-bit channel*coverage product the way 16-bit
// premultiplied blend math widens it, rounding by the +128 bias before
// the /255 narrowing divide.
func weight(c, cov uint8) uint32 {
	return (uint32(c)*uint32(cov) + 128) / 255
}

// Composite blends spans into dst under src, using m to combine
// each span's source alpha with the destination's existing alpha.
// opacity further scales every span's coverage, in [0,255]; it is the
// compositor-target "blit back through the chosen method and opacity"
// step of spec §4.G.
func Composite(dst surface.Surface, spans []raster.RLE, src Source, m Method, opacity uint8) {
	if opacity == 0 {
		return
	}
	for _, sp := range spans {
		if sp.Y < 0 || int(sp.Y) >= dst.H {
			continue
		}
		row := dst.Row(int(sp.Y))
		x0, x1 := int(sp.X), int(sp.End())
		if x0 < 0 {
			x0 = 0
		}
		if x1 > dst.W {
			x1 = dst.W
		}
		for x := x0; x < x1; x++ {
			cov := scaleCov(sp.Cov, opacity)
			// InvAlphaMask acts on the complement coverage, so a
			// zero-coverage pixel is where it erases most.
			if cov == 0 && m != InvAlphaMask {
				continue
			}
			blendPixel(dst, row, x, src.ColorAt(float32(x), float32(sp.Y)), cov, m)
		}
	}
}

func scaleCov(cov, opacity uint8) uint8 {
	if opacity == 255 {
		return cov
	}
	return uint8((uint32(cov) * uint32(opacity)) / 255)
}

// blendPixel writes the result of blending src (at coverage cov) over
// the pixel at row[x]. None is the standard Porter-Duff premultiplied
// source-over on all four channels; the other three methods are pure
// alpha-channel operations on the destination per spec §4.G's table
// (a ClipPath/AlphaMask/InvAlphaMask source acts as a mask, not as
// paint, so it never touches dst's color channels).
func blendPixel(dst surface.Surface, row []uint32, x int, src Color, cov uint8, m Method) {
	dr, dg, db, da := dst.ColorSpace.Channels(row[x])

	if m != None {
		row[x] = dst.ColorSpace.Pack(dr, dg, db, maskAlpha(da, src.A, cov, m))
		return
	}

	sama := weight(src.A, cov)
	inv := 255 - uint8(sama)
	out := Color{
		R: uint8(weight(src.R, cov) + weight(dr, inv)),
		G: uint8(weight(src.G, cov) + weight(dg, inv)),
		B: uint8(weight(src.B, cov) + weight(db, inv)),
		A: uint8(sama + weight(da, inv)),
	}
	row[x] = dst.ColorSpace.Pack(out.R, out.G, out.B, out.A)
}

// maskAlpha computes the new destination alpha for the three mask-
// style composite methods, all keeping or erasing based on the mask
// source's coverage-weighted alpha s = alpha(src)*cov/255.
//
//   - ClipPath keeps the intersection: factor = s.
//   - AlphaMask erases where the mask covers: factor = 1-s.
//   - InvAlphaMask erases where the mask does *not* cover (spec's
//     "with inverted mask"): same keep-formula as AlphaMask, but s is
//     computed from the span's complement coverage (255-cov) instead
//     of cov itself.
func maskAlpha(da, srcAlpha, cov uint8, m Method) uint8 {
	if m == InvAlphaMask {
		cov = 255 - cov
	}
	s := uint8(weight(srcAlpha, cov))
	factor := s
	if m != ClipPath {
		factor = 255 - s
	}
	return uint8(weight(da, factor))
}
