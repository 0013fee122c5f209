// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compositor

import (
	"image"

	"github.com/kesho-gfx/vgr/geom"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Picture is a Source backed by an image, resampled once per shape
// into a destination-aligned buffer rather than sampled per pixel
// through a live inverse transform: one draw.BiLinear.Transform call
// blits the source image through an affine matrix into an
// intermediate buffer instead of the final destination, so
// Composite's per-pixel loop can still drive everything through
// coverage and composite method uniformly.
type Picture struct {
	buf    *image.RGBA
	origin image.Point // buf.Bounds().Min in destination-surface pixel coordinates
}

// NewPicture resamples src into the destination-surface pixel region
// dstBounds, mapping src's pixel space to destination space through
// m (the shape's effective transform composed with any placement
// offset), using bilinear filtering.
func NewPicture(src image.Image, m geom.Matrix, dstBounds image.Rectangle) *Picture {
	buf := image.NewRGBA(image.Rectangle{Max: dstBounds.Size()})
	s2d := f64.Aff3{
		float64(m.A), float64(m.C), float64(m.E) - float64(dstBounds.Min.X),
		float64(m.B), float64(m.D), float64(m.F) - float64(dstBounds.Min.Y),
	}
	draw.BiLinear.Transform(buf, s2d, src, src.Bounds(), draw.Src, nil)
	return &Picture{buf: buf, origin: dstBounds.Min}
}

// ColorAt implements Source; x,y are destination-surface pixel
// coordinates (Composite never applies an inverse transform itself —
// NewPicture already baked the forward transform into buf).
func (p *Picture) ColorAt(x, y float32) Color {
	px := int(x) - p.origin.X
	py := int(y) - p.origin.Y
	b := p.buf.Bounds()
	if px < b.Min.X || px >= b.Max.X || py < b.Min.Y || py >= b.Max.Y {
		return Color{}
	}
	i := p.buf.PixOffset(px, py)
	pix := p.buf.Pix[i : i+4 : i+4]
	return Color{R: pix[0], G: pix[1], B: pix[2], A: pix[3]}
}
