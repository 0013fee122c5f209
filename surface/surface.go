// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface holds the destination-pixel-buffer contract every
// renderer operation writes into: a borrowed buffer, stride, size,
// and colorspace. The renderer never owns a Surface's backing array —
// it holds a borrow for the lifetime of one frame.
package surface

import "github.com/kesho-gfx/vgr/result"

// ColorSpace names the channel order of one packed premultiplied
// 32-bit pixel.
type ColorSpace uint8

const (
	// ARGB8888 packs a pixel as 0xAARRGGBB.
	ARGB8888 ColorSpace = iota
	// ABGR8888 packs a pixel as 0xAABBGGRR.
	ABGR8888
)

// Surface is a destination pixel buffer: {buffer, stride, w, h,
// colorspace}, caller-owned. Buffer holds one uint32 per pixel,
// premultiplied, in row-major order; Stride is in pixels (may exceed
// W when the caller's buffer has padding).
type Surface struct {
	Buffer     []uint32
	Stride     int
	W, H       int
	ColorSpace ColorSpace
}

// New wraps buf as a Surface of the given dimensions. It returns
// result.ErrInvalidArguments if buf is too small for stride*h pixels
// or if w, h, or stride are non-positive.
func New(buf []uint32, stride, w, h int, cs ColorSpace) (Surface, error) {
	if w <= 0 || h <= 0 || stride < w {
		return Surface{}, result.ErrInvalidArguments
	}
	if len(buf) < stride*h {
		return Surface{}, result.ErrInvalidArguments
	}
	return Surface{Buffer: buf, Stride: stride, W: w, H: h, ColorSpace: cs}, nil
}

// index returns the buffer offset of pixel (x,y), assumed in bounds.
func (s Surface) index(x, y int) int {
	return y*s.Stride + x
}

// At returns the premultiplied pixel at (x,y).
func (s Surface) At(x, y int) uint32 {
	return s.Buffer[s.index(x, y)]
}

// Set writes the premultiplied pixel v at (x,y).
func (s Surface) Set(x, y int, v uint32) {
	s.Buffer[s.index(x, y)] = v
}

// Row returns the Stride-wide (not W-wide) backing slice for row y,
// letting callers blend a whole scanline in one pass.
func (s Surface) Row(y int) []uint32 {
	off := y * s.Stride
	return s.Buffer[off : off+s.Stride]
}

// Clear resets every pixel in [0,w)x[0,h) to fully transparent (the
// `clear()` façade operation's surface-reset half).
func (s Surface) Clear() {
	for y := 0; y < s.H; y++ {
		row := s.Row(y)
		for x := 0; x < s.W; x++ {
			row[x] = 0
		}
	}
}

// Channels unpacks a premultiplied pixel into its four 8-bit channels
// in (r,g,b,a) order, honoring cs's byte order.
func (cs ColorSpace) Channels(px uint32) (r, g, b, a uint8) {
	a = uint8(px >> 24)
	c1 := uint8(px >> 16)
	c2 := uint8(px >> 8)
	c3 := uint8(px)
	if cs == ABGR8888 { // 0xAABBGGRR
		return c3, c2, c1, a
	}
	return c1, c2, c3, a // ARGB8888, 0xAARRGGBB
}

// Pack packs four premultiplied 8-bit channels into one pixel,
// honoring cs's byte order.
func (cs ColorSpace) Pack(r, g, b, a uint8) uint32 {
	if cs == ABGR8888 {
		return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
	}
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
