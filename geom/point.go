// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom holds the shared value types of the rasterizer: fixed
// point coordinates, 2D vectors, and affine matrices. Nothing in this
// package allocates or can fail; every operation is a pure value
// transform.
package geom

import (
	math32 "github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// PixelBits is the number of fractional bits used to represent one
// pixel in the rasterizer's internal fixed-point coordinate space. One
// pixel equals 1<<PixelBits subpixel units.
const PixelBits = 8

// OnePixel is the fixed-point value of one full pixel.
const OnePixel Fixed = 1 << PixelBits

// Fixed is a signed fixed-point sub-pixel coordinate: PixelBits
// fractional bits, the rest integer. All rasterizer-internal geometry
// is expressed in this type so that edge functions are exact integer
// arithmetic with no accumulated floating-point error.
type Fixed int32

// UpscaleF converts a float32 pixel coordinate to Fixed.
func UpscaleF(v float32) Fixed {
	return Fixed(math32.Round(v * float32(OnePixel)))
}

// Upscale converts a plain int pixel coordinate to Fixed.
func Upscale(v int) Fixed {
	return Fixed(v) << PixelBits
}

// Trunc truncates a Fixed value down to its integer pixel component
// (floor division toward negative infinity, matching the rasterizer's
// cell-coordinate convention).
func (f Fixed) Trunc() int32 {
	return int32(f >> PixelBits)
}

// Subpixels returns the fractional part of f, in [0, OnePixel).
func (f Fixed) Subpixels() Fixed {
	return f & (OnePixel - 1)
}

// ToFloat32 converts back to a float32 pixel coordinate.
func (f Fixed) ToFloat32() float32 {
	return float32(f) / float32(OnePixel)
}

// ToImageFixed converts to golang.org/x/image/math/fixed's 26.6
// representation, for interop with callers that build paths against
// that convention.
func (f Fixed) ToImageFixed() fixed.Int26_6 {
	// f has PixelBits=8 fractional bits; fixed.Int26_6 has 6.
	return fixed.Int26_6(int64(f) >> (PixelBits - 6))
}

// FromImageFixed converts an x/image/math/fixed 26.6 value into this
// package's 8-bit-subpixel Fixed.
func FromImageFixed(v fixed.Int26_6) Fixed {
	return Fixed(int64(v) << (PixelBits - 6))
}

// Point is a 2D coordinate in the rasterizer's fixed-point space.
type Point struct {
	X, Y Fixed
}

// Pt constructs a Point from two Fixed values.
func Pt(x, y Fixed) Point { return Point{x, y} }

// PtF constructs a Point from float32 pixel coordinates, upscaling to
// fixed point.
func PtF(x, y float32) Point { return Point{UpscaleF(x), UpscaleF(y)} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Vector2 is a plain float32 2D vector, used for the pre-rasterization
// geometry work (matrix math, stroker offset curves, gradient sampling)
// where integer fixed point would be premature.
type Vector2 struct {
	X, Y float32
}

// Vec2 constructs a Vector2.
func Vec2(x, y float32) Vector2 { return Vector2{x, y} }

// FromPoint converts a fixed Point to a float32 Vector2.
func FromPoint(p Point) Vector2 { return Vector2{p.X.ToFloat32(), p.Y.ToFloat32()} }

// ToPoint converts a float32 Vector2 to a fixed Point.
func (v Vector2) ToPoint() Point { return PtF(v.X, v.Y) }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o,
// treated as vectors in the z=0 plane.
func (v Vector2) Cross(o Vector2) float32 { return v.X*o.Y - v.Y*o.X }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 { return math32.Hypot(v.X, v.Y) }

// Normal returns v rotated 90 degrees and scaled to unit length; the
// zero vector's normal is the zero vector. Used to compute stroke
// offset directions from path tangents.
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{-v.Y / l, v.X / l}
}

// Normalize returns v scaled to unit length, or the zero vector if v
// is the zero vector.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{v.X / l, v.Y / l}
}

// Angle returns the angle of v from the positive x-axis, in radians.
func (v Vector2) Angle() float32 { return math32.Atan2(v.Y, v.X) }

// Lerp linearly interpolates between v and o at parameter t.
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return Vector2{v.X + t*(o.X-v.X), v.Y + t*(o.Y-v.Y)}
}
