// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import math32 "github.com/chewxy/math32"

// Matrix is a row-major 3x3 affine transform. The bottom row is always
// [0 0 1] and is not stored; A-F follow the common 2D-affine
// convention:
//
//	[ A C E ]   [x]
//	[ B D F ] * [y]
//	[ 0 0 1 ]   [1]
type Matrix struct {
	A, B, C, D, E, F float32
}

// Identity returns the identity matrix.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Translate returns a pure translation matrix.
func Translate(tx, ty float32) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

// Scale returns a pure scale matrix.
func Scale(sx, sy float32) Matrix { return Matrix{A: sx, D: sy} }

// Rotate returns a pure rotation matrix, angle in radians.
func Rotate(radians float32) Matrix {
	s, c := math32.Sin(radians), math32.Cos(radians)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Mul returns m*n (apply n first, then m).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// MulPoint transforms a point through m.
func (m Matrix) MulPoint(p Vector2) Vector2 {
	return Vector2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// MulVector transforms a direction vector through m, ignoring
// translation.
func (m Matrix) MulVector(v Vector2) Vector2 {
	return Vector2{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// Determinant returns the determinant of the linear part of m.
func (m Matrix) Determinant() float32 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse of m. If m is singular, the zero matrix
// is returned (callers in this module never invert an attempted-
// singular transform; degenerate shapes are filtered upstream).
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}
	}
	id := 1 / det
	a := m.D * id
	b := -m.B * id
	c := -m.C * id
	d := m.A * id
	e := -(a*m.E + c*m.F)
	f := -(b*m.E + d*m.F)
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// ExtractScale returns the magnitude of the x and y basis vectors of
// the linear part of m, i.e. how much m scales lengths along each
// axis. The renderer uses it to scale a stroke's width with its
// shape's transform; dash lengths are not scaled.
func (m Matrix) ExtractScale() (sx, sy float32) {
	sx = math32.Hypot(m.A, m.B)
	sy = math32.Hypot(m.C, m.D)
	return
}

// Transpose returns the transpose of the linear part of m; the
// translation part of the result is zero.
func (m Matrix) Transpose() Matrix {
	return Matrix{A: m.A, B: m.C, C: m.B, D: m.D}
}
