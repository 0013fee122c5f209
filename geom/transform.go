// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// RenderTransform holds a shape's placement as translation, rotation
// (degrees), and uniform scale, or an explicit override matrix
// supplied by the caller. Update recomposes Matrix from the decomposed
// fields unless Override is set.
type RenderTransform struct {
	X, Y     float32 // translation
	Rotation float32 // degrees
	Scale    float32 // uniform scale; zero means 1 (unset)

	// Override, if non-nil, replaces the composed T*R*S matrix
	// entirely. A caller that wants full control (skew, non-uniform
	// scale composed externally) sets this instead of the decomposed
	// fields.
	Override *Matrix

	// Matrix is the effective transform, recomputed by Update.
	Matrix Matrix
}

// Update recomposes rt.Matrix as T*R*S unless Override is set.
func (rt *RenderTransform) Update() {
	if rt.Override != nil {
		rt.Matrix = *rt.Override
		return
	}
	s := rt.Scale
	if s == 0 {
		s = 1
	}
	t := Translate(rt.X, rt.Y)
	r := Rotate(rt.Rotation * (3.14159265 / 180))
	sc := Scale(s, s)
	rt.Matrix = t.Mul(r).Mul(sc)
}

// Compose returns the effective matrix of applying rt after o (o's
// transform, then rt's), i.e. the product rt.Matrix·o.Matrix.
// Both transforms must have had Update called already.
func (rt RenderTransform) Compose(o RenderTransform) Matrix {
	return rt.Matrix.Mul(o.Matrix)
}
