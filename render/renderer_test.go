// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"testing"

	"github.com/kesho-gfx/vgr/compositor"
	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/outline"
	"github.com/kesho-gfx/vgr/stroke"
	"github.com/kesho-gfx/vgr/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSurface(t *testing.T, w, h int) surface.Surface {
	s, err := surface.New(make([]uint32, w*h), w, w, h, surface.ARGB8888)
	require.NoError(t, err)
	return s
}

func rectPath(x0, y0, x1, y1 float32) outline.Outline {
	var o outline.Outline
	o.MoveTo(geom.PtF(x0, y0))
	o.LineTo(geom.PtF(x1, y0))
	o.LineTo(geom.PtF(x1, y1))
	o.LineTo(geom.PtF(x0, y1))
	o.Close()
	return o
}

func renderOneShape(t *testing.T, e *Engine, dst surface.Surface, shape *Shape, clipW, clipH int32) {
	data := e.Prepare(shape, nil, nil, clipW, clipH, FlagPath)
	require.NoError(t, e.PreRender())
	require.NoError(t, e.RenderShape(dst, data, shape))
	require.NoError(t, e.PostRender())
}

// TestRenderOpaqueFillCoversWholeSurface covers scenario S1: an 8x8
// surface filled opaque white with no anti-aliasing writes every
// pixel 0xFFFFFFFF.
func TestRenderOpaqueFillCoversWholeSurface(t *testing.T) {
	e := Init(WithThreads(0), WithAntiAlias(false))
	defer Term(e)
	dst := newTestSurface(t, 8, 8)

	shape := &Shape{
		Path:    rectPath(0, 0, 8, 8),
		Fill:    &FillSpec{Source: compositor.Solid{R: 255, G: 255, B: 255, A: 255}},
		Opacity: 255,
	}
	shape.Transform.Update()
	renderOneShape(t, e, dst, shape, 8, 8)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, uint32(0xFFFFFFFF), dst.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// TestRenderStrokedHorizontalLineArea covers scenario S4: a horizontal
// line from (1,4) to (7,4) stroked with width 2 and butt caps produces
// a 6-pixel-wide, 2-row band.
func TestRenderStrokedHorizontalLineArea(t *testing.T) {
	e := Init(WithThreads(0), WithAntiAlias(false))
	defer Term(e)
	dst := newTestSurface(t, 8, 8)

	var path outline.Outline
	path.MoveTo(geom.PtF(1, 4))
	path.LineTo(geom.PtF(7, 4))
	path.Finish()

	shape := &Shape{
		Path: path,
		Stroke: &StrokeSpec{
			Style:  stroke.Style{Width: 2, Cap: stroke.CapButt, Join: stroke.JoinMiter},
			Source: compositor.Solid{R: 0, G: 0, B: 0, A: 255},
		},
		Opacity: 255,
	}
	shape.Transform.Update()
	data := e.Prepare(shape, nil, nil, 8, 8, FlagPath|FlagStroke)
	require.NoError(t, e.PreRender())
	require.NoError(t, e.RenderShape(dst, data, shape))
	require.NoError(t, e.PostRender())

	for y := 0; y < 8; y++ {
		covered := 0
		for x := 0; x < 8; x++ {
			if dst.At(x, y)&0xFF000000 != 0 {
				covered++
			}
		}
		if y == 3 || y == 4 {
			assert.Equal(t, 6, covered, "row %d", y)
		} else {
			assert.Equal(t, 0, covered, "row %d should be untouched", y)
		}
	}
}

// TestStrokeWidthScalesWithTransformUnlessNonScaling checks that a
// shape's transform scale reaches its stroke width by default, and
// that setting StrokeSpec.NonScaling holds the width fixed instead.
func TestStrokeWidthScalesWithTransformUnlessNonScaling(t *testing.T) {
	buildShape := func(nonScaling bool) *Shape {
		var path outline.Outline
		path.MoveTo(geom.PtF(1, 4))
		path.LineTo(geom.PtF(7, 4))
		path.Finish()
		shape := &Shape{
			Path: path,
			Stroke: &StrokeSpec{
				Style:      stroke.Style{Width: 2, Cap: stroke.CapButt, Join: stroke.JoinMiter},
				Source:     compositor.Solid{R: 0, G: 0, B: 0, A: 255},
				NonScaling: nonScaling,
			},
			Opacity: 255,
		}
		shape.Transform.Scale = 2
		shape.Transform.Update()
		return shape
	}

	// Under a 2x transform, the line (1,4)-(7,4) is placed at (2,8)-
	// (14,8). A scaled stroke (width 2*2=4, half-width 2) covers row 6;
	// a non-scaling stroke (width stays 2, half-width 1) does not.
	e := Init(WithThreads(0), WithAntiAlias(false))
	defer Term(e)

	scaled := newTestSurface(t, 20, 20)
	renderOneShape(t, e, scaled, buildShape(false), 20, 20)
	assert.NotZero(t, scaled.At(7, 6), "scaled stroke should reach row 6")

	fixed := newTestSurface(t, 20, 20)
	renderOneShape(t, e, fixed, buildShape(true), 20, 20)
	assert.Zero(t, fixed.At(7, 6), "non-scaling stroke should not reach row 6")
}

// TestRenderClipPathRestrictsToOverlap covers scenario S5: shape A
// clip-path shape B leaves only their rectangular overlap non-zero.
func TestRenderClipPathRestrictsToOverlap(t *testing.T) {
	e := Init(WithThreads(0), WithAntiAlias(false))
	defer Term(e)
	dst := newTestSurface(t, 9, 9)

	a := &Shape{
		Path:    rectPath(0, 0, 6, 6),
		Fill:    &FillSpec{Source: compositor.Solid{R: 255, A: 255}},
		Opacity: 255,
	}
	a.Transform.Update()
	aData := e.Prepare(a, nil, nil, 9, 9, FlagPath)
	require.NoError(t, e.PreRender())
	require.NoError(t, e.PostRender())

	// B's render-data is geometrically clipped to A's fill spans, then
	// B alone is rendered onto the surface — A itself is never blitted.
	b := &Shape{
		Path:    rectPath(3, 3, 9, 9),
		Fill:    &FillSpec{Source: compositor.Solid{G: 255, A: 255}},
		Opacity: 255,
	}
	b.Transform.Update()

	data := e.Prepare(b, nil, aData.FillSpans, 9, 9, FlagPath)
	require.NoError(t, e.PreRender())
	require.NoError(t, e.RenderShape(dst, data, b))
	require.NoError(t, e.PostRender())

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			_, _, _, alpha := surface.ARGB8888.Channels(dst.At(x, y))
			inOverlap := x >= 3 && x < 6 && y >= 3 && y < 6
			if inOverlap {
				assert.NotZero(t, alpha, "(%d,%d) should be in the clip-path overlap", x, y)
			} else {
				assert.Zero(t, alpha, "(%d,%d) should be outside the clip-path overlap", x, y)
			}
		}
	}
}

// TestRenderEmptyPathIsNoOp covers scenario S6: rendering an empty
// path to a cleared surface leaves it unchanged and reports success.
func TestRenderEmptyPathIsNoOp(t *testing.T) {
	e := Init(WithThreads(0))
	defer Term(e)
	dst := newTestSurface(t, 4, 4)

	shape := &Shape{Fill: &FillSpec{Source: compositor.Solid{R: 255, A: 255}}, Opacity: 255}
	shape.Transform.Update()
	data := e.Prepare(shape, nil, nil, 4, 4, FlagPath)
	require.NoError(t, e.PreRender())
	require.NoError(t, e.RenderShape(dst, data, shape))
	require.NoError(t, e.PostRender())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, uint32(0), dst.At(x, y))
		}
	}
}

// TestRenderShapeOutsidePreRenderPostRenderIsRejected exercises the
// pre_render -> render_* -> post_render legal-sequence invariant
// (spec §4.J): calling RenderShape before any PreRender must fail.
func TestRenderShapeOutsidePreRenderPostRenderIsRejected(t *testing.T) {
	e := Init(WithThreads(0))
	defer Term(e)
	dst := newTestSurface(t, 2, 2)

	shape := &Shape{Fill: &FillSpec{Source: compositor.Solid{A: 255}}}
	shape.Transform.Update()
	data := NewRenderData()
	err := e.RenderShape(dst, data, shape)
	assert.Error(t, err)
}

// TestTransformCompositionMatchesPreMultipliedMatrix covers property 7:
// rendering a shape through a translating RenderTransform must match,
// pixel for pixel, rendering the same shape with its path translated
// in advance and an identity transform.
func TestTransformCompositionMatchesPreMultipliedMatrix(t *testing.T) {
	e := Init(WithThreads(0), WithAntiAlias(false))
	defer Term(e)

	composed := &Shape{
		Path:    rectPath(0, 0, 4, 4),
		Fill:    &FillSpec{Source: compositor.Solid{R: 255, A: 255}},
		Opacity: 255,
	}
	composed.Transform = geom.RenderTransform{X: 2, Y: 3}
	composed.Transform.Update()

	dstComposed := newTestSurface(t, 8, 8)
	renderOneShape(t, e, dstComposed, composed, 8, 8)

	prePlaced := &Shape{
		Path:    rectPath(2, 3, 6, 7),
		Fill:    &FillSpec{Source: compositor.Solid{R: 255, A: 255}},
		Opacity: 255,
	}
	prePlaced.Transform.Update()
	dstPrePlaced := newTestSurface(t, 8, 8)
	renderOneShape(t, e, dstPrePlaced, prePlaced, 8, 8)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, dstPrePlaced.At(x, y), dstComposed.At(x, y), "(%d,%d)", x, y)
		}
	}
}

// TestPrepareRenderSeparationIgnoresStaleRenderData covers property 8:
// a shape's render_shape output depends only on the render-data from
// its immediately preceding prepare, not on whatever a prior frame
// left behind.
func TestPrepareRenderSeparationIgnoresStaleRenderData(t *testing.T) {
	e := Init(WithThreads(0), WithAntiAlias(false))
	defer Term(e)

	shape := &Shape{
		Path:    rectPath(0, 0, 4, 4),
		Fill:    &FillSpec{Source: compositor.Solid{R: 255, A: 255}},
		Opacity: 255,
	}
	shape.Transform.Update()

	dst := newTestSurface(t, 8, 8)
	firstFrame := e.Prepare(shape, nil, nil, 8, 8, FlagPath)
	require.NoError(t, e.PreRender())
	require.NoError(t, e.RenderShape(dst, firstFrame, shape))
	require.NoError(t, e.PostRender())

	shape.Path = rectPath(4, 4, 8, 8)
	dst2 := newTestSurface(t, 8, 8)
	secondFrame := e.Prepare(shape, firstFrame, nil, 8, 8, FlagPath)
	require.NoError(t, e.PreRender())
	require.NoError(t, e.RenderShape(dst2, secondFrame, shape))
	require.NoError(t, e.PostRender())

	assert.Equal(t, uint32(0), dst2.At(1, 1), "old geometry must not leak into the new frame's render")
	assert.Equal(t, uint32(0xFFFF0000), dst2.At(5, 5))
}

// TestPrepareReusesCachedRenderDataWhenFlagsEmpty exercises the
// update-flag-set invariant: an empty flag set on a second Prepare
// call must return the same render-data, unchanged, without
// rescheduling any work.
func TestPrepareReusesCachedRenderDataWhenFlagsEmpty(t *testing.T) {
	e := Init(WithThreads(0), WithAntiAlias(false))
	defer Term(e)

	shape := &Shape{
		Path: rectPath(0, 0, 4, 4),
		Fill: &FillSpec{Source: compositor.Solid{R: 255, A: 255}},
	}
	shape.Transform.Update()

	data := e.Prepare(shape, nil, nil, 8, 8, FlagPath)
	require.NoError(t, e.PreRender())

	reused := e.Prepare(shape, data, nil, 8, 8, 0)
	assert.Same(t, data, reused)
}

// TestRenderSceneAccumulatesIntoCompositeTarget checks that a Scene
// with a CompositeTarget renders its items into an off-screen buffer
// and blits that buffer back into dst rather than writing its items
// directly into dst.
func TestRenderSceneAccumulatesIntoCompositeTarget(t *testing.T) {
	e := Init(WithThreads(0), WithAntiAlias(false))
	defer Term(e)
	dst := newTestSurface(t, 8, 8)

	shape := &Shape{
		Path:    rectPath(0, 0, 4, 4),
		Fill:    &FillSpec{Source: compositor.Solid{R: 255, A: 255}},
		Opacity: 255,
	}
	shape.Transform.Update()
	data := e.Prepare(shape, nil, nil, 8, 8, FlagPath)
	require.NoError(t, e.PreRender())

	scene := &Scene{
		Items:     []Paint{shape},
		Composite: &CompositeTarget{Bounds: image.Rect(0, 0, 8, 8), Method: compositor.None, Opacity: 255},
	}
	require.NoError(t, e.RenderScene(dst, scene, []*RenderData{data}))
	require.NoError(t, e.PostRender())

	assert.Equal(t, uint32(0xFFFF0000), dst.At(1, 1))
	assert.Equal(t, uint32(0), dst.At(5, 5))
}

// TestNewSurfaceHonorsConfiguredColorSpace checks that WithColorSpace
// reaches every surface an Engine constructs.
func TestNewSurfaceHonorsConfiguredColorSpace(t *testing.T) {
	e := Init(WithColorSpace(surface.ABGR8888))
	defer Term(e)
	s, err := e.NewSurface(make([]uint32, 4), 2, 2, 2)
	require.NoError(t, err)
	s.Set(0, 0, surface.ABGR8888.Pack(10, 20, 30, 255))
	r, g, b, _ := s.ColorSpace.Channels(s.At(0, 0))
	assert.Equal(t, uint8(10), r)
	assert.Equal(t, uint8(20), g)
	assert.Equal(t, uint8(30), b)
}

// TestClearDropsPendingWorkAndResetsSurface exercises the clear
// lifecycle call: it joins any outstanding prepare task and resets
// the destination surface to fully transparent.
func TestClearDropsPendingWorkAndResetsSurface(t *testing.T) {
	e := Init(WithThreads(2), WithAntiAlias(false))
	defer Term(e)
	dst := newTestSurface(t, 4, 4)
	dst.Set(0, 0, 0xFFFFFFFF)

	shape := &Shape{
		Path: rectPath(0, 0, 4, 4),
		Fill: &FillSpec{Source: compositor.Solid{R: 255, A: 255}},
	}
	shape.Transform.Update()
	e.Prepare(shape, nil, nil, 4, 4, FlagPath)

	require.NoError(t, e.Clear(dst))
	assert.Equal(t, uint32(0), dst.At(0, 0))
}
