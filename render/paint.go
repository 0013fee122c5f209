// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render is the renderer façade: Paint (a tagged variant of
// Shape, Picture, and Scene), the prepare/pre_render/render_*/
// post_render/sync/clear lifecycle, and per-shape render-data caching.
package render

import (
	"image"

	"github.com/kesho-gfx/vgr/compositor"
	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/outline"
	"github.com/kesho-gfx/vgr/stroke"
)

// UpdateFlags is the bitmask a caller passes to Prepare naming which
// parts of a Shape changed since its last prepared frame. An empty
// set means "reuse the cached render-data in full" (spec's update-flag
// set invariant).
type UpdateFlags uint8

const (
	FlagPath UpdateFlags = 1 << iota
	FlagColor
	FlagGradient
	FlagStroke
	FlagTransform
	FlagImage
	FlagOpacity
)

// Paint is a union of the three paint kinds: Shape, Picture, and
// Scene. Spec §9's re-architecting of the original's
// Shape/Picture/Scene class hierarchy into a tagged variant with
// uniform dispatch. A Scene's Items may hold Shapes and Pictures;
// RenderScene rejects a Scene nested inside another Scene's Items with
// result.ErrNonSupport.
type Paint interface {
	IsPaint()
}

// FillSpec is a Shape's fill: a paint Source plus the composite method
// used when blitting the shape's fill spans (normally None; ClipPath/
// AlphaMask/InvAlphaMask are used when a shape also acts as a clip or
// mask for later siblings).
type FillSpec struct {
	Source compositor.Source
	Method compositor.Method
}

// StrokeSpec is a Shape's optional stroke: its own paint Source and
// the stroke.Style geometry parameters, plus a non-scaling-stroke
// flag. By default the renderer scales Style.Width by the shape's
// transform before stroking; NonScaling holds the width fixed in
// destination pixels instead, regardless of how the shape itself is
// scaled.
type StrokeSpec struct {
	Style      stroke.Style
	Source     compositor.Source
	Method     compositor.Method
	NonScaling bool
}

// Shape is a path-drawing Paint: the source outline (built with
// MoveTo/LineTo/CubicTo/Close against the outline package, un-
// transformed and un-flattened), an optional fill, an optional
// stroke, and this shape's own placement. Opacity has no implicit
// default: the zero value renders nothing, so a caller building a
// Shape literal must set it (255 for fully opaque) rather than relying
// on a zero value meaning "opaque".
type Shape struct {
	Path      outline.Outline
	Fill      *FillSpec
	Stroke    *StrokeSpec
	Transform geom.RenderTransform
	Opacity   uint8
}

// IsPaint implements Paint.
func (*Shape) IsPaint() {}

// Picture is an image-fill Paint: a raster buffer, the portion of it
// to sample (SrcRect), the destination-local rectangle it should fill
// (ViewBox), and whether to preserve the source's aspect ratio when
// the two rectangles' proportions differ. RenderImage reads neither
// SrcRect nor PreserveAspectRatio: it resamples the whole Image
// through Transform and fills ViewBox with the result.
type Picture struct {
	Image               image.Image
	SrcRect             image.Rectangle
	ViewBox             image.Rectangle
	PreserveAspectRatio bool
	Transform           geom.RenderTransform
	Opacity             uint8
}

// IsPaint implements Paint.
func (*Picture) IsPaint() {}

// CompositeTarget describes how a Scene's accumulated sub-rendering
// blends back into its parent once fully rendered (spec's "compositor
// target" lifecycle, §3/§4.G).
type CompositeTarget struct {
	Bounds  image.Rectangle
	Method  compositor.Method
	Opacity uint8
}

// Scene is an ordered list of Paint items with an optional
// CompositeTarget for accumulate-then-blend rendering. RenderScene does
// not apply Transform: each item is placed by its own Transform only.
type Scene struct {
	Items     []Paint
	Transform geom.RenderTransform
	Composite *CompositeTarget
}

// IsPaint implements Paint.
func (*Scene) IsPaint() {}
