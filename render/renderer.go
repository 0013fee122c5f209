// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/kesho-gfx/vgr/clip"
	"github.com/kesho-gfx/vgr/compositor"
	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/outline"
	"github.com/kesho-gfx/vgr/pool"
	"github.com/kesho-gfx/vgr/raster"
	"github.com/kesho-gfx/vgr/result"
	"github.com/kesho-gfx/vgr/scheduler"
	"github.com/kesho-gfx/vgr/stroke"
	"github.com/kesho-gfx/vgr/surface"
)

// frameState tracks where an Engine sits in the pre_render/render_*/
// post_render sequence spec §4.J requires; any call outside the legal
// transitions returns result.ErrInvalidSequence rather than silently
// doing the wrong thing.
type frameState uint8

const (
	stateIdle frameState = iota
	stateRendering
)

// Option configures an Engine at Init.
type Option func(*Engine)

// WithThreads sets the scheduler's worker count. 0 or 1 downgrades
// prepare to synchronous execution on the caller's goroutine.
func WithThreads(n int) Option {
	return func(e *Engine) { e.threads = n }
}

// WithBandSize overrides every worker's rasterizer band height.
func WithBandSize(rows int32) Option {
	return func(e *Engine) { e.rasterOpts = append(e.rasterOpts, raster.WithBandSize(rows)) }
}

// WithArenaSize overrides every worker's rasterizer cell-arena
// capacity.
func WithArenaSize(cells int32) Option {
	return func(e *Engine) { e.rasterOpts = append(e.rasterOpts, raster.WithArenaSize(cells)) }
}

// WithColorSpace sets the channel order Composite assumes when
// packing into a destination Surface. ARGB8888 if unset.
func WithColorSpace(cs surface.ColorSpace) Option {
	return func(e *Engine) { e.colorSpace = cs }
}

// WithAntiAlias toggles coverage anti-aliasing in Generate; true if
// unset.
func WithAntiAlias(aa bool) Option {
	return func(e *Engine) { e.aa = aa }
}

// Engine is the renderer façade: it owns the worker pool that runs
// per-shape prepare work, the per-worker scratch state those workers
// reuse, and the pre_render/render_*/post_render frame-sequence
// invariant. The zero value is not usable; use Init.
type Engine struct {
	threads    int
	rasterOpts []raster.Option
	colorSpace surface.ColorSpace
	aa         bool

	sched      *scheduler.Pool
	work       *pool.Pool
	pending    []*scheduler.Task
	state      frameState
	targetPool [][]uint32
}

// Init allocates an Engine's thread pool and per-worker scratch pool.
// threads=0 downgrades prepare to synchronous (spec §4.I's init
// contract).
func Init(opts ...Option) *Engine {
	e := &Engine{aa: true}
	for _, opt := range opts {
		opt(e)
	}
	e.sched = scheduler.New(e.threads)
	e.work = pool.New(e.rasterOpts...)
	return e
}

// Term shuts down e's worker pool, blocking until every queued
// prepare task has drained (scheduler.Pool.Close's barrier-
// synchronous contract).
func Term(e *Engine) {
	e.sched.Close()
}

// NewSurface wraps buf as a destination surface in e's configured
// color space (WithColorSpace's consumer), so every surface a caller
// renders into through this Engine packs pixels the same way every
// shape's Composite call assumes.
func (e *Engine) NewSurface(buf []uint32, stride, w, h int) (surface.Surface, error) {
	return surface.New(buf, stride, w, h, e.colorSpace)
}

// Prepare schedules the flatten+stroke+rasterize+clip pipeline for
// shape as one task and returns its render-data handle immediately;
// the handle's contents are not valid to read until a later PreRender
// call has joined the task. If prev is non-nil and valid and flags is
// empty, the cached render-data is returned unchanged without
// scheduling any work (spec's "empty flag set means reuse in full").
func (e *Engine) Prepare(shape *Shape, prev *RenderData, clipSpans []raster.RLE, clipW, clipH int32, flags UpdateFlags) *RenderData {
	if prev != nil && flags == 0 && prev.Valid {
		return prev
	}
	data := prev
	if data == nil {
		data = NewRenderData()
	}
	task := scheduler.NewTask(func(workerIndex int) error {
		scratch := e.work.Acquire(workerIndex)
		err := e.prepareShape(scratch, shape, data, clipSpans, clipW, clipH)
		if err != nil {
			slog.Warn("render: skipping shape after prepare failure", "worker", workerIndex, "error", err)
		}
		return nil
	})
	e.sched.Request(task)
	e.pending = append(e.pending, task)
	return data
}

// prepareShape runs the actual per-shape pipeline on behalf of a
// prepare task: flatten (and transform) the fill path, rasterize it,
// optionally stroke-then-rasterize, clip both against clipSpans, and
// fill data in place. A failure here marks data invalid rather than
// propagating, per spec §4.J's "prepare failure is not surfaced
// asynchronously" contract; the caller sees it later only as an empty
// render.
func (e *Engine) prepareShape(scratch *pool.Scratch, shape *Shape, data *RenderData, clipSpans []raster.RLE, clipW, clipH int32) error {
	data.reset()

	m := shape.Transform.Matrix
	placeFlattened(&scratch.Fill, &shape.Path, m)

	if shape.Fill != nil {
		spans, err := e.rasterizeClipped(scratch, &scratch.Fill, clipSpans, clipW, clipH)
		if err != nil {
			return err
		}
		data.FillSpans = spans
	}

	if shape.Stroke != nil {
		style := shape.Stroke.Style
		if !shape.Stroke.NonScaling {
			sx, sy := m.ExtractScale()
			style.Width *= (sx + sy) / 2
		}
		strokeOutline, err := stroke.Stroke(&scratch.Fill, style)
		if err != nil {
			return fmt.Errorf("render: stroke shape: %w", err)
		}
		// Round joins and caps come back as cubics; the rasterizer
		// only walks lines.
		scratch.Stroke = outline.FlattenOutline(&strokeOutline)
		spans, err := e.rasterizeClipped(scratch, &scratch.Stroke, clipSpans, clipW, clipH)
		if err != nil {
			return err
		}
		data.StrokeSpans = spans
	}

	data.Valid = true
	return nil
}

// placeFlattened writes src's points into dst, flattening every cubic
// to lines and mapping every point through m in the same pass, so a
// shape's per-frame placement costs one walk over its source outline
// rather than an allocate-transform pass followed by a separate
// allocate-flatten pass. dst is scratch.Fill, reused across shapes by
// the worker that owns it.
func placeFlattened(dst, src *outline.Outline, m geom.Matrix) {
	dst.Clear()
	dst.Rule = src.Rule
	for ci := 0; ci < src.ContourCount(); ci++ {
		start, end := src.Contour(ci)
		dst.MoveTo(m.MulPoint(geom.FromPoint(src.Points[start])).ToPoint())
		pen := src.Points[start]
		i := start + 1
		for i <= end {
			if src.Types[i] == outline.Cubic {
				c1 := m.MulPoint(geom.FromPoint(src.Points[i])).ToPoint()
				c2 := m.MulPoint(geom.FromPoint(src.Points[i+1])).ToPoint()
				to := m.MulPoint(geom.FromPoint(src.Points[i+2])).ToPoint()
				from := m.MulPoint(geom.FromPoint(pen)).ToPoint()
				outline.FlattenTo(dst, from, c1, c2, to)
				pen = src.Points[i+2]
				i += 3
			} else {
				dst.LineTo(m.MulPoint(geom.FromPoint(src.Points[i])).ToPoint())
				pen = src.Points[i]
				i++
			}
		}
		if src.Closed[ci] {
			dst.Close()
		} else {
			dst.Finish()
		}
	}
}

func (e *Engine) rasterizeClipped(scratch *pool.Scratch, o *outline.Outline, clipSpans []raster.RLE, clipW, clipH int32) ([]raster.RLE, error) {
	spans, err := scratch.Raster.Generate(o, clipW, clipH, e.aa)
	if err != nil {
		return nil, fmt.Errorf("render: rasterize shape: %w", err)
	}
	if len(clipSpans) > 0 {
		spans = clip.ClipPath(clipSpans, spans)
	}
	return spans, nil
}

// PreRender joins every prepare task scheduled since the last
// PreRender or Clear, via a single errgroup barrier, and opens the
// frame for render_* calls. Spec §4.J: "pre_render: barrier that
// awaits all outstanding prepare tasks."
func (e *Engine) PreRender() error {
	err := scheduler.Barrier(e.pending)
	e.pending = e.pending[:0]
	e.state = stateRendering
	return err
}

// RenderShape blits data's fill and stroke spans into dst in painter's-
// algorithm order (fill under stroke), using shape's paint sources and
// composite methods. Must be called on the thread that owns dst, and
// only between PreRender and PostRender.
func (e *Engine) RenderShape(dst surface.Surface, data *RenderData, shape *Shape) error {
	if e.state != stateRendering {
		return fmt.Errorf("%w: render_shape called outside pre_render/post_render", result.ErrInvalidSequence)
	}
	if data == nil || !data.Valid {
		return nil
	}
	if shape.Fill != nil && len(data.FillSpans) > 0 {
		compositor.Composite(dst, data.FillSpans, shape.Fill.Source, shape.Fill.Method, shape.Opacity)
	}
	if shape.Stroke != nil && len(data.StrokeSpans) > 0 {
		compositor.Composite(dst, data.StrokeSpans, shape.Stroke.Source, shape.Stroke.Method, shape.Opacity)
	}
	return nil
}

// RenderImage resamples pic.Image through pic.Transform and blits it
// into dst as full-coverage spans (one per row of its ViewBox), scaled
// by pic.Opacity.
// Must be called on the thread that owns dst, and only between
// PreRender and PostRender.
func (e *Engine) RenderImage(dst surface.Surface, pic *Picture) error {
	if e.state != stateRendering {
		return fmt.Errorf("%w: render_image called outside pre_render/post_render", result.ErrInvalidSequence)
	}
	src := compositor.NewPicture(pic.Image, pic.Transform.Matrix, pic.ViewBox)
	spans := viewBoxSpans(pic.ViewBox)
	compositor.Composite(dst, spans, src, compositor.None, pic.Opacity)
	return nil
}

// viewBoxSpans builds one full-coverage RLE span per row of r, the
// span set RenderImage composites a Picture's pre-resampled buffer
// through.
func viewBoxSpans(r image.Rectangle) []raster.RLE {
	if r.Empty() {
		return nil
	}
	spans := make([]raster.RLE, 0, r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		spans = append(spans, raster.RLE{X: int32(r.Min.X), Y: int32(y), Len: int32(r.Dx()), Cov: 255})
	}
	return spans
}

// RenderScene walks scene's items in submission order, rendering Shape
// items against the matching entry of data (by index; nil or missing
// entries render nothing for that item) and Picture items directly. If
// scene.Composite is set, items accumulate into a pooled off-screen
// surface covering Composite.Bounds instead of dst, and that buffer is
// blitted back into dst through Composite.Method/Opacity once every
// item has been walked — the "pooled compositor-target surface for
// sub-scene accumulation" domain feature. Nested Scene items are not
// supported (result.ErrNonSupport): one level of sub-scene compositing
// covers every case the façade's own callers need, and a recursive
// target stack is not worth the complexity it would add.
func (e *Engine) RenderScene(dst surface.Surface, scene *Scene, data []*RenderData) error {
	if e.state != stateRendering {
		return fmt.Errorf("%w: render_scene called outside pre_render/post_render", result.ErrInvalidSequence)
	}
	target := dst
	var buf []uint32
	if scene.Composite != nil {
		b := scene.Composite.Bounds
		buf = e.acquireTargetBuffer(b.Dx() * b.Dy())
		clear(buf[:b.Dx()*b.Dy()])
		var err error
		target, err = surface.New(buf, b.Dx(), b.Dx(), b.Dy(), dst.ColorSpace)
		if err != nil {
			return err
		}
	}

	for i, item := range scene.Items {
		var rd *RenderData
		if i < len(data) {
			rd = data[i]
		}
		switch v := item.(type) {
		case *Shape:
			if err := e.RenderShape(target, rd, v); err != nil {
				return err
			}
		case *Picture:
			if err := e.RenderImage(target, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: nested scenes are not supported", result.ErrNonSupport)
		}
	}

	if scene.Composite != nil {
		spans := viewBoxSpans(scene.Composite.Bounds)
		src := &surfaceSource{surf: target, origin: scene.Composite.Bounds.Min}
		compositor.Composite(dst, spans, src, scene.Composite.Method, scene.Composite.Opacity)
		e.releaseTargetBuffer(buf)
	}
	return nil
}

// surfaceSource adapts a rendered-into Surface as a compositor.Source,
// translating destination-space coordinates back to the surface's own
// local origin — how RenderScene blits its off-screen accumulation
// buffer back into the caller's destination.
type surfaceSource struct {
	surf   surface.Surface
	origin image.Point
}

func (s *surfaceSource) ColorAt(x, y float32) compositor.Color {
	lx, ly := int(x)-s.origin.X, int(y)-s.origin.Y
	if lx < 0 || lx >= s.surf.W || ly < 0 || ly >= s.surf.H {
		return compositor.Color{}
	}
	r, g, b, a := s.surf.ColorSpace.Channels(s.surf.At(lx, ly))
	return compositor.Color{R: r, G: g, B: b, A: a}
}

// acquireTargetBuffer returns a length-n buffer from the free list if
// one with enough capacity is idle, allocating a new one
// otherwise. The render walk is single-threaded, so a simple slice
// free list (no locking) is sufficient.
func (e *Engine) acquireTargetBuffer(n int) []uint32 {
	for i, b := range e.targetPool {
		if cap(b) >= n {
			e.targetPool = append(e.targetPool[:i], e.targetPool[i+1:]...)
			return b[:n]
		}
	}
	return make([]uint32, n)
}

func (e *Engine) releaseTargetBuffer(buf []uint32) {
	e.targetPool = append(e.targetPool, buf)
}

// PostRender flushes the compositor stack, closing the frame opened by
// PreRender. Spec §4.J: "post_render: flush compositor stack."
func (e *Engine) PostRender() error {
	if e.state != stateRendering {
		return fmt.Errorf("%w: post_render called without a matching pre_render", result.ErrInvalidSequence)
	}
	e.state = stateIdle
	return nil
}

// Sync is equivalent to PostRender followed by a no-op, per spec
// §4.J's literal definition; it exists as its own entry point so
// callers that never issued any render_* calls this frame still have
// a legal way to close it out.
func (e *Engine) Sync() error {
	return e.PostRender()
}

// Clear drops every outstanding prepare task (after joining them, so
// no worker is left writing into freed render-data) and resets dst to
// fully transparent. Spec §4.J: "clear: drop all render-data and
// reset surface to transparent."
func (e *Engine) Clear(dst surface.Surface) error {
	err := scheduler.Barrier(e.pending)
	e.pending = e.pending[:0]
	dst.Clear()
	return err
}
