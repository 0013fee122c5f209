// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool holds the per-worker scratch state the rendering
// pipeline reuses across shapes and frames: flatten/stroke outline
// buffers and a rasterizer, one set per scheduler worker index, grown
// monotonically and never shrunk.
package pool

import (
	"github.com/kesho-gfx/vgr/outline"
	"github.com/kesho-gfx/vgr/raster"
)

// Scratch is the working state one scheduler worker reuses across
// every shape it rasterizes. It is not safe for concurrent use; each
// worker index owns exactly one.
type Scratch struct {
	// Fill holds the flattened, placed fill outline for the shape
	// currently in flight: the renderer façade walks the shape's
	// source path once, transforming and flattening cubics in the
	// same pass, directly into this buffer rather than allocating an
	// intermediate outline per frame.
	Fill outline.Outline
	// Stroke holds the stroker's output outline, kept separate from
	// Fill since stroking reads Fill as its source while building an
	// entirely different contour set.
	Stroke outline.Outline
	// Raster is this worker's rasterizer; its internal cell arena
	// persists across calls (see raster.Rasterizer), so reusing the
	// same instance across shapes is what makes the arena reuse
	// effective rather than just not reallocating the Scratch itself.
	Raster *raster.Rasterizer
}

func newScratch(opts ...raster.Option) *Scratch {
	return &Scratch{Raster: raster.New(opts...)}
}

// Reset clears both outline buffers for the next shape without
// releasing their backing arrays (outline.Outline.Clear's contract),
// so repeated use converges to zero allocation once buffers have
// grown to the largest shape seen.
func (s *Scratch) Reset() {
	s.Fill.Clear()
	s.Stroke.Clear()
}

// Pool holds one Scratch per worker index, created lazily and grown
// monotonically as the scheduler's worker count grows across the
// Pool's lifetime (a worker count shrinking back down leaves the
// extra Scratch values allocated but idle, spec §4.H).
type Pool struct {
	workers   []*Scratch
	rasterOpt []raster.Option
}

// New returns an empty Pool ready to use. Any raster.Option passed is
// applied to every worker's Rasterizer as it is lazily created, so an
// Engine's band-size/arena-size configuration reaches every worker
// uniformly regardless of acquisition order.
func New(opts ...raster.Option) *Pool {
	return &Pool{rasterOpt: opts}
}

// Acquire returns the Scratch for worker index i, allocating it (and
// any intervening indices) on first use, and resetting it for reuse.
// i must be >= 0.
func (p *Pool) Acquire(i int) *Scratch {
	if i >= len(p.workers) {
		grown := make([]*Scratch, i+1)
		copy(grown, p.workers)
		p.workers = grown
	}
	s := p.workers[i]
	if s == nil {
		s = newScratch(p.rasterOpt...)
		p.workers[i] = s
	}
	s.Reset()
	return s
}

// Len reports how many worker slots have been allocated so far.
func (p *Pool) Len() int {
	return len(p.workers)
}
