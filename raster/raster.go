// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"log/slog"

	"github.com/kesho-gfx/vgr/geom"
	"github.com/kesho-gfx/vgr/outline"
	"github.com/kesho-gfx/vgr/result"
)

// defaultBandSize is the initial band height in scanlines, spec §4.E
// step 1.
const defaultBandSize = 40

// minBandSize is the floor adaptive halving will not cross; halving
// below this buys nothing since the arena budget already holds far
// more than one row's worth of cells for ordinary outlines.
const minBandSize = 4

// overflowsBeforeHalving is the number of cell-pool overflows that
// must accumulate (across the rasterizer's lifetime, not per call)
// before the band size is halved for subsequent frames, spec §4.E
// step 5.
const overflowsBeforeHalving = 8

// Stats reports the adaptive tuning state, exposed for diagnostics and
// for the band-invariance test (property 10).
type Stats struct {
	BandSize  int32
	Overflows int
}

// Option configures a Rasterizer at construction.
type Option func(*Rasterizer)

// WithBandSize overrides the initial band height. Used by tests that
// exercise property 10 (band invariance) across band sizes in
// [8, 128]; production callers should leave this at the default and
// let adaptive tuning manage it.
func WithBandSize(rows int32) Option {
	return func(r *Rasterizer) { r.bandSize = rows }
}

// WithArenaSize overrides the cell-pool's capacity, in cells, letting
// a caller trade memory for fewer band bisections on dense scenes. The
// 16KB-equivalent default (spec §4.E step 1) applies if unset.
func WithArenaSize(cells int32) Option {
	return func(r *Rasterizer) { r.arenaCapacity = cells }
}

// Rasterizer converts flattened outlines into RLE coverage spans. It
// is not safe for concurrent use by multiple goroutines: each
// scheduler worker owns its own Rasterizer (see pool.Scratch).
type Rasterizer struct {
	bandSize      int32
	overflowsSeen int
	arenaCapacity int32
	arena         *arena // reused across bands and calls, spec's "memory-pool free-list reuse"
}

// New returns a Rasterizer ready to use.
func New(opts ...Option) *Rasterizer {
	r := &Rasterizer{bandSize: defaultBandSize, arenaCapacity: defaultArenaCapacity}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stats returns the rasterizer's current adaptive-tuning state.
func (r *Rasterizer) Stats() Stats {
	return Stats{BandSize: r.bandSize, Overflows: r.overflowsSeen}
}

// getArena returns this Rasterizer's cell arena, resized in place for
// rows local scanlines rather than reallocated, mirroring the
// original engine's mempool free-list reuse across frames (spec's
// supplemented-features list).
func (r *Rasterizer) getArena(rows int32) *arena {
	if r.arena == nil {
		r.arena = newArena(rows, r.arenaCapacity)
		return r.arena
	}
	r.arena.reset(rows)
	return r.arena
}

// Generate rasterizes o into anti-aliased coverage spans clipped to
// [0,clipW)x[0,clipH). aa=false promotes any positive coverage to 255
// (spec §4.E step 7's last bullet).
func (r *Rasterizer) Generate(o *outline.Outline, clipW, clipH int32, aa bool) ([]RLE, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", result.ErrInvalidOutline, err)
	}
	if o.Empty() || clipW <= 0 || clipH <= 0 {
		return nil, nil
	}
	minX, minY, maxX, maxY, ok := o.Bounds()
	if !ok {
		return nil, nil
	}
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > clipW {
		maxX = clipW
	}
	if maxY > clipH {
		maxY = clipH
	}
	if minX >= maxX || minY >= maxY {
		return nil, nil
	}

	var spans []RLE
	top := minY
	for top < maxY {
		bottom := top + r.bandSize
		if bottom > maxY {
			bottom = maxY
		}
		bandSpans, err := r.generateBand(o, top, bottom, clipW, aa)
		if err != nil {
			return nil, err
		}
		spans = append(spans, bandSpans...)
		top = bottom
	}
	return spans, nil
}

// generateBand rasterizes the rows [top,bottom) of o, bisecting on
// arena overflow per spec §4.E step 5: the upper half is retried
// first, then the lower half, each independently subject to further
// bisection. A single-row band that still overflows is a fatal
// allocation failure (spec's "Arena exhausted after single-scanline
// bisection" failure mode).
func (r *Rasterizer) generateBand(o *outline.Outline, top, bottom, clipW int32, aa bool) ([]RLE, error) {
	a := r.getArena(bottom - top)
	err := r.scanOutline(o, a, top, bottom, clipW)
	if err == nil {
		return sweepBand(a, o.Rule, top, bottom-top, clipW, aa), nil
	}
	if err != result.ErrArenaExhausted {
		return nil, err
	}

	r.overflowsSeen++
	slog.Debug("raster: arena exhausted, bisecting band", "top", top, "bottom", bottom, "overflows", r.overflowsSeen)
	if r.overflowsSeen >= overflowsBeforeHalving && r.bandSize > minBandSize {
		r.bandSize /= 2
		slog.Info("raster: halving band size after repeated overflow", "newBandSize", r.bandSize, "overflows", r.overflowsSeen)
	}
	if bottom-top <= 1 {
		slog.Warn("raster: arena exhausted at single scanline", "row", top)
		return nil, fmt.Errorf("%w: %v", result.ErrFailedAllocation, err)
	}
	mid := top + (bottom-top)/2
	upper, err := r.generateBand(o, top, mid, clipW, aa)
	if err != nil {
		return nil, err
	}
	lower, err := r.generateBand(o, mid, bottom, clipW, aa)
	if err != nil {
		return nil, err
	}
	return append(upper, lower...), nil
}

// scanOutline decomposes every contour of o into line segments (the
// caller is expected to have already flattened cubics away — raster
// only walks lines) and feeds them to the edge scanner. Open
// contours get an implicit closing edge back to their start point, as
// the rasterizer must see a closed region to accumulate cover
// correctly (spec §3's "Cell grid" note; the stroker, not raster, is
// what distinguishes open from closed for capping purposes).
func (r *Rasterizer) scanOutline(o *outline.Outline, a *arena, bandTop, bandBottom, clipW int32) error {
	for ci := 0; ci < o.ContourCount(); ci++ {
		start, end := o.Contour(ci)
		pen := o.Points[start]
		first := pen
		i := start + 1
		for i <= end {
			var to geom.Point
			if o.Types[i] == outline.Cubic {
				// Callers route cubics through outline.FlattenOutline
				// before reaching the rasterizer; treat any surviving
				// control point pair as a straight line to its
				// endpoint rather than silently dropping geometry.
				to = o.Points[i+2]
				i += 3
			} else {
				to = o.Points[i]
				i++
			}
			if err := lineTo(a, bandTop, bandBottom, clipW, pen, to); err != nil {
				return err
			}
			pen = to
		}
		if pen != first {
			if err := lineTo(a, bandTop, bandBottom, clipW, pen, first); err != nil {
				return err
			}
		}
	}
	return nil
}

// lineTo drives the edge scanner for one line segment, clipping it to
// the band's row range first (spec §4.E step 3's "if both above or
// below the band, skip"). Rows partition disjointly across bands, so
// a segment clipped to this band's rows is the entirety of what this
// band needs to see of it.
func lineTo(a *arena, bandTop, bandBottom, clipW int32, from, to geom.Point) error {
	if from.Y == to.Y {
		return nil
	}
	bandTopFixed := geom.Fixed(bandTop) * geom.OnePixel
	bandBottomFixed := geom.Fixed(bandBottom) * geom.OnePixel

	x0, y0, x1, y1 := from.X, from.Y, to.X, to.Y
	up := y0 > y1
	if up {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 <= bandTopFixed || y0 >= bandBottomFixed {
		return nil
	}
	if y0 < bandTopFixed {
		x0 = lerpAtY(x0, y0, x1, y1, bandTopFixed)
		y0 = bandTopFixed
	}
	if y1 > bandBottomFixed {
		x1 = lerpAtY(x0, y0, x1, y1, bandBottomFixed)
		y1 = bandBottomFixed
	}
	if y0 == y1 {
		return nil
	}
	if up {
		// Restore the original direction: the sign of each cell's
		// Δcover is the edge's winding contribution.
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	return stepRows(a, bandTop, clipW, x0, y0, x1, y1)
}

// lerpAtY returns the x coordinate of the line (x0,y0)-(x1,y1) at the
// given y, assuming y0 != y1.
func lerpAtY(x0, y0, x1, y1, y geom.Fixed) geom.Fixed {
	num := int64(y-y0) * int64(x1-x0)
	den := int64(y1 - y0)
	return x0 + geom.Fixed(num/den)
}

// lerpAtX returns the y coordinate of the line (x0,y0)-(x1,y1) at the
// given x, assuming x0 != x1.
func lerpAtX(x0, y0, x1, y1, x geom.Fixed) geom.Fixed {
	num := int64(x-x0) * int64(y1-y0)
	den := int64(x1 - x0)
	return y0 + geom.Fixed(num/den)
}

// stepRows walks a line segment already clipped to [bandTop,bandTop+
// len(a.yHeads)) one scanline row at a time, handing each row's
// sub-segment to stepCols.
func stepRows(a *arena, bandTop, clipW int32, x0, y0, x1, y1 geom.Fixed) error {
	dirDown := y1 > y0
	row := y0.Trunc()
	if !dirDown && y0.Subpixels() == 0 {
		row--
	}

	curX, curY := x0, y0
	for {
		var rowBoundary geom.Fixed
		if dirDown {
			rowBoundary = geom.Fixed(row+1) * geom.OnePixel
		} else {
			rowBoundary = geom.Fixed(row) * geom.OnePixel
		}
		atEnd := false
		if dirDown && rowBoundary >= y1 {
			rowBoundary = y1
			atEnd = true
		} else if !dirDown && rowBoundary <= y1 {
			rowBoundary = y1
			atEnd = true
		}
		boundX := curX
		if rowBoundary != curY {
			boundX = lerpAtY(x0, y0, x1, y1, rowBoundary)
		}
		if err := stepCols(a, row-bandTop, clipW, curX, curY, boundX, rowBoundary); err != nil {
			return err
		}
		curX, curY = boundX, rowBoundary
		if atEnd {
			return nil
		}
		if dirDown {
			row++
		} else {
			row--
		}
	}
}

// stepCols accumulates one row's worth of a line segment cell by
// cell, per spec §4.E step 3: cover += Δy, area += Δy·(f1.x+f2.x)
// where f1, f2 are coordinates local to the cell's left edge. x
// positions are clamped to the arena's [-1, clipW) sentinel range on
// insertion (spec's off-screen cell handling).
func stepCols(a *arena, row, clipW int32, x0, y0, x1, y1 geom.Fixed) error {
	if x0 == x1 {
		return accumulate(a, row, clipW, x0.Trunc(), y1-y0, x0, x1)
	}
	dirRight := x1 > x0
	col := x0.Trunc()
	if !dirRight && x0.Subpixels() == 0 {
		col--
	}

	curX, curY := x0, y0
	for {
		var colBoundary geom.Fixed
		if dirRight {
			colBoundary = geom.Fixed(col+1) * geom.OnePixel
		} else {
			colBoundary = geom.Fixed(col) * geom.OnePixel
		}
		atEnd := false
		if dirRight && colBoundary >= x1 {
			colBoundary = x1
			atEnd = true
		} else if !dirRight && colBoundary <= x1 {
			colBoundary = x1
			atEnd = true
		}
		boundY := curY
		if colBoundary != curX {
			boundY = lerpAtX(x0, y0, x1, y1, colBoundary)
		}
		if err := accumulate(a, row, clipW, col, boundY-curY, curX, colBoundary); err != nil {
			return err
		}
		curX, curY = colBoundary, boundY
		if atEnd {
			return nil
		}
		if dirRight {
			col++
		} else {
			col--
		}
	}
}

// accumulate records one cell's Δcover/Δarea contribution. Cells
// beyond the right clip edge are discarded (nothing downstream will
// ever sweep that far); cells left of column 0 collapse onto the -1
// sentinel column so their cover still feeds the sweep's running
// total without ever emitting a span of their own.
func accumulate(a *arena, row, clipW, col int32, dy, xLocal0, xLocal1 geom.Fixed) error {
	if col >= clipW {
		return nil
	}
	if col < -1 {
		col = -1
	}
	c, err := a.getOrCreate(row, col)
	if err != nil {
		return err
	}
	cellOriginX := geom.Fixed(col) * geom.OnePixel
	f1 := xLocal0 - cellOriginX
	f2 := xLocal1 - cellOriginX
	c.cover += int64(dy)
	c.area += int64(dy) * int64(f1+f2)
	return nil
}

// sweepBand emits coverage spans for every row of a band, spec §4.E
// step 6-8.
func sweepBand(a *arena, rule outline.FillRule, bandTop, rows, clipW int32, aa bool) []RLE {
	var out []RLE
	for row := int32(0); row < rows; row++ {
		cells := a.rowCells(row)
		if len(cells) == 0 {
			continue
		}
		y := bandTop + row
		x := int32(0)
		var cover int64
		for _, c := range cells {
			if c.x > x {
				if cover != 0 {
					cov := shapeCoverage(cover*2*int64(geom.OnePixel), rule, aa)
					if cov > 0 {
						out = appendCoalesced(out, RLE{X: x, Y: y, Len: c.x - x, Cov: cov})
					}
				}
				x = c.x
			}
			cover += c.cover
			if c.x >= 0 {
				cellArea := cover*2*int64(geom.OnePixel) - c.area
				cov := shapeCoverage(cellArea, rule, aa)
				if cov > 0 {
					out = appendCoalesced(out, RLE{X: c.x, Y: y, Len: 1, Cov: cov})
				}
				x = c.x + 1
			}
		}
		if cover != 0 && x < clipW {
			cov := shapeCoverage(cover*2*int64(geom.OnePixel), rule, aa)
			if cov > 0 {
				out = appendCoalesced(out, RLE{X: x, Y: y, Len: clipW - x, Cov: cov})
			}
		}
	}
	return out
}

// shapeCoverage maps a raw signed accumulated area to a coverage byte
// in [0,255], spec §4.E step 7.
func shapeCoverage(area int64, rule outline.FillRule, aa bool) uint8 {
	const shift = 2*geom.PixelBits + 1 - 8
	c := area >> shift
	var cov int64
	switch rule {
	case outline.EvenOdd:
		c &= 511
		if c > 256 {
			c = 512 - c
		}
		if c == 256 {
			c = 255
		}
		cov = c
	default: // NonZero
		if c < 0 {
			c = -c
		}
		if c > 255 {
			c = 255
		}
		cov = c
	}
	if !aa && cov > 0 {
		cov = 255
	}
	if cov < 0 {
		cov = 0
	}
	return uint8(cov)
}
