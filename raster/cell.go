// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import "github.com/kesho-gfx/vgr/result"

// cell is one entry of a per-scanline cell list: the accumulated
// signed edge-crossing cover and area for one pixel column. x of -1 is
// the off-screen-left sentinel column (spec §4.E's "all cells left of
// the clipping region go to min_ex - 1"): it still carries cover into
// the sweep's running total but never emits a span of its own.
type cell struct {
	x     int32
	cover int64
	area  int64
	next  int32 // index into arena, or noCell
}

const noCell = -1

// arena is the flat, index-linked cell pool for one band: the
// Go-idiomatic replacement for the source's pointer-linked per-row
// lists, sized to a fixed memory budget (spec §4.E step 1's 16KB
// scratch buffer) so cell-pool overflow is an explicit, recoverable
// condition rather than an unbounded allocation.
type arena struct {
	cells    []cell
	yHeads   []int32 // head index per local scanline row, or noCell
	used     int
	capacity int32
}

// approximate per-cell footprint (x int32 + cover/area int64 + next
// int32, rounded up) used to size the arena to the 16KB budget spec
// §4.E step 1 names.
const cellFootprintBytes = 24
const arenaBudgetBytes = 16 * 1024

// defaultArenaCapacity is the cell-pool size a Rasterizer uses unless
// overridden by WithArenaSize.
const defaultArenaCapacity = arenaBudgetBytes / cellFootprintBytes

func newArena(rows, capacity int32) *arena {
	a := &arena{
		cells:    make([]cell, 0, capacity),
		yHeads:   make([]int32, rows),
		capacity: capacity,
	}
	a.reset(rows)
	return a
}

// reset clears the arena for reuse across bands without reallocating
// its backing slices (mirrors outline.Outline.Clear's pool-friendly
// contract).
func (a *arena) reset(rows int32) {
	a.cells = a.cells[:0]
	if int32(len(a.yHeads)) != rows {
		a.yHeads = make([]int32, rows)
	}
	for i := range a.yHeads {
		a.yHeads[i] = noCell
	}
	a.used = 0
}

// getOrCreate finds or inserts, in sorted-x order, the cell at
// (row, x) within this band. x must already be clamped to
// [-1, clipW-1] by the caller; x >= clipW cells are never recorded
// (spec's invalid-cell sentinel) since nothing downstream will ever
// sweep that far right.
func (a *arena) getOrCreate(row, x int32) (*cell, error) {
	headIdx := &a.yHeads[row]
	prevIdx := int32(noCell)
	cur := *headIdx
	for cur != noCell {
		c := &a.cells[cur]
		if c.x == x {
			return c, nil
		}
		if c.x > x {
			break
		}
		prevIdx = cur
		cur = c.next
	}
	if int32(len(a.cells)) >= a.capacity {
		return nil, result.ErrArenaExhausted
	}
	a.cells = append(a.cells, cell{x: x, next: cur})
	newIdx := int32(len(a.cells) - 1)
	if prevIdx == noCell {
		*headIdx = newIdx
	} else {
		a.cells[prevIdx].next = newIdx
	}
	a.used++
	return &a.cells[newIdx], nil
}

// rowCells returns the cells of local row i in sorted-x order.
func (a *arena) rowCells(row int32) []*cell {
	var out []*cell
	idx := a.yHeads[row]
	for idx != noCell {
		out = append(out, &a.cells[idx])
		idx = a.cells[idx].next
	}
	return out
}
