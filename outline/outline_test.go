// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outline

import (
	"testing"

	"github.com/kesho-gfx/vgr/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() Outline {
	var o Outline
	o.MoveTo(geom.PtF(0, 0))
	o.LineTo(geom.PtF(8, 0))
	o.LineTo(geom.PtF(8, 8))
	o.LineTo(geom.PtF(0, 8))
	o.Close()
	return o
}

func TestOutlineBuildAndValidate(t *testing.T) {
	o := square()
	require.NoError(t, o.Validate())
	require.Equal(t, 1, o.ContourCount())
	start, end := o.Contour(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
	assert.True(t, o.Closed[0])
}

func TestOutlineCloseNoOpWithoutMoveTo(t *testing.T) {
	var o Outline
	o.Close() // must not panic
	assert.True(t, o.Empty())
}

func TestOutlineClosePreservesAlreadyClosedPoint(t *testing.T) {
	var o Outline
	o.MoveTo(geom.PtF(0, 0))
	o.LineTo(geom.PtF(1, 0))
	o.LineTo(geom.PtF(0, 0)) // already back at start
	o.Close()
	require.NoError(t, o.Validate())
	assert.Len(t, o.Points, 3) // no duplicate appended
}

func TestOutlineValidateRejectsCubicFirst(t *testing.T) {
	var o Outline
	o.Points = []geom.Point{geom.PtF(0, 0)}
	o.Types = []PointType{Cubic}
	o.ContourEnds = []int32{0}
	o.Closed = []bool{true}
	require.Error(t, o.Validate())
}

func TestOutlineBounds(t *testing.T) {
	o := square()
	minX, minY, maxX, maxY, ok := o.Bounds()
	require.True(t, ok)
	assert.Equal(t, int32(0), minX)
	assert.Equal(t, int32(0), minY)
	assert.Equal(t, int32(8), maxX)
	assert.Equal(t, int32(8), maxY)
}

func TestOutlineReversedFlipsWinding(t *testing.T) {
	o := square()
	r := o.Reversed()
	require.NoError(t, r.Validate())
	// same set of endpoints, opposite order after the shared first point
	_, oEnd := o.Contour(0)
	_, rEnd := r.Contour(0)
	assert.Equal(t, o.Points[0], r.Points[0])
	assert.Equal(t, o.Points[oEnd], r.Points[rEnd])
}

func TestOutlineTransformedTranslatesEveryPoint(t *testing.T) {
	o := square()
	r := o.Transformed(geom.Translate(2, 3))
	require.Equal(t, o.ContourEnds, r.ContourEnds)
	require.Equal(t, o.Closed, r.Closed)
	for i, p := range o.Points {
		assert.Equal(t, p.X+geom.PtF(2, 3).X, r.Points[i].X)
		assert.Equal(t, p.Y+geom.PtF(2, 3).Y, r.Points[i].Y)
	}
}

func TestOutlineFinishClosesOpenContour(t *testing.T) {
	var o Outline
	o.MoveTo(geom.PtF(0, 0))
	o.LineTo(geom.PtF(1, 1))
	o.Finish()
	require.Equal(t, 1, o.ContourCount())
	assert.False(t, o.Closed[0])
}
