// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"testing"

	"github.com/kesho-gfx/vgr/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireGrowsLazily(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.Len())

	s0 := p.Acquire(0)
	require.NotNil(t, s0)
	assert.Equal(t, 1, p.Len())

	s3 := p.Acquire(3)
	require.NotNil(t, s3)
	assert.Equal(t, 4, p.Len())
	assert.NotSame(t, s0, s3)
}

func TestAcquireReturnsSameScratchPerIndex(t *testing.T) {
	p := New()
	s0a := p.Acquire(0)
	s0a.Fill.MoveTo(geom.PtF(1, 1))
	s0b := p.Acquire(0)
	assert.Same(t, s0a, s0b)
	// Reset on reacquire clears the buffer but keeps the instance.
	assert.True(t, s0b.Fill.Empty())
}

func TestScratchResetPreservesBackingCapacity(t *testing.T) {
	s := newScratch()
	s.Fill.MoveTo(geom.PtF(0, 0))
	for i := 1; i <= 50; i++ {
		s.Fill.LineTo(geom.PtF(float32(i), 0))
	}
	s.Fill.Finish()
	cap1 := cap(s.Fill.Points)
	s.Reset()
	assert.True(t, s.Fill.Empty())
	assert.Equal(t, cap1, cap(s.Fill.Points)) // no reallocation on Clear
}
