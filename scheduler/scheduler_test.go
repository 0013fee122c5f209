// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronousPoolRunsInline(t *testing.T) {
	for _, threads := range []int{0, 1} {
		p := New(threads)
		require.True(t, p.Synchronous())
		ran := false
		task := NewTask(func(int) error { ran = true; return nil })
		p.Request(task)
		assert.True(t, ran, "synchronous pool must run the task before Request returns")
		require.NoError(t, p.Get(task))
		p.Close()
	}
}

func TestConcurrentPoolRunsAllTasks(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 50
	var count atomic.Int32
	tasks := make([]*Task, n)
	for i := 0; i < n; i++ {
		tasks[i] = NewTask(func(int) error {
			count.Add(1)
			return nil
		})
		p.Request(tasks[i])
	}
	for _, task := range tasks {
		require.NoError(t, p.Get(task))
	}
	assert.EqualValues(t, n, count.Load())
}

func TestGetIsIdempotent(t *testing.T) {
	p := New(4)
	defer p.Close()

	var runs atomic.Int32
	task := NewTask(func(int) error { runs.Add(1); return nil })
	p.Request(task)
	require.NoError(t, p.Get(task))
	require.NoError(t, p.Get(task))
	assert.EqualValues(t, 1, runs.Load())
}

func TestBarrierJoinsAllAndSurfacesFirstError(t *testing.T) {
	p := New(4)
	defer p.Close()

	boom := errors.New("boom")
	var tasks []*Task
	for i := 0; i < 5; i++ {
		i := i
		task := NewTask(func(int) error {
			if i == 2 {
				return boom
			}
			return nil
		})
		p.Request(task)
		tasks = append(tasks, task)
	}
	err := Barrier(tasks)
	assert.ErrorIs(t, err, boom)
}

func TestSubmissionOrderDoesNotImplyCompletionOrder(t *testing.T) {
	// Submission order is preserved in the queue, but distinct tasks
	// carry no completion-order guarantee relative to each other; the
	// only contract exercised here is that every submitted task is
	// eventually observed complete via Get.
	p := New(2)
	defer p.Close()

	var a, b *Task
	a = NewTask(func(int) error { return nil })
	b = NewTask(func(int) error { return nil })
	p.Request(a)
	p.Request(b)
	require.NoError(t, p.Get(b))
	require.NoError(t, p.Get(a))
}
