// Copyright (c) 2026 The Vgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheduler implements the bounded worker pool that runs
// per-shape prepare work (flatten/stroke/rasterize) concurrently with
// the single-threaded render walk: a FIFO task queue, one-shot
// completion signal per task, and a synchronous fallback when the
// configured thread count is 0 or 1.
package scheduler

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of prepare work: a pure computation over its own
// inputs, run() has no side effects visible outside its own output
// slot (the caller closes over that slot). run receives the index of
// the worker executing it, the only thread-local-ish state workers are
// allowed (spec §9 "Async prepare": "do not use implicit thread-local
// state in workers beyond the per-worker pool slot keyed by worker
// index") — callers use it to key into their own per-worker scratch
// pool (see pool.Pool.Acquire).
type Task struct {
	run func(workerIndex int) error

	done chan struct{}
	err  error
	once sync.Once
}

// NewTask wraps run as a Task ready to submit to a Pool.
func NewTask(run func(workerIndex int) error) *Task {
	return &Task{run: run, done: make(chan struct{})}
}

func (t *Task) execute(workerIndex int) {
	t.once.Do(func() {
		t.err = t.run(workerIndex)
		close(t.done)
	})
}

// Get blocks until t has completed and returns its error. Idempotent:
// calling it again after completion returns the same error
// immediately without re-running the task.
func (t *Task) Get() error {
	<-t.done
	return t.err
}

// Pool is the bounded worker pool. Workers are started at New and run
// until Close; submission order per task is preserved in the queue,
// but queued tasks execute concurrently with no ordering guarantee
// between distinct tasks. Zero value is not usable; use New.
type Pool struct {
	threads int
	queue   chan *Task
	wg      sync.WaitGroup
}

// New starts a Pool with the given thread count. threads<=1 makes
// Request execute the task synchronously and inline on the caller's
// goroutine, matching the "equivalent to synchronous execution when
// thread count = 0 or 1" contract: no workers are started and no
// queue is allocated.
func New(threads int) *Pool {
	if threads < 0 {
		threads = 0
	}
	p := &Pool{threads: threads}
	if threads <= 1 {
		return p
	}
	p.queue = make(chan *Task, threads*4)
	p.wg.Add(threads)
	for i := 0; i < threads; i++ {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(index int) {
	defer p.wg.Done()
	for t := range p.queue {
		t.execute(index)
	}
}

// Synchronous reports whether this Pool runs tasks inline on Request
// rather than dispatching to background workers.
func (p *Pool) Synchronous() bool {
	return p.threads <= 1
}

// Request enqueues t. If the pool is synchronous (thread count 0 or
// 1), t runs to completion before Request returns.
func (p *Pool) Request(t *Task) {
	if p.Synchronous() {
		t.execute(0)
		return
	}
	p.queue <- t
}

// Get blocks until t completes and returns its error, regardless of
// whether the pool dispatched it synchronously or to a worker.
func (p *Pool) Get(t *Task) error {
	return t.Get()
}

// Barrier blocks until every task in tasks has completed, joining
// them concurrently via errgroup rather than one at a time, and
// returns the first non-nil error encountered (if any) — the
// `pre_render` barrier join of the renderer façade.
func Barrier(tasks []*Task) error {
	var g errgroup.Group
	for _, t := range tasks {
		t := t
		g.Go(func() error { return t.Get() })
	}
	return g.Wait()
}

// Close stops accepting new tasks and blocks until all queued tasks
// have drained and every worker goroutine has exited — the barrier-
// synchronous shutdown spec §4.I requires (no cancellation: anything
// already queued still runs to completion).
func (p *Pool) Close() {
	if p.Synchronous() {
		return
	}
	close(p.queue)
	p.wg.Wait()
}
