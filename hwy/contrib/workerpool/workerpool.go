// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs row bands of a matrix product, or independent
// benchmark trials, on a fixed set of goroutines that outlive any one call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(rows, func(start, end int) {
//	    computeRows(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. A Pool is safe for concurrent use;
// calls from different goroutines share the same workers, and Close may run
// while other calls are in flight. fn must not call back into the same pool.
type Pool struct {
	size  int
	queue chan func()

	// mu is held for reading while a call queues work, so Close cannot
	// close the queue under a pending send.
	mu     sync.RWMutex
	closed bool
}

// New starts a pool of size goroutines. If size <= 0, GOMAXPROCS is used.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{size: size, queue: make(chan func(), 2*size)}
	for range size {
		go func() {
			for run := range p.queue {
				run()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.size
}

// Close stops the workers once queued work has drained. It is safe to call
// more than once. Calls made after Close run on the caller's goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
}

// spread runs job(0) ... job(jobs-1) on the workers and waits for them.
// It returns false without running anything if the pool is closed.
func (p *Pool) spread(jobs int, job func(j int)) bool {
	var wg sync.WaitGroup
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	wg.Add(jobs)
	for j := range jobs {
		p.queue <- func() {
			defer wg.Done()
			job(j)
		}
	}
	p.mu.RUnlock()
	wg.Wait()
	return true
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous bands and calls
// fn(start, end) once per band. It returns when every band is done.
//
// Bands never overlap, so fn may write to rows [start, end) of a shared
// output without locking.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	band := (n + p.size - 1) / p.size
	bands := (n + band - 1) / band
	if bands > 1 && p.spread(bands, func(j int) {
		start := j * band
		fn(start, min(start+band, n))
	}) {
		return
	}
	fn(0, n)
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing indices out
// one at a time so that uneven items balance across workers.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	var next atomic.Int64
	drain := func(int) {
		for i := int(next.Add(1)) - 1; i < n; i = int(next.Add(1)) - 1 {
			fn(i)
		}
	}
	if workers := min(p.size, n); workers > 1 && p.spread(workers, drain) {
		return
	}
	drain(0)
}
