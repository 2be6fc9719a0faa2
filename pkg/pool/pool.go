package pool

import (
	"runtime"
	"sync/atomic"
)

// parallelizeAlone calculates the result of f count times
func parallelizeAlone(f func(int) interface{}, count int) []interface{} {
	results := make([]interface{}, count)
	for i := 0; i < len(results); i++ {
		results[i] = f(i)
	}
	return results
}

// task asks a worker to evaluate f at index i, storing the output in results[i].
type task struct {
	i       int
	f       func(int) interface{}
	results []interface{}
	// remaining counts the tasks of the same call still running.
	remaining *int64
	done      chan<- struct{}
}

// worker evaluates tasks until the pool is torn down.
func worker(tasks <-chan task) {
	for t := range tasks {
		t.results[t.i] = t.f(t.i)
		if atomic.AddInt64(t.remaining, -1) == 0 {
			close(t.done)
		}
	}
}

// Pool represents a pool of workers, used for parallelizing functions.
//
// Functions needing a *Pool will work with a nil receiver, doing the equivalent
// work on the current goroutine instead.
//
// By creating a pool, you avoid the overhead of spinning up goroutines for
// each new operation.
type Pool struct {
	// The common channel used to send tasks to the workers.
	tasks chan task
	// This holds the number of workers we've created
	workerCount int
}

// NewPool creates a new pool, with a certain number of workers.
//
// If count <= 0, this will use the number of available CPUs instead.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		tasks:       make(chan task),
		workerCount: count,
	}
	for i := 0; i < count; i++ {
		go worker(p.tasks)
	}
	return p
}

// Workers returns the number of workers of the pool, or 1 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workerCount
}

// TearDown cleanly tears down a pool, stopping its workers.
// The pool must not be used afterwards.
func (p *Pool) TearDown() {
	close(p.tasks)
}

// Parallelize calls a function count times, passing in indices from 0..count-1.
//
// The result will be a slice containing [f(0), f(1), ..., f(count - 1)].
// Several goroutines may call Parallelize on the same pool.
func (p *Pool) Parallelize(count int, f func(int) interface{}) []interface{} {
	if p == nil || count <= 1 {
		return parallelizeAlone(f, count)
	}

	results := make([]interface{}, count)
	remaining := int64(count)
	done := make(chan struct{})
	for i := 0; i < count; i++ {
		p.tasks <- task{
			i:         i,
			f:         f,
			results:   results,
			remaining: &remaining,
			done:      done,
		}
	}
	<-done
	return results
}
