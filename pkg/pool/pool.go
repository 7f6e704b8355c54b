// Package pool provides a simple worker pool for fanning out independent
// computations, such as the per-choice-slot work of a tally node.
package pool

import (
	"io"
	"runtime"
	"sync"
	"sync/atomic"
)

// parallelizeAlone calculates the result of f count times on the current goroutine.
func parallelizeAlone(f func(int) interface{}, count int) []interface{} {
	results := make([]interface{}, count)
	for i := 0; i < len(results); i++ {
		results[i] = f(i)
	}
	return results
}

// command tells a latent worker to evaluate f at index i, storing the result.
type command struct {
	i int
	f func(int) interface{}
	// ctr counts the number of results that still need to be produced.
	ctr     *int64
	results []interface{}
}

// worker listens for commands and produces results until the channel closes.
func worker(commands <-chan command, ctrChanged chan<- struct{}) {
	for c := range commands {
		c.results[c.i] = c.f(c.i)
		atomic.AddInt64(c.ctr, -1)
		ctrChanged <- struct{}{}
	}
}

// Pool represents a pool of workers, used for parallelizing functions.
//
// Functions taking a *Pool work with a nil receiver, doing the equivalent
// work on the current goroutine instead.
type Pool struct {
	commands chan command
	// ctrChanged signals that a task has finished.
	ctrChanged  chan struct{}
	workerCount int
}

// NewPool creates a new pool with a certain number of workers.
//
// If count <= 0, the number of available CPUs is used instead.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		commands:    make(chan command),
		ctrChanged:  make(chan struct{}),
		workerCount: count,
	}
	for i := 0; i < count; i++ {
		go worker(p.commands, p.ctrChanged)
	}
	return p
}

// TearDown cleanly tears down a pool, stopping its workers.
func (p *Pool) TearDown() {
	close(p.commands)
}

// Parallelize calls a function count times, passing in indices from 0..count-1.
//
// The result is a slice containing [f(0), f(1), ..., f(count - 1)].
func (p *Pool) Parallelize(count int, f func(int) interface{}) []interface{} {
	if p == nil {
		return parallelizeAlone(f, count)
	}

	results := make([]interface{}, count)
	ctr := int64(count)

	cmdI := 0
	for cmdI < count {
		cmd := command{
			i:       cmdI,
			f:       f,
			ctr:     &ctr,
			results: results,
		}
		// Sending all the commands without blocking isn't possible, so
		// interleave picking off finished workers to free them up to
		// receive the remaining commands.
		select {
		case p.commands <- cmd:
			cmdI++
		case <-p.ctrChanged:
		}
	}
	for atomic.LoadInt64(&ctr) > 0 {
		<-p.ctrChanged
	}

	return results
}

// LockedReader wraps an io.Reader to be safe for concurrent reads.
type LockedReader struct {
	reader io.Reader
	m      sync.Mutex
}

// NewLockedReader creates a LockedReader by wrapping an underlying value.
func NewLockedReader(r io.Reader) *LockedReader {
	return &LockedReader{reader: r}
}

// Read implements io.Reader for LockedReader.
//
// Concurrent calls race for which value ends up being read, but no value is
// ever read twice, and the state of the underlying reader stays consistent.
func (r *LockedReader) Read(p []byte) (int, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.reader.Read(p)
}
