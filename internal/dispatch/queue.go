// Package dispatch provides a bounded worker pool for asynchronous delivery.
package dispatch

import "sync"

// Queue fans values out to a fixed pool of workers through a bounded
// buffer. When the buffer is full, Enqueue drops instead of blocking,
// so producers on the request path never stall.
type Queue[T any] struct {
	handler func(T)
	buf     chan T
	workers int
	wg      sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool
}

// New creates a queue delivering values to handler.
// - workers: number of concurrent workers draining the buffer
// - size: maximum number of values held while workers are busy
func New[T any](handler func(T), workers, size int) *Queue[T] {
	if workers <= 0 {
		workers = 4
	}
	if size <= 0 {
		size = 100
	}

	return &Queue[T]{
		handler: handler,
		buf:     make(chan T, size),
		workers: workers,
	}
}

// Start launches the worker pool. Safe to call multiple times.
func (q *Queue[T]) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.stopped {
		return
	}
	q.started = true

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
}

// worker drains values until the buffer is closed.
func (q *Queue[T]) worker() {
	defer q.wg.Done()

	for v := range q.buf {
		if q.handler != nil {
			q.handler(v)
		}
	}
}

// Enqueue hands a value to the pool without blocking.
// Returns true if the value was buffered, false if it was dropped
// because the buffer is full or the queue is stopped.
func (q *Queue[T]) Enqueue(v T) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		return false
	}

	select {
	case q.buf <- v:
		return true
	default:
		return false
	}
}

// Stop closes the buffer and waits for workers to finish the backlog.
// Safe to call multiple times; Enqueue after Stop reports a drop.
func (q *Queue[T]) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	q.mu.Unlock()

	close(q.buf)
	q.wg.Wait()
}

// Len returns the number of values currently buffered.
func (q *Queue[T]) Len() int {
	return len(q.buf)
}
