package dispatch

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestQueue_Basic(t *testing.T) {
	var count atomic.Int32
	var wg sync.WaitGroup

	handler := func(e int) {
		count.Add(1)
		wg.Done()
	}

	q := New(handler, 2, 10)
	q.Start()
	defer q.Stop()

	wg.Add(5)
	for i := 0; i < 5; i++ {
		if !q.Enqueue(i) {
			t.Error("Enqueue should succeed")
		}
	}

	wg.Wait()

	if count.Load() != 5 {
		t.Errorf("Expected 5 values processed, got %d", count.Load())
	}
}

func TestQueue_Full(t *testing.T) {
	// Handler that blocks
	blocker := make(chan struct{})
	handler := func(e int) {
		<-blocker
	}

	q := New(handler, 1, 2) // 1 worker, buffer of 2
	q.Start()
	defer func() {
		close(blocker)
		q.Stop()
	}()

	// First value blocks the worker
	q.Enqueue(1)
	time.Sleep(10 * time.Millisecond)

	// Fill the buffer
	q.Enqueue(2)
	q.Enqueue(3)

	// This should be dropped (buffer full)
	if q.Enqueue(4) {
		t.Error("Enqueue should report a drop when the buffer is full")
	}
}

func TestQueue_StopDrainsBacklog(t *testing.T) {
	var count atomic.Int32
	handler := func(e int) {
		count.Add(1)
	}

	q := New(handler, 2, 10)
	q.Start()

	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}

	// Stop waits for buffered values to be processed
	q.Stop()

	if count.Load() != 5 {
		t.Errorf("Expected 5 values processed after stop, got %d", count.Load())
	}
}

func TestQueue_EnqueueAfterStop(t *testing.T) {
	q := New(func(int) {}, 1, 10)
	q.Start()
	q.Stop()

	// Must not panic, must report a drop
	if q.Enqueue(1) {
		t.Error("Enqueue after Stop should report a drop")
	}
}

func TestQueue_StopTwice(t *testing.T) {
	q := New(func(int) {}, 1, 10)
	q.Start()

	// Should not panic
	q.Stop()
	q.Stop()
}

func TestQueue_NilHandler(t *testing.T) {
	q := New[int](nil, 2, 10)
	q.Start()
	defer q.Stop()

	// Should not panic with nil handler
	q.Enqueue(1)
	time.Sleep(10 * time.Millisecond)
}

func TestQueue_MultipleStart(t *testing.T) {
	var count atomic.Int32
	handler := func(e int) {
		count.Add(1)
	}

	q := New(handler, 2, 10)
	q.Start()
	q.Start() // Should be safe to call multiple times
	q.Start()
	defer q.Stop()

	q.Enqueue(1)
	time.Sleep(10 * time.Millisecond)

	if count.Load() != 1 {
		t.Errorf("Expected 1 value, got %d", count.Load())
	}
}

func TestQueue_Len(t *testing.T) {
	blocker := make(chan struct{})
	handler := func(e int) {
		<-blocker
	}

	q := New(handler, 1, 10)
	q.Start()
	defer func() {
		close(blocker)
		q.Stop()
	}()

	// Block the worker
	q.Enqueue(0)
	time.Sleep(10 * time.Millisecond)

	// Add values to the buffer
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	if q.Len() != 3 {
		t.Errorf("Expected buffer length 3, got %d", q.Len())
	}
}
