// Package fifo provides the bounded single-producer/single-consumer
// queues that carry key events from the scanning goroutine to the
// application loop.
package fifo

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Ring is a fixed-size single-producer, single-consumer queue.
// It is designed for bare-metal use: no allocations after
// construction, busy-wait with Gosched().
type Ring[T any] struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	mask  uint32
	slots []T
}

// NewRing returns a ring holding at least depth elements. The depth is
// rounded up to a power of two.
func NewRing[T any](depth int) *Ring[T] {
	n := uint32(1)
	for int(n) < depth {
		n <<= 1
	}
	return &Ring[T]{mask: n - 1, slots: make([]T, n)}
}

// Cap returns the number of slots.
func (r *Ring[T]) Cap() int { return len(r.slots) }

// TrySend enqueues v, returning false if the ring is full.
func (r *Ring[T]) TrySend(v T) bool {
	head := r.head.Load()
	tail := r.tail.Load()
	if head-tail > r.mask {
		return false
	}
	r.slots[head&r.mask] = v
	r.head.Store(head + 1)
	return true
}

// Send enqueues v, blocking until a slot is free.
func (r *Ring[T]) Send(v T) {
	for !r.TrySend(v) {
		runtime.Gosched()
	}
}

// Ready reports whether a value is queued.
func (r *Ring[T]) Ready() bool {
	return r.head.Load() != r.tail.Load()
}

// TryRecv dequeues one value, returning false if empty.
func (r *Ring[T]) TryRecv() (T, bool) {
	tail := r.tail.Load()
	head := r.head.Load()
	if tail == head {
		var zero T
		return zero, false
	}
	v := r.slots[tail&r.mask]
	r.tail.Store(tail + 1)
	return v, true
}

// Wait blocks until a value is queued or timeout has elapsed. It does
// not dequeue.
func (r *Ring[T]) Wait(timeout time.Duration) bool {
	start := time.Now()
	for {
		if r.Ready() {
			return true
		}
		if time.Since(start) >= timeout {
			return false
		}
		runtime.Gosched()
	}
}
