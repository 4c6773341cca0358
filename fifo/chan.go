package fifo

import "time"

// Chan is a single-producer, single-consumer queue backed by a Go
// channel. The consumer side keeps one peeked value so that Wait can
// report availability without consuming.
type Chan[T any] struct {
	ch chan T

	// Consumer-owned.
	pending    T
	hasPending bool
}

// NewChan returns a queue holding depth elements (at least one).
func NewChan[T any](depth int) *Chan[T] {
	if depth < 1 {
		depth = 1
	}
	return &Chan[T]{ch: make(chan T, depth)}
}

// Cap returns the channel capacity.
func (c *Chan[T]) Cap() int { return cap(c.ch) }

// Send enqueues v, blocking until there is room.
func (c *Chan[T]) Send(v T) { c.ch <- v }

// TrySend enqueues v, returning false if the queue is full.
func (c *Chan[T]) TrySend(v T) bool {
	select {
	case c.ch <- v:
		return true
	default:
		return false
	}
}

// Ready reports whether a value is available to the consumer.
func (c *Chan[T]) Ready() bool {
	return c.hasPending || len(c.ch) > 0
}

// TryRecv dequeues one value, returning false if empty.
func (c *Chan[T]) TryRecv() (T, bool) {
	if c.hasPending {
		v := c.pending
		var zero T
		c.pending, c.hasPending = zero, false
		return v, true
	}
	select {
	case v := <-c.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Wait blocks until a value is queued or timeout elapses. It does not
// dequeue.
func (c *Chan[T]) Wait(timeout time.Duration) bool {
	if c.hasPending {
		return true
	}
	if timeout <= 0 {
		select {
		case v := <-c.ch:
			c.pending, c.hasPending = v, true
			return true
		default:
			return false
		}
	}

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case v := <-c.ch:
		c.pending, c.hasPending = v, true
		return true
	case <-t.C:
		return false
	}
}
