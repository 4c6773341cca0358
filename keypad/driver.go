package keypad

import (
	"fmt"
	"math"
	"time"
)

// Forever is a timeout that never elapses in practice.
const Forever = time.Duration(math.MaxInt64)

// Source is the consuming end of the event channel.
type Source interface {
	// TryRecv dequeues one message without blocking.
	TryRecv() (Message, bool)
	// Wait blocks until a message is queued or timeout elapses. It
	// does not dequeue.
	Wait(timeout time.Duration) bool
}

// Logger receives one line per decoded key.
type Logger interface {
	WriteLineString(s string)
}

// Driver decodes channel messages into keys for the application.
type Driver struct {
	src    Source
	layout *Layout
	log    Logger
}

// NewDriver returns a driver reading from src with the default layout.
// log may be nil.
func NewDriver(src Source, log Logger) *Driver {
	return &Driver{src: src, layout: &DefaultLayout, log: log}
}

// ReadKey returns the next queued key without blocking.
func (d *Driver) ReadKey() (Key, bool) {
	msg, ok := d.src.TryRecv()
	if !ok {
		return 0, false
	}
	return d.decode(msg), true
}

// WaitForKey blocks until a key is queued or timeout elapses and
// reports whether one is available. The key is left in the queue.
func (d *Driver) WaitForKey(timeout time.Duration) bool {
	return d.src.Wait(timeout)
}

// ReadKeyTimeout waits up to timeout for a key and returns it.
func (d *Driver) ReadKeyTimeout(timeout time.Duration) (Key, bool) {
	if !d.src.Wait(timeout) {
		return 0, false
	}
	return d.ReadKey()
}

func (d *Driver) decode(msg Message) Key {
	c, ok := msg.Decode()
	if !ok {
		// Only the scanner produces messages; a bad one is a bug.
		panic(fmt.Sprintf("keypad: malformed message 0x%08x", uint32(msg)))
	}
	k := d.layout.Lookup(c)
	if d.log != nil {
		d.log.WriteLineString(fmt.Sprintf("key: pressed 0x%x (row %d, col %d) -> %s", uint32(msg), c.Row, c.Col, k))
	}
	return k
}
