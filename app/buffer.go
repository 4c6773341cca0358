package app

import "errors"

// BufferCapacity is the size of the input accumulator in bytes.
const BufferCapacity = 64

// ErrBufferFull is returned when a token does not fit the accumulator.
var ErrBufferFull = errors.New("app: input buffer full")

// Buffer is a fixed-capacity text accumulator. Tokens are appended
// whole or not at all: a token that would overflow is rejected and the
// buffer is left as it was.
type Buffer struct {
	b [BufferCapacity]byte
	n int
}

// Append adds s, or returns ErrBufferFull leaving the buffer unchanged.
func (b *Buffer) Append(s string) error {
	if len(s) > BufferCapacity-b.n {
		return ErrBufferFull
	}
	b.n += copy(b.b[b.n:], s)
	return nil
}

func (b *Buffer) Reset()         { b.n = 0 }
func (b *Buffer) Len() int       { return b.n }
func (b *Buffer) String() string { return string(b.b[:b.n]) }
