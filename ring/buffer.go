// Package ring implements the bounded FIFO buffer consumed by package
// channel. It holds no lock of its own: callers serialize access
// externally (the channel mutex).
package ring

import "errors"

// ErrFull is returned by Add when the buffer has no remaining capacity.
var ErrFull = errors.New("ring: buffer full")

// ErrEmpty is returned by Remove when the buffer holds no elements.
var ErrEmpty = errors.New("ring: buffer empty")

// Buffer is a fixed-capacity circular FIFO of T. The zero value is not
// usable; construct with New.
type Buffer[T any] struct {
	data  []T
	first int
	size  int
}

// New creates a Buffer with the given capacity. A capacity of 0 is
// permitted: Add on it always returns ErrFull and Remove always
// returns ErrEmpty.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// Add appends v to the buffer. Returns ErrFull if the buffer is at
// capacity; the buffer is left unmodified in that case.
func (b *Buffer[T]) Add(v T) error {
	if len(b.data) == 0 || b.size >= len(b.data) {
		return ErrFull
	}
	b.data[(b.first+b.size)%len(b.data)] = v
	b.size++
	return nil
}

// Remove dequeues and returns the oldest element. Returns ErrEmpty if
// the buffer holds nothing.
func (b *Buffer[T]) Remove() (T, error) {
	var zero T
	if b.size == 0 {
		return zero, ErrEmpty
	}
	v := b.data[b.first]
	b.data[b.first] = zero
	b.first = (b.first + 1) % len(b.data)
	b.size--
	return v, nil
}

// Len returns the current number of buffered elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the buffer's fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }
