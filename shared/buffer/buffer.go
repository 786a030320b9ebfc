package buffer

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfBounds = errors.New("buffer: index out of bounds")

const minSlack = 8

// Buffer is a growable double-ended array. Elements live in
// data[head : head+size]; the unused cells on both sides are slack, so
// Append and Prepend are amortized O(1).
//
// Buffer is intentionally NOT thread-safe.
type Buffer[T any] struct {
	data []T
	head int
	size int
}

// New returns an empty buffer with room for capacity elements at the back.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{
		data: make([]T, minSlack+max(capacity, 0)+minSlack),
		head: minSlack,
	}
}

// FromSlice copies vs into a new buffer.
func FromSlice[T any](vs []T) *Buffer[T] {
	b := New[T](len(vs))
	b.Append(vs...)
	return b
}

func (b *Buffer[T]) Len() int {
	return b.size
}

func (b *Buffer[T]) IsEmpty() bool {
	return b.size == 0
}

// reserve makes sure at least front free cells precede and back free
// cells follow the live elements, reallocating with fresh slack if not.
func (b *Buffer[T]) reserve(front, back int) {
	if b.head >= front && len(b.data)-b.head-b.size >= back {
		return
	}
	slack := max(b.size/2, minSlack)
	data := make([]T, front+slack+b.size+back+slack)
	head := front + slack
	copy(data[head:], b.data[b.head:b.head+b.size])
	b.data, b.head = data, head
}

func (b *Buffer[T]) checkIndex(i int) error {
	if i < 0 || i >= b.size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, i, b.size)
	}
	return nil
}

func (b *Buffer[T]) At(i int) (T, error) {
	if err := b.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return b.data[b.head+i], nil
}

func (b *Buffer[T]) SetAt(i int, v T) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.data[b.head+i] = v
	return nil
}

func (b *Buffer[T]) Append(vs ...T) {
	b.reserve(0, len(vs))
	copy(b.data[b.head+b.size:], vs)
	b.size += len(vs)
}

// Prepend places vs, in order, before the current first element.
func (b *Buffer[T]) Prepend(vs ...T) {
	b.reserve(len(vs), 0)
	b.head -= len(vs)
	copy(b.data[b.head:], vs)
	b.size += len(vs)
}

// InsertAt places vs so that vs[0] ends up at index i. i may equal Len.
func (b *Buffer[T]) InsertAt(i int, vs ...T) error {
	if i < 0 || i > b.size {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfBounds, i, b.size)
	}
	b.reserve(0, len(vs))
	at := b.head + i
	copy(b.data[at+len(vs):], b.data[at:b.head+b.size])
	copy(b.data[at:], vs)
	b.size += len(vs)
	return nil
}

func (b *Buffer[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := b.checkIndex(i); err != nil {
		return zero, err
	}
	at := b.head + i
	v := b.data[at]
	copy(b.data[at:], b.data[at+1:b.head+b.size])
	b.size--
	b.data[b.head+b.size] = zero
	return v, nil
}

func (b *Buffer[T]) Swap(i, j int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if err := b.checkIndex(j); err != nil {
		return err
	}
	b.data[b.head+i], b.data[b.head+j] = b.data[b.head+j], b.data[b.head+i]
	return nil
}

// EvictFront drops up to n of the oldest elements and reports how many
// were dropped.
func (b *Buffer[T]) EvictFront(n int) int {
	n = min(max(n, 0), b.size)
	clear(b.data[b.head : b.head+n])
	b.head += n
	b.size -= n
	return n
}

// Slice returns a copy of the live elements.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, b.size)
	copy(out, b.data[b.head:b.head+b.size])
	return out
}

func (b *Buffer[T]) Clone() *Buffer[T] {
	return FromSlice(b.data[b.head : b.head+b.size])
}

// SubArray copies the half-open range [start, end) into a new buffer.
func (b *Buffer[T]) SubArray(start, end int) (*Buffer[T], error) {
	if start < 0 || end > b.size || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) not within [0, %d)", ErrIndexOutOfBounds, start, end, b.size)
	}
	return FromSlice(b.data[b.head+start : b.head+end]), nil
}

// Concat returns a new buffer holding b followed by other.
func (b *Buffer[T]) Concat(other *Buffer[T]) *Buffer[T] {
	out := New[T](b.size + other.size)
	out.Append(b.data[b.head : b.head+b.size]...)
	out.Append(other.data[other.head : other.head+other.size]...)
	return out
}
