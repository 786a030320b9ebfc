package lazy

import (
	"fmt"
	"slices"

	"github.com/on-the-ground/lazy_ive_go/shared/buffer"
	"github.com/on-the-ground/lazy_ive_go/transfinite"
)

// FiniteGenerator serves the elements of a buffer in order.
type FiniteGenerator[T any] struct {
	base[T]
	buf    *buffer.Buffer[T]
	cursor int
}

// NewFiniteGenerator serves a copy of b, so later changes to b are not seen.
func NewFiniteGenerator[T any](b *buffer.Buffer[T]) *FiniteGenerator[T] {
	return &FiniteGenerator[T]{
		base: base[T]{kind: KindFinite},
		buf:  b.Clone(),
	}
}

func (g *FiniteGenerator[T]) Len() int {
	return g.buf.Len()
}

func (g *FiniteGenerator[T]) hasNext() (bool, error) {
	return g.cursor < g.buf.Len(), nil
}

func (g *FiniteGenerator[T]) getNext() (T, error) {
	if g.cursor >= g.buf.Len() {
		var zero T
		return zero, exhausted(g.kind)
	}
	v, err := g.buf.At(g.cursor)
	g.cursor++
	return v, err
}

func (g *FiniteGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	var zero T
	n, err := o.FiniteCount()
	if err != nil || n >= uint64(g.buf.Len()) {
		return zero, fmt.Errorf("%w: position %s of %d", ErrIndexOutOfBounds, o, g.buf.Len())
	}
	return g.buf.At(int(n))
}

// InfiniteGenerator produces an endless recurrence. It first serves its
// seed, then repeatedly applies fn to the window of the last arity
// elements and slides the window over the result.
type InfiniteGenerator[T any] struct {
	base[T]
	arity         int
	fn            func([]T) T
	seed          []T
	window        []T
	produced      uint64
	deterministic bool
}

// NewInfiniteGenerator returns a generator for a pure recurrence. The seed
// must hold at least arity elements. fn receives a fresh copy of the window
// on every call.
func NewInfiniteGenerator[T any](arity int, fn func([]T) T, seed []T) (*InfiniteGenerator[T], error) {
	switch {
	case arity <= 0:
		return nil, fmt.Errorf("%w: arity %d must be positive", ErrInvalidRecurrence, arity)
	case len(seed) < arity:
		return nil, fmt.Errorf("%w: seed of %d elements is shorter than arity %d", ErrInvalidRecurrence, len(seed), arity)
	case fn == nil:
		return nil, fmt.Errorf("%w: nil window function", ErrInvalidRecurrence)
	}
	seed = slices.Clone(seed)
	return &InfiniteGenerator[T]{
		base:          base[T]{kind: KindInfinite},
		arity:         arity,
		fn:            fn,
		seed:          seed,
		window:        slices.Clone(seed[len(seed)-arity:]),
		deterministic: true,
	}, nil
}

// newChunkGenerator is NewInfiniteGenerator for a production function that
// is not required to be pure. Such a generator cannot replay positions.
func newChunkGenerator[T any](arity int, fn func([]T) T, seed []T) (*InfiniteGenerator[T], error) {
	g, err := NewInfiniteGenerator(arity, fn, seed)
	if err != nil {
		return nil, err
	}
	g.deterministic = false
	return g, nil
}

func (g *InfiniteGenerator[T]) hasNext() (bool, error) {
	return true, nil
}

func (g *InfiniteGenerator[T]) getNext() (T, error) {
	if g.produced < uint64(len(g.seed)) {
		v := g.seed[g.produced]
		g.produced++
		return v, nil
	}
	v := g.fn(slices.Clone(g.window))
	g.window = append(g.window[1:], v)
	g.produced++
	return v, nil
}

// get replays the recurrence from the seed up to position o.
func (g *InfiniteGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	var zero T
	if !g.deterministic {
		return zero, fmt.Errorf("%w: position %s", ErrInconsistentChunkAccess, o)
	}
	n, err := o.FiniteCount()
	if err != nil {
		return zero, fmt.Errorf("%w: position %s of a recurrence", ErrIndexOutOfBounds, o)
	}
	if n < uint64(len(g.seed)) {
		return g.seed[n], nil
	}
	window := slices.Clone(g.seed[len(g.seed)-g.arity:])
	for k := uint64(len(g.seed)); ; k++ {
		v := g.fn(slices.Clone(window))
		if k == n {
			return v, nil
		}
		window = append(window[1:], v)
	}
}
