package lazy

import "github.com/on-the-ground/lazy_ive_go/transfinite"

// Iterator walks a sequence from the front. Every step goes through the
// sequence cache, so iterating twice does not re-run production.
type Iterator[T any] struct {
	seq  *Sequence[T]
	next uint64
	cur  T
	err  error
}

func (s *Sequence[T]) Iter() *Iterator[T] {
	return &Iterator[T]{seq: s}
}

// Next advances to the following element. It returns false at the end of
// the sequence or on failure; Err tells the two apart.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	v, ok, err := it.seq.lookup(transfinite.OrdinalOf(it.next))
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		return false
	}
	it.cur = v
	it.next++
	return true
}

func (it *Iterator[T]) Value() T {
	return it.cur
}

// Position is the position of the element returned by Value.
func (it *Iterator[T]) Position() transfinite.Ordinal {
	if it.next == 0 {
		return transfinite.OrdinalOf(0)
	}
	return transfinite.OrdinalOf(it.next - 1)
}

func (it *Iterator[T]) Err() error {
	return it.err
}

// Take returns up to the first n elements of s.
func (s *Sequence[T]) Take(n int) ([]T, error) {
	out := make([]T, 0, max(n, 0))
	it := s.Iter()
	for len(out) < n && it.Next() {
		out = append(out, it.Value())
	}
	return out, it.Err()
}
