package lazy

import (
	"fmt"
	"slices"
)

// Foldl reduces s from the front: fn(...fn(fn(base, s[0]), s[1])..., s[n-1]).
// It fails with ErrInfiniteCalculation unless s is finite.
func Foldl[T, A any](s *Sequence[T], base A, fn func(A, T) A) (A, error) {
	if !s.IsFinite() {
		return base, fmt.Errorf("%w: foldl over %s", ErrInfiniteCalculation, s)
	}
	acc := base
	it := s.Iter()
	for it.Next() {
		acc = fn(acc, it.Value())
	}
	if err := it.Err(); err != nil {
		return base, err
	}
	return acc, nil
}

// Foldr reduces s from the back: fn(s[0], fn(s[1], ...fn(s[n-1], base))).
// It fails with ErrInfiniteCalculation unless s is finite.
func Foldr[T, A any](s *Sequence[T], base A, fn func(T, A) A) (A, error) {
	if !s.IsFinite() {
		return base, fmt.Errorf("%w: foldr over %s", ErrInfiniteCalculation, s)
	}
	var elems []T
	it := s.Iter()
	for it.Next() {
		elems = append(elems, it.Value())
	}
	if err := it.Err(); err != nil {
		return base, err
	}
	acc := base
	for _, v := range slices.Backward(elems) {
		acc = fn(v, acc)
	}
	return acc, nil
}
