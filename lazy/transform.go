package lazy

import (
	"fmt"

	"github.com/on-the-ground/lazy_ive_go/shared/buffer"
	"github.com/on-the-ground/lazy_ive_go/shared/optional"
	"github.com/on-the-ground/lazy_ive_go/transfinite"
)

// sumOrdinality is a+b when both are known.
func sumOrdinality(a, b optional.Value[transfinite.Ordinal]) optional.Value[transfinite.Ordinal] {
	x, okA := a.Value()
	y, okB := b.Value()
	if !okA || !okB {
		return optional.None[transfinite.Ordinal]()
	}
	return optional.Some(x.Add(y))
}

// Append returns s followed by v.
func (s *Sequence[T]) Append(v T) *Sequence[T] {
	return s.AppendSequence(s.single(v))
}

// AppendSequence returns s followed by other.
func (s *Sequence[T]) AppendSequence(other *Sequence[T]) *Sequence[T] {
	return derive[T, T](s,
		newAppendGenerator(s, other),
		s.size.Add(other.size),
		sumOrdinality(s.ordinality, other.ordinality),
	)
}

// Prepend returns v followed by s.
func (s *Sequence[T]) Prepend(v T) *Sequence[T] {
	return s.PrependSequence(s.single(v))
}

// PrependSequence returns other followed by s.
func (s *Sequence[T]) PrependSequence(other *Sequence[T]) *Sequence[T] {
	return derive[T, T](s,
		newPrependGenerator(s, other),
		other.size.Add(s.size),
		sumOrdinality(other.ordinality, s.ordinality),
	)
}

// Concat returns s followed by other. The crossover is the size of s.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	return derive[T, T](s,
		newConcatGenerator(s, other),
		s.size.Add(other.size),
		sumOrdinality(s.ordinality, other.ordinality),
	)
}

// InsertAt returns s with v placed at position at, shifting the rest back.
func (s *Sequence[T]) InsertAt(v T, at transfinite.Ordinal) (*Sequence[T], error) {
	return s.InsertSequenceAt(s.single(v), at)
}

// InsertSequenceAt returns s with the elements of content starting at
// position at.
func (s *Sequence[T]) InsertSequenceAt(content *Sequence[T], at transfinite.Ordinal) (*Sequence[T], error) {
	if err := s.checkBound(at, "insert"); err != nil {
		return nil, err
	}
	ordinality := optional.None[transfinite.Ordinal]()
	if o, ok := s.ordinality.Value(); ok {
		if c, ok := content.ordinality.Value(); ok {
			tail, err := o.Subtract(at)
			if err != nil {
				return nil, err
			}
			ordinality = optional.Some(at.Add(c).Add(tail))
		}
	}
	return derive[T, T](s,
		newInsertGenerator(s, content, at),
		s.size.Add(content.size),
		ordinality,
	), nil
}

// Skip returns s without the element at position at.
func (s *Sequence[T]) Skip(at transfinite.Ordinal) (*Sequence[T], error) {
	return s.SkipRange(at, at.Successor())
}

// SkipRange returns s without the positions [start, end).
func (s *Sequence[T]) SkipRange(start, end transfinite.Ordinal) (*Sequence[T], error) {
	if err := s.checkRange(start, end, "skip"); err != nil {
		return nil, err
	}
	size, ordinality := s.size, optional.None[transfinite.Ordinal]()
	if o, ok := s.ordinality.Value(); ok {
		tail, err := o.Subtract(end)
		if err != nil {
			return nil, err
		}
		ord := start.Add(tail)
		size, ordinality = transfinite.CardinalityOf(ord), optional.Some(ord)
	}
	return derive[T, T](s, newSkipGenerator(s, start, end), size, ordinality), nil
}

// SubSequence returns the positions [start, end) of s.
func (s *Sequence[T]) SubSequence(start, end transfinite.Ordinal) (*Sequence[T], error) {
	if err := s.checkRange(start, end, "sub-sequence"); err != nil {
		return nil, err
	}
	width, err := end.Subtract(start)
	if err != nil {
		return nil, err
	}
	size, ordinality := transfinite.CardinalityOf(width), optional.Some(width)
	if !s.ordinality.IsPresent() {
		ordinality = optional.None[transfinite.Ordinal]()
		if s.size.Less(size) {
			size = s.size
		}
	}
	return derive[T, T](s, newSubSequenceGenerator(s, start, end), size, ordinality), nil
}

// Where keeps the elements satisfying pred. The result has an unknown
// ordinality and its size is an upper bound until it is fully realized.
//
// Pulling from an infinite source whose elements pass only finitely often
// never returns.
func (s *Sequence[T]) Where(pred func(T) bool) *Sequence[T] {
	return derive[T, T](s,
		newWhereGenerator(s, pred),
		s.size,
		optional.None[transfinite.Ordinal](),
	)
}

// Map applies fn to every element of s. Size and ordinality are preserved.
func Map[In, Out any](s *Sequence[In], fn func(In) Out) *Sequence[Out] {
	return derive[In, Out](s, newMapGenerator(s, fn), s.size, s.ordinality)
}

func (s *Sequence[T]) single(v T) *Sequence[T] {
	return newSequence[T](
		NewFiniteGenerator(buffer.FromSlice([]T{v})),
		transfinite.CardinalOf(1),
		optional.Some(transfinite.OrdinalOf(1)),
		s.settings,
	)
}

// checkBound rejects a position past the end of s, or a transfinite one
// when the end of s is unknown.
func (s *Sequence[T]) checkBound(at transfinite.Ordinal, op string) error {
	o, known := s.ordinality.Value()
	switch {
	case known && o.Less(at):
		return fmt.Errorf("%w: %s at %s past ordinality %s", ErrIndexOutOfBounds, op, at, o)
	case !known && at.IsTransfinite():
		return fmt.Errorf("%w: %s at %s", ErrUnknownOrdinality, op, at)
	}
	return nil
}

func (s *Sequence[T]) checkRange(start, end transfinite.Ordinal, op string) error {
	if end.Less(start) {
		return fmt.Errorf("%w: %s range [%s, %s) is reversed", ErrIndexOutOfBounds, op, start, end)
	}
	if err := s.checkBound(start, op); err != nil {
		return err
	}
	return s.checkBound(end, op)
}
