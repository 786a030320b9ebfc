package lazy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/on-the-ground/lazy_ive_go/internal/memo"
	"github.com/on-the-ground/lazy_ive_go/shared/buffer"
	"github.com/on-the-ground/lazy_ive_go/shared/log"
	"github.com/on-the-ground/lazy_ive_go/shared/optional"
	"github.com/on-the-ground/lazy_ive_go/transfinite"
	"go.uber.org/zap"
)

// Sequence is a persistent lazy sequence. Its logical value never changes;
// only its memoization cache does.
//
// Sequence is intentionally NOT thread-safe.
type Sequence[T any] struct {
	id         uuid.UUID
	size       transfinite.Cardinal
	ordinality optional.Value[transfinite.Ordinal]
	generator  Generator[T]
	cache      cache[T]
	settings   settings
}

type cache[T any] struct {
	buf       *buffer.Buffer[T]
	offset    uint64
	exhausted bool
	recall    *memo.Table[T]
}

func newSequence[T any](
	g Generator[T],
	size transfinite.Cardinal,
	ordinality optional.Value[transfinite.Ordinal],
	st settings,
) *Sequence[T] {
	return &Sequence[T]{
		id:         uuid.New(),
		size:       size,
		ordinality: ordinality,
		generator:  g,
		cache:      cache[T]{buf: buffer.New[T](0)},
		settings:   st,
	}
}

// derive builds a sequence that inherits the settings of s.
func derive[T, U any](
	s *Sequence[T],
	g Generator[U],
	size transfinite.Cardinal,
	ordinality optional.Value[transfinite.Ordinal],
) *Sequence[U] {
	return newSequence(g, size, ordinality, s.settings)
}

func Empty[T any](opts ...Option) *Sequence[T] {
	return FromSlice[T](nil, opts...)
}

func Of[T any](v T, opts ...Option) *Sequence[T] {
	return FromSlice([]T{v}, opts...)
}

func FromSlice[T any](vs []T, opts ...Option) *Sequence[T] {
	return FromBuffer(buffer.FromSlice(vs), opts...)
}

// FromBuffer copies b; later changes to b are not seen by the sequence.
func FromBuffer[T any](b *buffer.Buffer[T], opts ...Option) *Sequence[T] {
	n := uint64(b.Len())
	return newSequence[T](
		NewFiniteGenerator(b),
		transfinite.CardinalOf(n),
		optional.Some(transfinite.OrdinalOf(n)),
		newSettings(opts),
	)
}

// Recurrence returns the infinite sequence that starts with seed and
// continues with fn applied to the window of the last arity elements.
// fn must be pure: evicted positions are recomputed by replaying it.
func Recurrence[T any](arity int, fn func([]T) T, seed []T, opts ...Option) (*Sequence[T], error) {
	g, err := NewInfiniteGenerator(arity, fn, seed)
	if err != nil {
		return nil, err
	}
	return newSequence[T](g, transfinite.Countable(), optional.Some(transfinite.Omega()), newSettings(opts)), nil
}

// Chunked is Recurrence for a production function with side effects or
// randomness. Elements can only be read through the cache window; reading
// an evicted position fails with ErrInconsistentChunkAccess.
func Chunked[T any](arity int, fn func([]T) T, seed []T, opts ...Option) (*Sequence[T], error) {
	g, err := newChunkGenerator(arity, fn, seed)
	if err != nil {
		return nil, err
	}
	return newSequence[T](g, transfinite.Countable(), optional.Some(transfinite.Omega()), newSettings(opts)), nil
}

// FromGenerator wraps a raw generator. size and ordinality are trusted.
// The generator must not be pulled by anything else afterwards.
func FromGenerator[T any](
	g Generator[T],
	size transfinite.Cardinal,
	ordinality optional.Value[transfinite.Ordinal],
	opts ...Option,
) *Sequence[T] {
	return newSequence(g, size, ordinality, newSettings(opts))
}

func (s *Sequence[T]) ID() uuid.UUID {
	return s.id
}

func (s *Sequence[T]) Kind() Kind {
	return s.generator.Kind()
}

// Size is exact unless the ordinality is unknown, in which case it is an
// upper bound until the sequence has been realized to its end.
func (s *Sequence[T]) Size() transfinite.Cardinal {
	if !s.ordinality.IsPresent() && s.cache.exhausted {
		return transfinite.CardinalOf(s.realized())
	}
	return s.size
}

// Ordinality bounds every position Get can resolve. It is absent when
// positions cannot be predicted, e.g. after Where.
func (s *Sequence[T]) Ordinality() optional.Value[transfinite.Ordinal] {
	return s.ordinality
}

func (s *Sequence[T]) IsFinite() bool {
	return s.size.IsFinite()
}

func (s *Sequence[T]) IsEmpty() bool {
	if n, err := s.size.FiniteCount(); err == nil && n == 0 {
		return true
	}
	_, ok, err := s.lookup(transfinite.OrdinalOf(0))
	return err == nil && !ok
}

// MaterializedCount is the number of elements currently held in the cache.
func (s *Sequence[T]) MaterializedCount() int {
	return s.cache.buf.Len()
}

// Offset is the position of the first cached element.
func (s *Sequence[T]) Offset() transfinite.Ordinal {
	return transfinite.OrdinalOf(s.cache.offset)
}

func (s *Sequence[T]) String() string {
	return fmt.Sprintf("Sequence(%s, %s, size=%s, ordinality=%s)", s.id, s.generator.Kind(), s.size, s.ordinality)
}

// Get returns the element at position o.
func (s *Sequence[T]) Get(o transfinite.Ordinal) (T, error) {
	v, ok, err := s.lookup(o)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, fmt.Errorf("%w: position %s of %s", ErrIndexOutOfBounds, o, s)
	}
	return v, nil
}

// At is Get for a finite position.
func (s *Sequence[T]) At(i uint64) (T, error) {
	return s.Get(transfinite.OrdinalOf(i))
}

func (s *Sequence[T]) First() (T, error) {
	return s.At(0)
}

// Last fails with ErrUnknownOrdinality on infinite sequences and on
// sequences whose ordinality is unknown.
func (s *Sequence[T]) Last() (T, error) {
	var zero T
	ord, known := s.ordinality.Value()
	if !known || !s.IsFinite() {
		return zero, fmt.Errorf("%w: no last element in %s", ErrUnknownOrdinality, s)
	}
	last, err := ord.Predecessor()
	if err != nil {
		return zero, fmt.Errorf("%w: %s is empty", ErrIndexOutOfBounds, s)
	}
	return s.Get(last)
}

// lookup resolves position o. ok is false when the sequence ends before o.
func (s *Sequence[T]) lookup(o transfinite.Ordinal) (v T, ok bool, err error) {
	if ord, known := s.ordinality.Value(); known && !o.Less(ord) {
		return v, false, nil
	}
	if o.IsTransfinite() {
		if !s.ordinality.IsPresent() {
			return v, false, fmt.Errorf("%w: position %s of %s", ErrUnknownOrdinality, o, s)
		}
		return s.recall(o)
	}

	i, _ := o.FiniteCount()
	if n, err := s.size.FiniteCount(); err == nil && i >= n {
		return v, false, nil
	}
	if i < s.cache.offset {
		return s.recall(o)
	}
	for i >= s.cache.offset+uint64(s.cache.buf.Len()) {
		if ok, err = s.memoise(); err != nil || !ok {
			return v, false, err
		}
	}
	v, err = s.cache.buf.At(int(i - s.cache.offset))
	return v, err == nil, err
}

// recall serves positions outside the cache window through the generator's
// positional fetch, remembering the answers in a bounded table.
func (s *Sequence[T]) recall(o transfinite.Ordinal) (T, bool, error) {
	if s.cache.recall == nil {
		s.cache.recall = memo.New[T](s.settings.cache.RecallSize, recallShards)
	}
	if v, ok := s.cache.recall.Load(o); ok {
		return v, true, nil
	}
	log.Emit(s.settings.logger, log.LogDebug, "recall miss",
		zap.Stringer("sequence_id", s.id),
		zap.Stringer("index", o),
	)
	v, err := Get(s.generator, o)
	switch {
	case errors.Is(err, ErrIndexOutOfBounds):
		return v, false, nil
	case err != nil:
		return v, false, err
	}
	s.cache.recall.Store(o, v)
	return v, true, nil
}

func (s *Sequence[T]) realized() uint64 {
	return s.cache.offset + uint64(s.cache.buf.Len())
}

// knownLength is the ordinality, or the realized length once the
// generator ran dry.
func (s *Sequence[T]) knownLength() (transfinite.Ordinal, bool) {
	if o, ok := s.ordinality.Value(); ok {
		return o, true
	}
	if s.cache.exhausted {
		return transfinite.OrdinalOf(s.realized()), true
	}
	return transfinite.Ordinal{}, false
}

// locate reports whether o lies inside s and, if not, the position it
// corresponds to past the end of s. An unknown length is discovered by
// realizing s as far as needed.
func locate[T any](s *Sequence[T], o transfinite.Ordinal) (bool, transfinite.Ordinal, error) {
	length, known := s.knownLength()
	if !known {
		switch {
		case s.size.IsFinite():
			for !s.cache.exhausted {
				if _, err := s.memoise(); err != nil {
					return false, transfinite.Ordinal{}, err
				}
			}
		case o.IsTransfinite():
			return false, transfinite.Ordinal{}, fmt.Errorf("%w: position %s past %s", ErrUnknownOrdinality, o, s)
		default:
			_, ok, err := s.lookup(o)
			if err != nil || ok {
				return ok, transfinite.Ordinal{}, err
			}
		}
		if length, known = s.knownLength(); !known {
			return false, transfinite.Ordinal{}, fmt.Errorf("%w: length of %s", ErrUnknownOrdinality, s)
		}
	}
	if o.Less(length) {
		return true, transfinite.Ordinal{}, nil
	}
	rest, err := o.Subtract(length)
	return false, rest, err
}
