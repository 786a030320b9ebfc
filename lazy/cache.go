package lazy

import (
	"fmt"

	"github.com/on-the-ground/lazy_ive_go/shared/log"
	"go.uber.org/zap"
)

// memoise pulls one element into the cache. ok is false once the
// generator is exhausted.
func (s *Sequence[T]) memoise() (bool, error) {
	if s.cache.exhausted {
		return false, nil
	}
	ok, err := probe(s.generator)
	if err != nil {
		return false, err
	}
	if !ok {
		s.markExhausted()
		return false, nil
	}
	v, err := GetNext(s.generator)
	if err != nil {
		return false, err
	}
	s.cache.buf.Append(v)
	s.evictIfFull()
	return true, nil
}

func (s *Sequence[T]) markExhausted() {
	s.cache.exhausted = true
	log.Emit(s.settings.logger, log.LogDebug, "generator exhausted",
		zap.Stringer("sequence_id", s.id),
		zap.Uint64("materialized", s.realized()),
	)
}

// evictIfFull drops the oldest block once the cache outgrows its ceiling.
func (s *Sequence[T]) evictIfFull() {
	if s.cache.buf.Len() <= s.settings.cache.MaxSize {
		return
	}
	evicted := s.cache.buf.EvictFront(s.settings.cache.DecreaseSize)
	s.cache.offset += uint64(s.settings.cache.OffsetIncrease)
	log.Emit(s.settings.logger, log.LogDebug, "cache evicted",
		zap.Stringer("sequence_id", s.id),
		zap.Int("evicted", evicted),
		zap.Uint64("offset", s.cache.offset),
	)
}

// MemoiseNext pulls exactly one further element into the cache. It fails
// with ErrIndexOutOfBounds when there is none.
func (s *Sequence[T]) MemoiseNext() error {
	ok, err := s.memoise()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s is exhausted", ErrIndexOutOfBounds, s)
	}
	return nil
}

// CanMemoiseNext reports whether MemoiseNext would succeed.
func (s *Sequence[T]) CanMemoiseNext() bool {
	if s.cache.exhausted {
		return false
	}
	ok, err := probe(s.generator)
	if err == nil && !ok {
		s.markExhausted()
	}
	return ok && err == nil
}

// TryMemoiseNext is MemoiseNext reporting failure as false.
func (s *Sequence[T]) TryMemoiseNext() bool {
	ok, err := s.memoise()
	return ok && err == nil
}
