package lazy

import (
	"fmt"

	"github.com/on-the-ground/lazy_ive_go/shared/optional"
	"github.com/on-the-ground/lazy_ive_go/transfinite"
)

// mapGenerator holds its parent behind closures so that the source element
// type does not leak into the variant's type.
type mapGenerator[T any] struct {
	base[T]
	cursor  uint64
	probeAt func(transfinite.Ordinal) (bool, error)
	fetch   func(transfinite.Ordinal) (T, error)
}

func newMapGenerator[In, Out any](parent *Sequence[In], fn func(In) Out) *mapGenerator[Out] {
	return &mapGenerator[Out]{
		base: base[Out]{kind: KindMap},
		probeAt: func(o transfinite.Ordinal) (bool, error) {
			_, ok, err := parent.lookup(o)
			return ok, err
		},
		fetch: func(o transfinite.Ordinal) (Out, error) {
			v, err := parent.Get(o)
			if err != nil {
				var zero Out
				return zero, err
			}
			return fn(v), nil
		},
	}
}

func (g *mapGenerator[T]) hasNext() (bool, error) {
	return g.probeAt(transfinite.OrdinalOf(g.cursor))
}

func (g *mapGenerator[T]) getNext() (T, error) {
	var zero T
	ok, err := g.hasNext()
	switch {
	case err != nil:
		return zero, err
	case !ok:
		return zero, exhausted(g.kind)
	}
	v, err := g.fetch(transfinite.OrdinalOf(g.cursor))
	g.cursor++
	return v, err
}

func (g *mapGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	return g.fetch(o)
}

// whereGenerator has to consume its parent to learn whether another
// element passes, so hasNext searches ahead and parks the hit in memo
// until getNext takes it. finished is set once the parent ran dry.
type whereGenerator[T any] struct {
	base[T]
	parent   *Sequence[T]
	pred     func(T) bool
	memo     optional.Value[T]
	finished bool
	cursor   uint64
}

func newWhereGenerator[T any](parent *Sequence[T], pred func(T) bool) *whereGenerator[T] {
	return &whereGenerator[T]{
		base:   base[T]{kind: KindWhere},
		parent: parent,
		pred:   pred,
	}
}

func (g *whereGenerator[T]) hasNext() (bool, error) {
	if g.memo.IsPresent() {
		return true, nil
	}
	if g.finished {
		return false, nil
	}
	for {
		v, ok, err := g.parent.lookup(transfinite.OrdinalOf(g.cursor))
		if err != nil {
			return false, err
		}
		if !ok {
			g.finished = true
			return false, nil
		}
		g.cursor++
		if g.pred(v) {
			g.memo = optional.Some(v)
			return true, nil
		}
	}
}

func (g *whereGenerator[T]) getNext() (T, error) {
	ok, err := g.hasNext()
	switch {
	case err != nil:
		var zero T
		return zero, err
	case !ok:
		var zero T
		return zero, exhausted(g.kind)
	}
	v := g.memo.MustGet()
	g.memo = optional.None[T]()
	return v, nil
}

// get rescans the parent from the front, counting passing elements.
func (g *whereGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	var zero T
	n, err := o.FiniteCount()
	if err != nil {
		return zero, fmt.Errorf("%w: position %s behind a filter", ErrUnknownOrdinality, o)
	}
	var seen uint64
	for j := uint64(0); ; j++ {
		v, ok, err := g.parent.lookup(transfinite.OrdinalOf(j))
		if err != nil {
			return zero, err
		}
		if !ok {
			return zero, fmt.Errorf("%w: only %d elements pass the filter", ErrIndexOutOfBounds, seen)
		}
		if !g.pred(v) {
			continue
		}
		if seen == n {
			return v, nil
		}
		seen++
	}
}
