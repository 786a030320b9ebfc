package lazy

import (
	"fmt"

	"github.com/on-the-ground/lazy_ive_go/shared/optional"
	"github.com/on-the-ground/lazy_ive_go/transfinite"
)

// span is the run of positions [from, until) of seq. An absent until
// means the run lasts as long as seq does.
type span[T any] struct {
	seq   *Sequence[T]
	from  transfinite.Ordinal
	until optional.Value[transfinite.Ordinal]
}

func whole[T any](s *Sequence[T]) span[T] {
	return span[T]{seq: s}
}

func prefix[T any](s *Sequence[T], until transfinite.Ordinal) span[T] {
	return span[T]{seq: s, until: optional.Some(until)}
}

func suffix[T any](s *Sequence[T], from transfinite.Ordinal) span[T] {
	return span[T]{seq: s, from: from}
}

// relay serves its spans one after another. It is the sequential half of
// every composing variant; each variant adds its own positional fetch.
type relay[T any] struct {
	spans  []span[T]
	idx    int
	cursor uint64
}

func newRelay[T any](spans ...span[T]) relay[T] {
	return relay[T]{spans: spans}
}

func (r *relay[T]) position() transfinite.Ordinal {
	return r.spans[r.idx].from.Add(transfinite.OrdinalOf(r.cursor))
}

func (r *relay[T]) hasNext() (bool, error) {
	for r.idx < len(r.spans) {
		sp := r.spans[r.idx]
		pos := r.position()
		if until, bounded := sp.until.Value(); !bounded || pos.Less(until) {
			_, ok, err := sp.seq.lookup(pos)
			if err != nil || ok {
				return ok, err
			}
		}
		r.idx++
		r.cursor = 0
	}
	return false, nil
}

func (r *relay[T]) next(k Kind) (T, error) {
	var zero T
	ok, err := r.hasNext()
	switch {
	case err != nil:
		return zero, err
	case !ok:
		return zero, exhausted(k)
	}
	v, err := r.spans[r.idx].seq.Get(r.position())
	r.cursor++
	return v, err
}

type appendGenerator[T any] struct {
	base[T]
	relay[T]
	parent, added *Sequence[T]
}

func newAppendGenerator[T any](parent, added *Sequence[T]) *appendGenerator[T] {
	return &appendGenerator[T]{
		base:   base[T]{kind: KindAppend},
		relay:  newRelay(whole(parent), whole(added)),
		parent: parent,
		added:  added,
	}
}

func (g *appendGenerator[T]) getNext() (T, error) {
	return g.next(g.kind)
}

func (g *appendGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	inside, rest, err := locate(g.parent, o)
	switch {
	case err != nil:
		var zero T
		return zero, err
	case inside:
		return g.parent.Get(o)
	}
	return g.added.Get(rest)
}

type prependGenerator[T any] struct {
	base[T]
	relay[T]
	parent, added *Sequence[T]
}

func newPrependGenerator[T any](parent, added *Sequence[T]) *prependGenerator[T] {
	return &prependGenerator[T]{
		base:   base[T]{kind: KindPrepend},
		relay:  newRelay(whole(added), whole(parent)),
		parent: parent,
		added:  added,
	}
}

func (g *prependGenerator[T]) getNext() (T, error) {
	return g.next(g.kind)
}

func (g *prependGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	inside, rest, err := locate(g.added, o)
	switch {
	case err != nil:
		var zero T
		return zero, err
	case inside:
		return g.added.Get(o)
	}
	return g.parent.Get(rest)
}

type concatGenerator[T any] struct {
	base[T]
	relay[T]
	first, second *Sequence[T]
}

func newConcatGenerator[T any](first, second *Sequence[T]) *concatGenerator[T] {
	return &concatGenerator[T]{
		base:   base[T]{kind: KindConcat},
		relay:  newRelay(whole(first), whole(second)),
		first:  first,
		second: second,
	}
}

func (g *concatGenerator[T]) getNext() (T, error) {
	return g.next(g.kind)
}

// get crosses over at the size of first. An infinite first covers every
// finite position on its own.
func (g *concatGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	if g.first.Size().IsTransfinite() && o.IsFinite() {
		return g.first.Get(o)
	}
	inside, rest, err := locate(g.first, o)
	switch {
	case err != nil:
		var zero T
		return zero, err
	case inside:
		return g.first.Get(o)
	}
	return g.second.Get(rest)
}

type insertGenerator[T any] struct {
	base[T]
	relay[T]
	parent, content *Sequence[T]
	target          transfinite.Ordinal
}

func newInsertGenerator[T any](parent, content *Sequence[T], target transfinite.Ordinal) *insertGenerator[T] {
	return &insertGenerator[T]{
		base:    base[T]{kind: KindInsert},
		relay:   newRelay(prefix(parent, target), whole(content), suffix(parent, target)),
		parent:  parent,
		content: content,
		target:  target,
	}
}

func (g *insertGenerator[T]) getNext() (T, error) {
	return g.next(g.kind)
}

func (g *insertGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	var zero T
	if o.Less(g.target) {
		return g.parent.Get(o)
	}
	r, err := o.Subtract(g.target)
	if err != nil {
		return zero, err
	}
	inside, rest, err := locate(g.content, r)
	switch {
	case err != nil:
		return zero, err
	case inside:
		return g.content.Get(r)
	}
	return g.parent.Get(g.target.Add(rest))
}

// skipGenerator elides the positions [start, end) of its parent.
type skipGenerator[T any] struct {
	base[T]
	relay[T]
	parent     *Sequence[T]
	start, end transfinite.Ordinal
}

func newSkipGenerator[T any](parent *Sequence[T], start, end transfinite.Ordinal) *skipGenerator[T] {
	return &skipGenerator[T]{
		base:   base[T]{kind: KindSkip},
		relay:  newRelay(prefix(parent, start), suffix(parent, end)),
		parent: parent,
		start:  start,
		end:    end,
	}
}

func (g *skipGenerator[T]) getNext() (T, error) {
	return g.next(g.kind)
}

func (g *skipGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	if o.Less(g.start) {
		return g.parent.Get(o)
	}
	r, err := o.Subtract(g.start)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.parent.Get(g.end.Add(r))
}

// subSequenceGenerator serves the positions [start, end) of its parent.
type subSequenceGenerator[T any] struct {
	base[T]
	relay[T]
	parent     *Sequence[T]
	start, end transfinite.Ordinal
}

func newSubSequenceGenerator[T any](parent *Sequence[T], start, end transfinite.Ordinal) *subSequenceGenerator[T] {
	return &subSequenceGenerator[T]{
		base:   base[T]{kind: KindSubSequence},
		relay:  newRelay(span[T]{seq: parent, from: start, until: optional.Some(end)}),
		parent: parent,
		start:  start,
		end:    end,
	}
}

func (g *subSequenceGenerator[T]) getNext() (T, error) {
	return g.next(g.kind)
}

func (g *subSequenceGenerator[T]) get(o transfinite.Ordinal) (T, error) {
	pos := g.start.Add(o)
	if !pos.Less(g.end) {
		var zero T
		return zero, fmt.Errorf("%w: position %s past sub-sequence end %s", ErrIndexOutOfBounds, pos, g.end)
	}
	return g.parent.Get(pos)
}
