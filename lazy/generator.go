package lazy

import (
	"fmt"
	"sync/atomic"

	"github.com/on-the-ground/lazy_ive_go/shared/optional"
	"github.com/on-the-ground/lazy_ive_go/transfinite"
)

// Kind names a generator variant.
type Kind uint8

const (
	KindFinite Kind = iota
	KindInfinite
	KindAppend
	KindPrepend
	KindInsert
	KindSkip
	KindSubSequence
	KindConcat
	KindMap
	KindWhere
)

func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "Finite"
	case KindInfinite:
		return "Infinite"
	case KindAppend:
		return "Append"
	case KindPrepend:
		return "Prepend"
	case KindInsert:
		return "Insert"
	case KindSkip:
		return "Skip"
	case KindSubSequence:
		return "SubSequence"
	case KindConcat:
		return "Concat"
	case KindMap:
		return "Map"
	case KindWhere:
		return "Where"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Generator is a pull-based producer of T. The set of variants is closed:
// only this package implements it.
type Generator[T any] interface {
	Kind() Kind
	sealedGenerator(T)
}

// puller is the pull contract every variant implements.
type puller[T any] interface {
	hold() func()
	hasNext() (bool, error)
	getNext() (T, error)
	get(transfinite.Ordinal) (T, error)
}

// base is embedded by every variant.
type base[T any] struct {
	kind Kind
	busy atomic.Bool
}

func (b *base[T]) Kind() Kind {
	return b.kind
}

func (b *base[T]) sealedGenerator(T) {}

// hold marks the generator busy until the returned release is called.
func (b *base[T]) hold() func() {
	if !b.busy.CompareAndSwap(false, true) {
		panic(fmt.Errorf("%w: %s generator", ErrConcurrentPull, b.kind))
	}
	return func() { b.busy.Store(false) }
}

func resolve[T any](g Generator[T]) puller[T] {
	switch g := g.(type) {
	case *FiniteGenerator[T]:
		return g
	case *InfiniteGenerator[T]:
		return g
	case *appendGenerator[T]:
		return g
	case *prependGenerator[T]:
		return g
	case *insertGenerator[T]:
		return g
	case *skipGenerator[T]:
		return g
	case *subSequenceGenerator[T]:
		return g
	case *concatGenerator[T]:
		return g
	case *mapGenerator[T]:
		return g
	case *whereGenerator[T]:
		return g
	default:
		panic(fmt.Sprintf("unknown generator: %T", g))
	}
}

// probe is HasNext with the error kept.
func probe[T any](g Generator[T]) (bool, error) {
	p := resolve(g)
	defer p.hold()()
	return p.hasNext()
}

// GetNext advances g and returns the element it produced. It fails with
// ErrIndexOutOfBounds once g is exhausted.
func GetNext[T any](g Generator[T]) (T, error) {
	p := resolve(g)
	defer p.hold()()
	return p.getNext()
}

// Get fetches the element at position o without moving g forward.
func Get[T any](g Generator[T], o transfinite.Ordinal) (T, error) {
	p := resolve(g)
	defer p.hold()()
	return p.get(o)
}

// HasNext reports whether GetNext would succeed. It may pull ahead from
// parent sequences but never loses an element.
func HasNext[T any](g Generator[T]) bool {
	ok, err := probe(g)
	return ok && err == nil
}

// TryGetNext is GetNext that reports exhaustion and failures as an empty value.
func TryGetNext[T any](g Generator[T]) optional.Value[T] {
	p := resolve(g)
	defer p.hold()()
	if ok, err := p.hasNext(); !ok || err != nil {
		return optional.None[T]()
	}
	v, err := p.getNext()
	if err != nil {
		return optional.None[T]()
	}
	return optional.Some(v)
}

func exhausted(k Kind) error {
	return fmt.Errorf("%w: %s generator is exhausted", ErrIndexOutOfBounds, k)
}
