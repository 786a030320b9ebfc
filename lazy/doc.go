// Package lazy provides persistent, possibly infinite sequences that
// materialize elements only on demand.
//
// # Sequences
//
// A Sequence is built by a factory (Of, FromSlice, Recurrence, ...) and
// never changes its logical value afterwards. Every transformation
// (Append, InsertAt, Where, Map, ...) returns a new Sequence that refers to
// the old one; nothing is computed until an element is read.
//
// Each Sequence knows its size as a transfinite.Cardinal and, when it can be
// resolved, its ordinality: the transfinite.Ordinal bounding every position
// that can be fetched. Positions are ordinals too, so an element appended
// after an infinite sequence is reachable at ω:
//
//	nat, _ := lazy.Recurrence(1, func(w []int) int { return w[0] + 1 }, []int{0})
//	v, _ := nat.Append(-1).Get(transfinite.Omega()) // -1
//
// Filtering with Where makes the ordinality unknown; such a sequence can
// still be walked from the front but positional access past the realized
// prefix fails with ErrUnknownOrdinality.
//
// # Generators
//
// Elements are produced by a Generator, a closed family of ten pull-based
// variants reported by Kind. A generator is pulled through GetNext,
// HasNext, TryGetNext and Get. Generator state mutates on every pull, and
// a generator must be pulled by one caller at a time: overlapping pulls
// panic with ErrConcurrentPull.
//
// # Memoization
//
// Every Sequence memoizes what it pulled in a sliding window. When the
// window outgrows CacheConfig.MaxSize the oldest DecreaseSize elements are
// evicted and the logical offset moves forward. Reads behind the window are
// answered by the generator's positional fetch and remembered in a bounded
// recall table, so repeated reads do not re-run production functions.
//
// A Sequence is intentionally NOT thread-safe.
package lazy
