package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Table is a bounded memo of computed values. Entries are spread over
// shards by the xxhash of their key. Each shard keeps two generations: new
// entries go to the head generation, and once it reaches its share of
// maxSize the older generation is dropped and the roles swap. A lookup
// checks both generations, so the most recent entries always survive a
// rotation.
//
// Table is intentionally NOT thread-safe.
type Table[O any] struct {
	shards []shard[O]
}

type shard[O any] struct {
	memos   [2]map[string]O
	headIdx int
	maxSize int
}

// New returns a table holding roughly between maxSize and 2*maxSize
// entries spread over numShards shards.
func New[O any](maxSize, numShards int) *Table[O] {
	if maxSize <= 0 {
		panic("maxSize should be greater than 0")
	}
	if numShards <= 0 {
		panic("number of shards should be greater than 0")
	}
	numShards = min(numShards, maxSize)
	shards := make([]shard[O], numShards)
	for i := range shards {
		shards[i] = shard[O]{
			memos:   [2]map[string]O{{}, {}},
			maxSize: maxSize / numShards,
		}
	}
	return &Table[O]{shards: shards}
}

// Key renders k the way the table indexes it: Stringers by their String,
// anything else by its default format.
func Key(k any) string {
	switch v := k.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (t *Table[O]) shardOf(key string) *shard[O] {
	switch n := len(t.shards); n {
	case 1:
		return &t.shards[0]
	default:
		return &t.shards[xxhash.Sum64String(key)%uint64(n)]
	}
}

func (t *Table[O]) Load(k any) (O, bool) {
	key := Key(k)
	s := t.shardOf(key)
	if v, ok := s.memos[s.headIdx][key]; ok {
		return v, true
	}
	v, ok := s.memos[1-s.headIdx][key]
	return v, ok
}

func (t *Table[O]) Store(k any, value O) {
	key := Key(k)
	s := t.shardOf(key)
	head := s.memos[s.headIdx]
	if _, exists := head[key]; !exists && len(head) >= s.maxSize {
		s.headIdx = 1 - s.headIdx
		clear(s.memos[s.headIdx])
	}
	s.memos[s.headIdx][key] = value
}

// Len counts the entries currently reachable through Load.
func (t *Table[O]) Len() int {
	n := 0
	for i := range t.shards {
		s := &t.shards[i]
		n += len(s.memos[s.headIdx])
		for k := range s.memos[1-s.headIdx] {
			if _, dup := s.memos[s.headIdx][k]; !dup {
				n++
			}
		}
	}
	return n
}
