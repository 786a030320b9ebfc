package memo_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/lazy_ive_go/internal/memo"
	"github.com/on-the-ground/lazy_ive_go/transfinite"
	"github.com/stretchr/testify/assert"
)

func TestTable_BasicUsage(t *testing.T) {
	table := memo.New[string](4, 1)

	table.Store("a", "first")
	val, ok := table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "first", val)

	_, ok = table.Load("x")
	assert.False(t, ok)

	table.Store("a", "updated")
	val, ok = table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTable_RotationKeepsRecentGeneration(t *testing.T) {
	table := memo.New[int](2, 1)
	for i := 0; i < 5; i++ {
		table.Store(i, i*10)
	}

	// generations: {4} head, {2, 3} previous; {0, 1} dropped
	for _, i := range []int{2, 3, 4} {
		v, ok := table.Load(i)
		assert.Truef(t, ok, "key %d", i)
		assert.Equal(t, i*10, v)
	}
	for _, i := range []int{0, 1} {
		_, ok := table.Load(i)
		assert.Falsef(t, ok, "key %d", i)
	}
	assert.Equal(t, 3, table.Len())
}

func TestTable_ShardedStaysBounded(t *testing.T) {
	table := memo.New[int](16, 4)
	for i := 0; i < 1000; i++ {
		table.Store(i, i)
	}
	assert.LessOrEqual(t, table.Len(), 32)

	v, ok := table.Load(999)
	assert.True(t, ok)
	assert.Equal(t, 999, v)
}

func TestTable_StringerKeys(t *testing.T) {
	table := memo.New[string](8, 2)
	table.Store(transfinite.Omega().Successor(), "ω+1")

	v, ok := table.Load(transfinite.MustParseOrdinal("w+1"))
	assert.True(t, ok)
	assert.Equal(t, "ω+1", v)
	assert.Equal(t, "ω+1", memo.Key(transfinite.MustParseOrdinal("w+1")))
	assert.Equal(t, "12", memo.Key(12))
	assert.Equal(t, fmt.Sprint([]int{1}), memo.Key([]int{1}))
}

func TestNew_PanicsOnZeroSize(t *testing.T) {
	assert.Panics(t, func() { memo.New[int](0, 1) })
	assert.Panics(t, func() { memo.New[int](1, 0) })
}
