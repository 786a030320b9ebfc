package lazy_test

import (
	"testing"

	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldl(t *testing.T) {
	sum, err := lazy.Foldl(lazy.FromSlice([]int{1, 2, 3, 4}), 0, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	assert.Equal(t, 10, sum)

	_, err = lazy.Foldl(naturals(t), 0, func(acc, v int) int { return acc + v })
	assert.ErrorIs(t, err, lazy.ErrInfiniteCalculation)
}

func TestFoldr(t *testing.T) {
	s := lazy.FromSlice([]string{"a", "b", "c"})
	joined, err := lazy.Foldr(s, "", func(v, acc string) string { return v + acc })
	require.NoError(t, err)
	assert.Equal(t, "abc", joined)

	rev, err := lazy.Foldl(s, "", func(acc, v string) string { return v + acc })
	require.NoError(t, err)
	assert.Equal(t, "cba", rev)

	_, err = lazy.Foldr(naturals(t), 0, func(v, acc int) int { return v + acc })
	assert.ErrorIs(t, err, lazy.ErrInfiniteCalculation)
}

func TestFold_OverFilteredFinite(t *testing.T) {
	evens := lazy.FromSlice([]int{1, 2, 3, 4, 5, 6}).Where(func(n int) bool { return n%2 == 0 })
	product, err := lazy.Foldl(evens, 1, func(acc, v int) int { return acc * v })
	require.NoError(t, err)
	assert.Equal(t, 48, product)
}
