package buffer_test

import (
	"testing"

	"github.com/on-the-ground/lazy_ive_go/shared/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_AppendPrependAcrossGrowth(t *testing.T) {
	b := buffer.New[int](0)
	for i := 0; i < 100; i++ {
		b.Append(i)
		b.Prepend(-i - 1)
	}
	require.Equal(t, 200, b.Len())

	first, err := b.At(0)
	require.NoError(t, err)
	assert.Equal(t, -100, first)

	last, err := b.At(199)
	require.NoError(t, err)
	assert.Equal(t, 99, last)
}

func TestBuffer_PrependKeepsArgumentOrder(t *testing.T) {
	b := buffer.FromSlice([]string{"c"})
	b.Prepend("a", "b")
	assert.Equal(t, []string{"a", "b", "c"}, b.Slice())
}

func TestBuffer_ZeroValueIsUsable(t *testing.T) {
	var b buffer.Buffer[int]
	assert.True(t, b.IsEmpty())
	b.Prepend(2)
	b.Append(3)
	b.Prepend(1)
	assert.Equal(t, []int{1, 2, 3}, b.Slice())
}

func TestBuffer_InsertAt(t *testing.T) {
	b := buffer.FromSlice([]int{0, 1, 2, 5, 5, 63, 44})
	require.NoError(t, b.InsertAt(3, 228))
	assert.Equal(t, []int{0, 1, 2, 228, 5, 5, 63, 44}, b.Slice())

	require.NoError(t, b.InsertAt(b.Len(), 7, 8))
	assert.Equal(t, []int{0, 1, 2, 228, 5, 5, 63, 44, 7, 8}, b.Slice())

	assert.ErrorIs(t, b.InsertAt(11, 1), buffer.ErrIndexOutOfBounds)
	assert.ErrorIs(t, b.InsertAt(-1, 1), buffer.ErrIndexOutOfBounds)
}

func TestBuffer_RemoveSetSwap(t *testing.T) {
	b := buffer.FromSlice([]int{1, 2, 3, 4})

	v, err := b.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 3, 4}, b.Slice())

	require.NoError(t, b.SetAt(0, 10))
	require.NoError(t, b.Swap(0, 2))
	assert.Equal(t, []int{4, 3, 10}, b.Slice())

	_, err = b.RemoveAt(3)
	assert.ErrorIs(t, err, buffer.ErrIndexOutOfBounds)
	assert.ErrorIs(t, b.SetAt(3, 0), buffer.ErrIndexOutOfBounds)
	assert.ErrorIs(t, b.Swap(0, 3), buffer.ErrIndexOutOfBounds)
}

func TestBuffer_AtOutOfBounds(t *testing.T) {
	b := buffer.FromSlice([]int{1})
	_, err := b.At(1)
	assert.ErrorIs(t, err, buffer.ErrIndexOutOfBounds)
	_, err = b.At(-1)
	assert.ErrorIs(t, err, buffer.ErrIndexOutOfBounds)
}

func TestBuffer_SubArrayAndConcat(t *testing.T) {
	b := buffer.FromSlice([]int{1, 2, 3, 4, 5})

	sub, err := b.SubArray(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, sub.Slice())

	empty, err := b.SubArray(2, 2)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = b.SubArray(3, 6)
	assert.ErrorIs(t, err, buffer.ErrIndexOutOfBounds)
	_, err = b.SubArray(3, 2)
	assert.ErrorIs(t, err, buffer.ErrIndexOutOfBounds)

	joined := sub.Concat(buffer.FromSlice([]int{9}))
	assert.Equal(t, []int{2, 3, 4, 9}, joined.Slice())
	assert.Equal(t, []int{2, 3, 4}, sub.Slice())
}

func TestBuffer_EvictFront(t *testing.T) {
	b := buffer.FromSlice([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 2, b.EvictFront(2))
	assert.Equal(t, []int{3, 4, 5}, b.Slice())
	assert.Equal(t, 3, b.EvictFront(10))
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.EvictFront(1))

	b.Append(6)
	assert.Equal(t, []int{6}, b.Slice())
}

func TestBuffer_CopyVariantsLeaveReceiverUntouched(t *testing.T) {
	b := buffer.FromSlice([]int{1, 2, 3})

	assert.Equal(t, []int{1, 2, 3, 4}, b.Appended(4).Slice())
	assert.Equal(t, []int{0, 1, 2, 3}, b.Prepended(0).Slice())

	ins, err := b.Inserted(1, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 9, 2, 3}, ins.Slice())

	rem, err := b.Removed(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, rem.Slice())

	rep, err := b.Replaced(2, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 7}, rep.Slice())

	sw, err := b.Swapped(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, sw.Slice())

	_, err = b.Removed(5)
	assert.ErrorIs(t, err, buffer.ErrIndexOutOfBounds)

	assert.Equal(t, []int{1, 2, 3}, b.Slice())
}
