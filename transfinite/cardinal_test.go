package transfinite_test

import (
	"testing"

	"github.com/on-the-ground/lazy_ive_go/transfinite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardinal_Absorption(t *testing.T) {
	aleph0 := transfinite.Countable()
	five := transfinite.CardinalOf(5)

	assert.True(t, aleph0.Add(five).Equal(aleph0))
	assert.True(t, five.Add(aleph0).Equal(aleph0))
	assert.True(t, aleph0.Multiply(five).Equal(aleph0))
	assert.True(t, aleph0.Add(transfinite.Continuum()).Equal(transfinite.Continuum()))
	assert.True(t, five.Add(transfinite.CardinalOf(6)).Equal(transfinite.CardinalOf(11)))
	assert.True(t, five.Multiply(transfinite.CardinalOf(6)).Equal(transfinite.CardinalOf(30)))
}

func TestCardinal_Order(t *testing.T) {
	assert.True(t, transfinite.CardinalOf(1_000_000).Less(transfinite.Countable()))
	assert.True(t, transfinite.Countable().Less(transfinite.Continuum()))
	assert.Equal(t, 0, transfinite.CardinalOf(3).Compare(transfinite.CardinalOf(3)))
}

func TestCardinal_Subtract(t *testing.T) {
	got, err := transfinite.CardinalOf(5).Subtract(transfinite.CardinalOf(2))
	require.NoError(t, err)
	assert.True(t, got.Equal(transfinite.CardinalOf(3)))

	got, err = transfinite.Countable().Subtract(transfinite.CardinalOf(2))
	require.NoError(t, err)
	assert.True(t, got.Equal(transfinite.Countable()))

	got, err = transfinite.Countable().Subtract(transfinite.Countable())
	require.NoError(t, err)
	assert.True(t, got.Equal(transfinite.CardinalOf(0)))

	_, err = transfinite.CardinalOf(2).Subtract(transfinite.CardinalOf(5))
	assert.ErrorIs(t, err, transfinite.ErrTransfiniteArithmetic)

	_, err = transfinite.Countable().Subtract(transfinite.Continuum())
	assert.ErrorIs(t, err, transfinite.ErrTransfiniteArithmetic)
}

func TestCardinalityOf(t *testing.T) {
	assert.True(t, transfinite.CardinalityOf(transfinite.OrdinalOf(8)).Equal(transfinite.CardinalOf(8)))
	assert.True(t, transfinite.CardinalityOf(transfinite.MustParseOrdinal("w^2+3")).Equal(transfinite.Countable()))
}

func TestCardinal_FiniteCount(t *testing.T) {
	n, err := transfinite.CardinalOf(9).FiniteCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(9), n)

	_, err = transfinite.Continuum().FiniteCount()
	assert.ErrorIs(t, err, transfinite.ErrInvalidType)
}
