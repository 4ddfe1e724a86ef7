package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func margherita() Pizza {
	return Pizza{ID: 1, Name: "Margherita", Price: 250}
}

func farmhouse() Pizza {
	return Pizza{ID: 2, Name: "Farmhouse", Price: 320}
}

func TestAddPizzaMergesSameMenuLine(t *testing.T) {
	var cart Cart
	cart.AddPizza(margherita())
	cart.AddPizza(margherita())

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 500.0, cart.Total())
}

func TestAddPizzaKeepsDistinctMenuLinesApart(t *testing.T) {
	var cart Cart
	cart.AddPizza(margherita())
	cart.AddPizza(farmhouse())

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 570.0, cart.Total())
}

func TestAddCustomNeverMerges(t *testing.T) {
	var cart Cart
	comp := Composition{BaseID: 1, SauceID: 1, CheeseID: 1}

	cart.AddCustom(comp, 202)
	cart.AddCustom(comp, 202)

	require.Len(t, cart.Items, 2, "identical compositions may have been priced against different snapshots")
	for _, item := range cart.Items {
		assert.True(t, item.IsCustom())
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, 202.0, item.UnitPrice)
	}
}

func TestCustomLineDoesNotMergeIntoMenuLine(t *testing.T) {
	var cart Cart
	cart.AddCustom(Composition{BaseID: 1, SauceID: 1, CheeseID: 1}, 250)
	cart.AddPizza(margherita()) // same price, still a separate line

	require.Len(t, cart.Items, 2)
}

func TestIncrementAndDecrement(t *testing.T) {
	var cart Cart
	cart.AddPizza(margherita())

	require.NoError(t, cart.Increment(0))
	assert.Equal(t, 2, cart.Items[0].Quantity)

	require.NoError(t, cart.Decrement(0))
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestDecrementAtQuantityOneRemovesLine(t *testing.T) {
	var cart Cart
	cart.AddPizza(margherita())
	cart.AddPizza(farmhouse())

	require.NoError(t, cart.Decrement(0))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, farmhouse().ID, cart.Items[0].PizzaID)
	assert.Equal(t, 320.0, cart.Total(), "removed line no longer counts toward the total")
}

func TestRemoveLine(t *testing.T) {
	var cart Cart
	cart.AddPizza(margherita())
	cart.AddCustom(Composition{BaseID: 1, SauceID: 1, CheeseID: 1}, 202)

	require.NoError(t, cart.Remove(1))
	require.Len(t, cart.Items, 1)
	assert.False(t, cart.Items[0].IsCustom())
}

func TestLineOpsOutOfRange(t *testing.T) {
	var cart Cart
	assert.ErrorIs(t, cart.Increment(0), ErrCartLineNotFound)
	assert.ErrorIs(t, cart.Decrement(-1), ErrCartLineNotFound)
	assert.ErrorIs(t, cart.Remove(3), ErrCartLineNotFound)
}

func TestTotalMixedLines(t *testing.T) {
	var cart Cart
	cart.AddPizza(margherita())
	require.NoError(t, cart.Increment(0)) // 2 x 250
	cart.AddCustom(Composition{BaseID: 1, SauceID: 1, CheeseID: 1}, 214.55)

	assert.InDelta(t, 714.55, cart.Total(), 1e-9)
}

func TestLineIndex(t *testing.T) {
	cart := Cart{Items: []CartItem{{ID: 7, PizzaID: 1, Quantity: 1}, {ID: 9, PizzaID: 2, Quantity: 1}}}

	idx, ok := cart.LineIndex(9)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = cart.LineIndex(42)
	assert.False(t, ok)
}
