package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhi-R-04/OIBSIP/models"
	"github.com/Abhi-R-04/OIBSIP/pricing"
)

func testCatalog() pricing.Catalog {
	return pricing.NewCatalog([]models.Variant{
		{ID: 1, Name: "Thin Crust", Category: models.CategoryBase, Price: 100, Stock: 50, Threshold: 20},
		{ID: 1, Name: "Marinara", Category: models.CategorySauce, Price: 20, Stock: 50, Threshold: 20},
		{ID: 2, Name: "Pesto", Category: models.CategorySauce, Price: 25, Stock: 5, Threshold: 20}, // disabled
		{ID: 1, Name: "Mozzarella", Category: models.CategoryCheese, Price: 30, Stock: 50, Threshold: 20},
		{ID: 1, Name: "Olives", Category: models.CategoryVeggie, Price: 10, Stock: 50, Threshold: 20},
	})
}

func testMenu() map[uint]models.Pizza {
	return map[uint]models.Pizza{
		1: {ID: 1, Name: "Margherita", Price: 250},
		2: {ID: 2, Name: "Farmhouse", Price: 320},
	}
}

func TestBuildOrderItemsMixedLines(t *testing.T) {
	items, total, err := buildOrderItems(testCatalog(), testMenu(), []CheckoutItem{
		{PizzaID: 1, Quantity: 2},
		{Custom: &models.Composition{BaseID: 1, SauceID: 1, CheeseID: 1}, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, uint(1), items[0].PizzaID)
	assert.Equal(t, 250.0, items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)

	assert.NotNil(t, items[1].Custom)
	assert.Equal(t, 202.0, items[1].UnitPrice) // 2 + 100 + 20*2 + 30*2

	assert.Equal(t, 702.0, total) // 2*250 + 202
}

func TestBuildOrderItemsServerPriceMatchesEngine(t *testing.T) {
	cat := testCatalog()
	comp := models.Composition{
		BaseID: 1, SauceID: 1, CheeseID: 1,
		VeggieIDs:     []uint{1},
		VeggieDensity: map[uint]string{1: "extra"},
	}

	items, total, err := buildOrderItems(cat, testMenu(), []CheckoutItem{
		{Custom: &comp, Quantity: 1},
	})
	require.NoError(t, err)

	// The authoritative evaluation is the same engine a display client runs:
	// identical inputs must give byte-identical prices.
	assert.Equal(t, pricing.Price(cat, comp), items[0].UnitPrice)
	assert.Equal(t, pricing.Price(cat, comp), total)
}

func TestBuildOrderItemsRejectsIncompleteComposition(t *testing.T) {
	_, _, err := buildOrderItems(testCatalog(), testMenu(), []CheckoutItem{
		{Custom: &models.Composition{BaseID: 1, CheeseID: 1}, Quantity: 1},
	})
	var missing *pricing.MissingSlotError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "sauce", missing.Slot)
}

func TestBuildOrderItemsRejectsDisabledVariant(t *testing.T) {
	// Valid menu line first: a later invalid line still rejects everything.
	_, _, err := buildOrderItems(testCatalog(), testMenu(), []CheckoutItem{
		{PizzaID: 1, Quantity: 1},
		{Custom: &models.Composition{BaseID: 1, SauceID: 2, CheeseID: 1}, Quantity: 1},
	})
	var disabled *pricing.DisabledVariantError
	require.ErrorAs(t, err, &disabled)
	assert.Equal(t, "Pesto", disabled.Variant.Name)
}

func TestBuildOrderItemsUnknownPizza(t *testing.T) {
	_, _, err := buildOrderItems(testCatalog(), testMenu(), []CheckoutItem{
		{PizzaID: 99, Quantity: 1},
	})
	var notFound *PizzaNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(99), notFound.PizzaID)
}

func TestBuildOrderItemsEmptyAndBadQuantity(t *testing.T) {
	_, _, err := buildOrderItems(testCatalog(), testMenu(), nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, _, err = buildOrderItems(testCatalog(), testMenu(), []CheckoutItem{
		{PizzaID: 1, Quantity: 0},
	})
	assert.Error(t, err)
}

func TestBuildOrderItemsMenuPizzasAreNotAvailabilityGated(t *testing.T) {
	// Menu pizzas carry no stock concept; they price unconditionally even
	// when every variant in the catalog is disabled.
	cat := pricing.NewCatalog([]models.Variant{
		{ID: 1, Category: models.CategoryBase, Price: 100, Stock: 0, Threshold: 20},
	})
	items, total, err := buildOrderItems(cat, testMenu(), []CheckoutItem{
		{PizzaID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 320.0, total)
	assert.Len(t, items, 1)
}

func TestCheckoutStatusMapping(t *testing.T) {
	assert.Equal(t, 409, checkoutStatus(&pricing.DisabledVariantError{Slot: "sauce"}))
	assert.Equal(t, 400, checkoutStatus(&pricing.MissingSlotError{Slot: "base"}))
	assert.Equal(t, 400, checkoutStatus(ErrEmptyOrder))
}
