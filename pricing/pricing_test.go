package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhi-R-04/OIBSIP/models"
)

// fixedCatalog is the reference snapshot the conformance vectors are pinned
// against. The storefront client runs the same vectors against its own
// implementation of this contract.
func fixedCatalog() Catalog {
	return NewCatalog([]models.Variant{
		{ID: 1, Name: "Thin Crust", Category: models.CategoryBase, Price: 100, Stock: 50, Threshold: 20},
		{ID: 2, Name: "Cheese Burst", Category: models.CategoryBase, Price: 150, Stock: 50, Threshold: 20},
		{ID: 1, Name: "Marinara", Category: models.CategorySauce, Price: 20, Stock: 50, Threshold: 20},
		{ID: 2, Name: "Pesto", Category: models.CategorySauce, Price: 25, Stock: 10, Threshold: 20}, // disabled
		{ID: 1, Name: "Mozzarella", Category: models.CategoryCheese, Price: 30, Stock: 50, Threshold: 20},
		{ID: 1, Name: "Olives", Category: models.CategoryVeggie, Price: 10, Stock: 50, Threshold: 20},
		{ID: 2, Name: "Jalapeno", Category: models.CategoryVeggie, Price: 15, Stock: 20, Threshold: 20},   // boundary: available
		{ID: 3, Name: "Mushroom", Category: models.CategoryVeggie, Price: 12.55, Stock: 5, Threshold: 20}, // disabled
	})
}

func TestIsDisabled(t *testing.T) {
	assert.False(t, models.Variant{Stock: 21, Threshold: 20}.IsDisabled())
	assert.False(t, models.Variant{Stock: 20, Threshold: 20}.IsDisabled(), "stock == threshold stays available")
	assert.True(t, models.Variant{Stock: 19, Threshold: 20}.IsDisabled())
	assert.False(t, models.Variant{Stock: 0, Threshold: 0}.IsDisabled())
}

func TestMultiplierTable(t *testing.T) {
	assert.Equal(t, 1.0, Multiplier("low"))
	assert.Equal(t, 1.0, Multiplier("light"))
	assert.Equal(t, 3.0, Multiplier("extra"))
	assert.Equal(t, 2.0, Multiplier("normal"))
	assert.Equal(t, 2.0, Multiplier(""))
	assert.Equal(t, 2.0, Multiplier("triple"))
	assert.Equal(t, 1.0, Multiplier("LOW"), "levels are case-insensitive")
	assert.Equal(t, 3.0, Multiplier("Extra"))
}

// Conformance vectors: literal catalog+composition→price triples shared with
// the client-side implementation. Changing any expected value here is a
// contract change, not a test fix.
func TestPriceConformanceVectors(t *testing.T) {
	cat := fixedCatalog()

	vectors := []struct {
		name string
		comp models.Composition
		want float64
	}{
		{
			name: "base plus normal sauce and cheese",
			comp: models.Composition{BaseID: 1, SauceID: 1, CheeseID: 1},
			want: 202, // 2 + 100 + 20*2 + 30*2
		},
		{
			name: "one veggie at extra adds price times three",
			comp: models.Composition{
				BaseID: 1, SauceID: 1, CheeseID: 1,
				VeggieIDs:     []uint{1},
				VeggieDensity: map[uint]string{1: "extra"},
			},
			want: 232, // 202 + 10*3
		},
		{
			name: "low sauce and extra cheese",
			comp: models.Composition{
				BaseID: 1, SauceID: 1, CheeseID: 1,
				SauceDensity: "low", CheeseDensity: "extra",
			},
			want: 212, // 2 + 100 + 20*1 + 30*3
		},
		{
			name: "global topping density applies to veggies without override",
			comp: models.Composition{
				BaseID: 2, SauceID: 1, CheeseID: 1,
				VeggieIDs:      []uint{1, 2},
				ToppingDensity: "light",
			},
			want: 277, // 2 + 150 + 40 + 60 + 10*1 + 15*1
		},
		{
			name: "per-veggie override beats global density",
			comp: models.Composition{
				BaseID: 1, SauceID: 1, CheeseID: 1,
				VeggieIDs:      []uint{1, 2},
				ToppingDensity: "low",
				VeggieDensity:  map[uint]string{2: "extra"},
			},
			want: 257, // 202 + 10*1 + 15*3
		},
		{
			name: "fractional veggie price rounds half-up",
			comp: models.Composition{
				BaseID: 1, SauceID: 1, CheeseID: 1,
				VeggieIDs:      []uint{3},
				ToppingDensity: "low",
			},
			want: 214.55, // 202 + 12.55
		},
		{
			name: "unknown ids contribute zero",
			comp: models.Composition{BaseID: 99, SauceID: 99, CheeseID: 99, VeggieIDs: []uint{99}},
			want: 2, // build fee only
		},
		{
			name: "empty composition prices at the build fee",
			comp: models.Composition{},
			want: 2,
		},
		{
			name: "disabled variants still price for display",
			comp: models.Composition{BaseID: 1, SauceID: 2, CheeseID: 1},
			want: 212, // 2 + 100 + 25*2 + 30*2
		},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			assert.Equal(t, v.want, Price(cat, v.comp))
		})
	}
}

func TestPriceIsDeterministicAcrossEvaluations(t *testing.T) {
	cat := fixedCatalog()
	comp := models.Composition{
		BaseID: 2, SauceID: 1, CheeseID: 1,
		SauceDensity: "extra",
		VeggieIDs:    []uint{1, 2, 3},
		VeggieDensity: map[uint]string{
			2: "extra",
			3: "light",
		},
	}

	// Interactive and authoritative evaluations must agree exactly, not
	// approximately.
	first := Price(cat, comp)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Price(NewCatalog([]models.Variant{
			{ID: 1, Name: "Thin Crust", Category: models.CategoryBase, Price: 100, Stock: 50, Threshold: 20},
			{ID: 2, Name: "Cheese Burst", Category: models.CategoryBase, Price: 150, Stock: 50, Threshold: 20},
			{ID: 1, Name: "Marinara", Category: models.CategorySauce, Price: 20, Stock: 50, Threshold: 20},
			{ID: 2, Name: "Pesto", Category: models.CategorySauce, Price: 25, Stock: 10, Threshold: 20},
			{ID: 1, Name: "Mozzarella", Category: models.CategoryCheese, Price: 30, Stock: 50, Threshold: 20},
			{ID: 1, Name: "Olives", Category: models.CategoryVeggie, Price: 10, Stock: 50, Threshold: 20},
			{ID: 2, Name: "Jalapeno", Category: models.CategoryVeggie, Price: 15, Stock: 20, Threshold: 20},
			{ID: 3, Name: "Mushroom", Category: models.CategoryVeggie, Price: 12.55, Stock: 5, Threshold: 20},
		}), comp))
	}
}

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 0.38, Round2(0.375))
	assert.Equal(t, 2.63, Round2(2.625))
	assert.Equal(t, 1.0, Round2(1.004))
	assert.Equal(t, 202.0, Round2(202))
}

func TestValidateMissingSlots(t *testing.T) {
	cat := fixedCatalog()

	cases := []struct {
		comp models.Composition
		slot string
	}{
		{models.Composition{SauceID: 1, CheeseID: 1}, "base"},
		{models.Composition{BaseID: 1, CheeseID: 1}, "sauce"},
		{models.Composition{BaseID: 1, SauceID: 1}, "cheese"},
	}
	for _, tc := range cases {
		err := Validate(cat, tc.comp)
		var missing *MissingSlotError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, tc.slot, missing.Slot)
	}
}

func TestValidateDisabledVariants(t *testing.T) {
	cat := fixedCatalog()

	// Pesto (sauce 2) is below threshold.
	err := Validate(cat, models.Composition{BaseID: 1, SauceID: 2, CheeseID: 1})
	var disabled *DisabledVariantError
	require.ErrorAs(t, err, &disabled)
	assert.Equal(t, "sauce", disabled.Slot)
	assert.Equal(t, "Pesto", disabled.Variant.Name)

	// Mushroom (veggie 3) is below threshold.
	err = Validate(cat, models.Composition{BaseID: 1, SauceID: 1, CheeseID: 1, VeggieIDs: []uint{1, 3}})
	require.ErrorAs(t, err, &disabled)
	assert.Equal(t, "veggie", disabled.Slot)
	assert.Equal(t, "Mushroom", disabled.Variant.Name)
}

func TestValidateBoundaryAndUnknowns(t *testing.T) {
	cat := fixedCatalog()

	// Jalapeno sits exactly at its threshold and stays selectable.
	assert.NoError(t, Validate(cat, models.Composition{BaseID: 1, SauceID: 1, CheeseID: 1, VeggieIDs: []uint{2}}))

	// Unknown ids pass the gate; they priced at zero anyway.
	assert.NoError(t, Validate(cat, models.Composition{BaseID: 99, SauceID: 1, CheeseID: 1}))

	assert.NoError(t, Validate(cat, models.Composition{BaseID: 1, SauceID: 1, CheeseID: 1}))
}
