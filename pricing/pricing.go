// Package pricing is the custom-pizza pricing and availability engine.
//
// It is deliberately pure arithmetic over a catalog snapshot: the browser
// storefront evaluates the same contract for live feedback, and the two
// evaluations must agree byte-for-byte at 2-decimal precision. Anything
// beyond stdlib math here would make that contract harder to mirror.
package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/Abhi-R-04/OIBSIP/models"
)

// BuildFee is the flat charge added to every custom pizza regardless of
// selection.
const BuildFee = 2.0

// Catalog is a point-in-time snapshot of the variant catalog, partitioned by
// category and keyed by id. Ids are unique within a category only; lookups
// always go through the category map.
type Catalog struct {
	Bases   map[uint]models.Variant
	Sauces  map[uint]models.Variant
	Cheeses map[uint]models.Variant
	Veggies map[uint]models.Variant
}

// NewCatalog partitions a flat variant list into a snapshot.
func NewCatalog(variants []models.Variant) Catalog {
	cat := Catalog{
		Bases:   make(map[uint]models.Variant),
		Sauces:  make(map[uint]models.Variant),
		Cheeses: make(map[uint]models.Variant),
		Veggies: make(map[uint]models.Variant),
	}
	for _, v := range variants {
		switch v.Category {
		case models.CategoryBase:
			cat.Bases[v.ID] = v
		case models.CategorySauce:
			cat.Sauces[v.ID] = v
		case models.CategoryCheese:
			cat.Cheeses[v.ID] = v
		case models.CategoryVeggie:
			cat.Veggies[v.ID] = v
		}
	}
	return cat
}

// Multiplier maps a density level to its price multiplier. Unrecognized
// levels (including "normal") scale by 2; the table is case-insensitive.
func Multiplier(level string) float64 {
	switch strings.ToLower(level) {
	case models.DensityLow, models.DensityLight:
		return 1
	case models.DensityExtra:
		return 3
	default:
		return 2
	}
}

// Round2 rounds to two decimals, half-up at the cent boundary. Both sides of
// the pricing contract must round exactly this way.
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// Price computes the price of a composition against a catalog snapshot.
//
// Total and never failing: unknown variant ids contribute 0 rather than
// erroring, so a stale selection still renders a price. Callers gate
// purchasability separately via Validate.
func Price(cat Catalog, comp models.Composition) float64 {
	total := BuildFee

	if base, ok := cat.Bases[comp.BaseID]; ok {
		total += base.Price
	}
	if sauce, ok := cat.Sauces[comp.SauceID]; ok {
		total += sauce.Price * Multiplier(comp.SauceDensity)
	}
	if cheese, ok := cat.Cheeses[comp.CheeseID]; ok {
		total += cheese.Price * Multiplier(comp.CheeseDensity)
	}
	for _, id := range comp.VeggieIDs {
		if veggie, ok := cat.Veggies[id]; ok {
			total += veggie.Price * Multiplier(comp.VeggieLevel(id))
		}
	}

	return Round2(total)
}

// MenuPrice returns a menu pizza's flat price. Menu items carry no
// availability gating.
func MenuPrice(p models.Pizza) float64 {
	return p.Price
}

// MissingSlotError reports an unfilled required slot.
type MissingSlotError struct {
	Slot string // "base", "sauce" or "cheese"
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf("no %s selected", e.Slot)
}

// DisabledVariantError reports a selected variant whose stock has fallen
// below its threshold.
type DisabledVariantError struct {
	Slot    string
	Variant models.Variant
}

func (e *DisabledVariantError) Error() string {
	return fmt.Sprintf("%s %q is currently unavailable", e.Slot, e.Variant.Name)
}

// Validate gates purchasability of a composition: base, sauce and cheese
// must all be selected, and no selected variant may be disabled. A price is
// still computable for an invalid composition (live display); adding to
// cart or checking out is what Validate refuses.
//
// Ids that match nothing in the snapshot pass the gate and price at zero,
// matching the lookup-or-zero pricing rule.
func Validate(cat Catalog, comp models.Composition) error {
	slots := []struct {
		name string
		id   uint
		pool map[uint]models.Variant
	}{
		{"base", comp.BaseID, cat.Bases},
		{"sauce", comp.SauceID, cat.Sauces},
		{"cheese", comp.CheeseID, cat.Cheeses},
	}
	for _, s := range slots {
		if s.id == 0 {
			return &MissingSlotError{Slot: s.name}
		}
		if v, ok := s.pool[s.id]; ok && v.IsDisabled() {
			return &DisabledVariantError{Slot: s.name, Variant: v}
		}
	}
	for _, id := range comp.VeggieIDs {
		if v, ok := cat.Veggies[id]; ok && v.IsDisabled() {
			return &DisabledVariantError{Slot: "veggie", Variant: v}
		}
	}
	return nil
}
