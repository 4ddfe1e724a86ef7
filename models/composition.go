package models

// Density levels scale an ingredient's price contribution. Unrecognized
// levels fall back to the normal multiplier, so the type is a plain string
// rather than a closed enum.
const (
	DensityLow    = "low"
	DensityLight  = "light"
	DensityNormal = "normal"
	DensityExtra  = "extra"
)

// Composition is a customer's full custom-pizza selection: one variant per
// required slot, any number of veggies, and density settings. The zero id
// means the slot is unfilled.
//
// Stored verbatim (as JSON) on cart and order lines so an order keeps the
// exact selection it was priced from.
type Composition struct {
	BaseID    uint   `json:"base"`
	SauceID   uint   `json:"sauce"`
	CheeseID  uint   `json:"cheese"`
	VeggieIDs []uint `json:"veggies"`

	SauceDensity  string `json:"sauceDensity"`
	CheeseDensity string `json:"cheeseDensity"`
	// ToppingDensity is the global veggie density; a per-veggie entry in
	// VeggieDensity overrides it.
	ToppingDensity string          `json:"toppingDensity"`
	VeggieDensity  map[uint]string `json:"veggieDensity,omitempty"`
}

// VeggieLevel resolves the density level for one selected veggie:
// per-veggie override, else the global topping density, else normal.
func (c Composition) VeggieLevel(veggieID uint) string {
	if lvl, ok := c.VeggieDensity[veggieID]; ok && lvl != "" {
		return lvl
	}
	if c.ToppingDensity != "" {
		return c.ToppingDensity
	}
	return DensityNormal
}
