package models

// VariantCategory partitions the ingredient catalog. Categories are a closed
// set; every variant belongs to exactly one.
type VariantCategory string

const (
	CategoryBase   VariantCategory = "base"
	CategorySauce  VariantCategory = "sauce"
	CategoryCheese VariantCategory = "cheese"
	CategoryVeggie VariantCategory = "veggie"
)

// Variant is one purchasable ingredient option (a base, sauce, cheese or
// veggie) with live inventory counters.
type Variant struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	Category  VariantCategory `gorm:"type:VARCHAR(10);index;not null" json:"category"`
	Price     float64         `gorm:"not null" json:"price"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	Threshold int             `gorm:"not null;default:0" json:"threshold"`
}

// IsDisabled reports whether the variant has fallen below its low-stock
// threshold and must not be selectable. Never stored; recompute on every
// catalog read so a stale flag can't survive an inventory save.
// Boundary: stock == threshold is still available.
func (v Variant) IsDisabled() bool {
	return v.Stock < v.Threshold
}
