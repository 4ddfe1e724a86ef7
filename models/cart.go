package models

import (
	"errors"
	"time"
)

var ErrCartLineNotFound = errors.New("cart line not found")

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// CartItem is one cart line: either a menu pizza reference or a custom
// composition snapshot with the price it was computed at.
type CartItem struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	CartID    uint         `gorm:"index" json:"-"`
	PizzaID   uint         `json:"pizza_id,omitempty"` // 0 for custom lines
	Name      string       `json:"name"`
	UnitPrice float64      `json:"unit_price"`
	Custom    *Composition `gorm:"serializer:json" json:"custom,omitempty"`
	Quantity  int          `json:"quantity"`
	AddedAt   time.Time    `json:"added_at"`
}

func (i CartItem) IsCustom() bool {
	return i.Custom != nil
}

// AddPizza adds a menu pizza line. An existing line for the same pizza is
// incremented instead of duplicated.
func (c *Cart) AddPizza(p Pizza) {
	for idx := range c.Items {
		if !c.Items[idx].IsCustom() && c.Items[idx].PizzaID == p.ID {
			c.Items[idx].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		CartID:    c.CartID,
		PizzaID:   p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		AddedAt:   time.Now(),
	})
}

// AddCustom always appends a new line. Two identical-looking compositions
// may have been priced against different catalog snapshots, so custom lines
// are never merged.
func (c *Cart) AddCustom(comp Composition, price float64) {
	c.Items = append(c.Items, CartItem{
		CartID:    c.CartID,
		Name:      "Custom Pizza",
		UnitPrice: price,
		Custom:    &comp,
		Quantity:  1,
		AddedAt:   time.Now(),
	})
}

func (c *Cart) Increment(idx int) error {
	if idx < 0 || idx >= len(c.Items) {
		return ErrCartLineNotFound
	}
	c.Items[idx].Quantity++
	return nil
}

// Decrement lowers a line's quantity, removing the line entirely when it
// would drop to zero.
func (c *Cart) Decrement(idx int) error {
	if idx < 0 || idx >= len(c.Items) {
		return ErrCartLineNotFound
	}
	if c.Items[idx].Quantity <= 1 {
		return c.Remove(idx)
	}
	c.Items[idx].Quantity--
	return nil
}

func (c *Cart) Remove(idx int) error {
	if idx < 0 || idx >= len(c.Items) {
		return ErrCartLineNotFound
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	return nil
}

// LineIndex finds the position of a line by its row id.
func (c *Cart) LineIndex(itemID uint) (int, bool) {
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			return idx, true
		}
	}
	return 0, false
}

// Total sums unit price times quantity over all lines. Rounding to the cent
// happens at the pricing layer, not here.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
