package models

import (
	"time"

	"gorm.io/gorm"
)

// Pizza is a fixed menu item with a flat price. Menu pizzas are not gated by
// variant availability; only custom compositions are.
type Pizza struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	ImageURL    string         `json:"imageUrl"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
