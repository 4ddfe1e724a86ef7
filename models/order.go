package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	// Kitchen workflow, in the order the storefront displays it. The admin
	// console may set any of these from any prior state; forward-only
	// enforcement is deliberately absent (operator flexibility).
	OrderStatusPaymentPending OrderStatus = "payment_pending" // created, payment not yet verified
	OrderStatusReceived       OrderStatus = "order_received"  // payment verified
	OrderStatusInKitchen      OrderStatus = "in_kitchen"
	OrderStatusSentToDelivery OrderStatus = "sent_to_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPaymentPending):
		return OrderStatusPaymentPending, nil
	case string(OrderStatusReceived):
		return OrderStatusReceived, nil
	case string(OrderStatusInKitchen):
		return OrderStatusInKitchen, nil
	case string(OrderStatusSentToDelivery):
		return OrderStatusSentToDelivery, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	// OrderRef is the join key with the payment gateway's transaction.
	OrderRef   string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	PaymentRef string      `json:"payment_ref"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Address    string      `gorm:"not null" json:"address"`
	Currency   string      `gorm:"type:VARCHAR(3);default:'USD'" json:"currency"`
	// Total is fixed at creation from the server-side repricing and never
	// recomputed afterwards.
	Total     float64     `gorm:"not null" json:"total"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'payment_pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem snapshots one cart line at checkout time: name and unit price as
// charged, plus the full composition for custom lines.
type OrderItem struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	OrderID   uint         `gorm:"index" json:"-"`
	PizzaID   uint         `json:"pizza_id,omitempty"`
	Name      string       `json:"name"`
	UnitPrice float64      `json:"unit_price"`
	Custom    *Composition `gorm:"serializer:json" json:"custom,omitempty"`
	Quantity  int          `json:"quantity"`
}
