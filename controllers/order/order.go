package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abhi-R-04/OIBSIP/gateway"
	"github.com/Abhi-R-04/OIBSIP/models"
	"github.com/Abhi-R-04/OIBSIP/pricing"
)

// -------- Request Structs --------

// CheckoutItem is one order line: a menu pizza reference or a custom
// composition, never both.
type CheckoutItem struct {
	PizzaID  uint                `json:"pizza,omitempty"`
	Custom   *models.Composition `json:"custom,omitempty"`
	Quantity int                 `json:"quantity"`
}

type CheckoutRequest struct {
	Items    []CheckoutItem `json:"items" binding:"required"`
	Address  string         `json:"address" binding:"required"`
	Currency string         `json:"currency"`
	// Amount is the client's display total. It is cross-checked and logged,
	// never charged; the server reprices every line.
	Amount float64 `json:"amount"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var ErrEmptyOrder = errors.New("order has no items")

// PizzaNotFoundError reports a menu line referencing an unknown pizza.
type PizzaNotFoundError struct {
	PizzaID uint
}

func (e *PizzaNotFoundError) Error() string {
	return fmt.Sprintf("pizza %d does not exist", e.PizzaID)
}

// -------- Core Logic --------

// buildOrderItems reprices the requested lines against the given catalog
// snapshot; this is the authoritative evaluation of the pricing contract.
// Any invalid composition or unknown menu pizza rejects the whole request;
// no partial order is created.
func buildOrderItems(catalog pricing.Catalog, pizzas map[uint]models.Pizza, items []CheckoutItem) ([]models.OrderItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, ErrEmptyOrder
	}

	var orderItems []models.OrderItem
	var total float64

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, 0, errors.New("quantity must be at least 1")
		}

		if item.Custom != nil {
			if err := pricing.Validate(catalog, *item.Custom); err != nil {
				return nil, 0, err
			}
			price := pricing.Price(catalog, *item.Custom)
			comp := *item.Custom
			orderItems = append(orderItems, models.OrderItem{
				Name:      "Custom Pizza",
				UnitPrice: price,
				Custom:    &comp,
				Quantity:  item.Quantity,
			})
			total += price * float64(item.Quantity)
			continue
		}

		pizza, ok := pizzas[item.PizzaID]
		if !ok {
			return nil, 0, &PizzaNotFoundError{PizzaID: item.PizzaID}
		}
		orderItems = append(orderItems, models.OrderItem{
			PizzaID:   pizza.ID,
			Name:      pizza.Name,
			UnitPrice: pricing.MenuPrice(pizza),
			Quantity:  item.Quantity,
		})
		total += pricing.MenuPrice(pizza) * float64(item.Quantity)
	}

	return orderItems, pricing.Round2(total), nil
}

func checkoutStatus(err error) int {
	var disabled *pricing.DisabledVariantError
	if errors.As(err, &disabled) {
		// The client priced against a stale catalog; the selection is no
		// longer purchasable.
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// -------- Handlers --------

// POST /api/orders
//
// Creates the order in payment_pending with the server-computed total fixed
// at creation, and returns the hosted-checkout session. The gateway call
// happens before the order row exists: if the gateway is unreachable the
// request fails closed with no order and no charge.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		var variants []models.Variant
		if err := db.Find(&variants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}
		catalog := pricing.NewCatalog(variants)

		var pizzaRows []models.Pizza
		if err := db.Find(&pizzaRows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}
		pizzas := make(map[uint]models.Pizza, len(pizzaRows))
		for _, p := range pizzaRows {
			pizzas[p.ID] = p
		}

		orderItems, total, err := buildOrderItems(catalog, pizzas, req.Items)
		if err != nil {
			c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
			return
		}

		if req.Amount != 0 && req.Amount != total {
			log.Printf("⚠️ client total %.2f disagrees with server total %.2f for user %s", req.Amount, total, userID)
		}

		currency := req.Currency
		if currency == "" {
			currency = "USD"
		}

		orderRef := uuid.NewString()
		paymentURL, paymentRef, err := gateway.CreateSession(
			orderRef, total, currency,
			fmt.Sprintf("Pizza order (%d items)", len(orderItems)),
			gateway.Customer{
				Name:     user.Name,
				Email:    user.Email,
				Phone:    user.Phone,
				Address:  req.Address,
				City:     user.Address.City,
				Country:  user.Address.Country,
				Postcode: user.Address.PostalCode,
			},
		)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			UserID:     userID,
			OrderRef:   orderRef,
			PaymentRef: paymentRef,
			Items:      orderItems,
			Address:    req.Address,
			Currency:   currency,
			Total:      total,
			Status:     models.OrderStatusPaymentPending,
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		BroadcastOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"order_id":    order.ID,
			"order_ref":   order.OrderRef,
			"payment_ref": paymentRef,
			"payment_url": paymentURL,
			"total":       total,
		})
	}
}

// GET /api/orders/mine
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/admin/orders/:orderID/status
//
// Sets an explicit target status. Any of the five values is accepted from
// any prior state; the workflow does not enforce forward-only moves.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		order.Status = newStatus
		BroadcastOrder(order)

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
