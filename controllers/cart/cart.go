package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abhi-R-04/OIBSIP/models"
	"github.com/Abhi-R-04/OIBSIP/pricing"
)

// loadCart fetches the caller's cart with its lines in stable order.
func loadCart(db *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("user_id = ?", userID).First(&cart).Error
	return cart, err
}

// saveCartItems persists the outcome of a pure cart mutation: rows that
// disappeared are deleted, surviving rows updated, new rows created.
func saveCartItems(tx *gorm.DB, cart *models.Cart, before []models.CartItem) error {
	kept := make(map[uint]bool, len(cart.Items))
	for i := range cart.Items {
		if id := cart.Items[i].ID; id != 0 {
			kept[id] = true
		}
	}
	for _, old := range before {
		if !kept[old.ID] {
			if err := tx.Delete(&models.CartItem{}, old.ID).Error; err != nil {
				return err
			}
		}
	}
	for i := range cart.Items {
		cart.Items[i].CartID = cart.CartID
		if err := tx.Save(&cart.Items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func userIDFrom(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			return
		}

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": pricing.Round2(cart.Total()),
		})
	}
}

type AddPizzaInput struct {
	PizzaID uint `json:"pizza_id" binding:"required"`
}

// POST /api/cart/items adds a menu pizza; an existing line for the same
// pizza is incremented.
func AddPizza(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			return
		}

		var input AddPizzaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var pizza models.Pizza
		if err := db.First(&pizza, input.PizzaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Pizza does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate pizza"})
			return
		}

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}

		before := append([]models.CartItem(nil), cart.Items...)
		cart.AddPizza(pizza)

		if err := db.Transaction(func(tx *gorm.DB) error {
			return saveCartItems(tx, &cart, before)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"items": cart.Items, "total": pricing.Round2(cart.Total())})
	}
}

// AddCustomInput carries the composition as-is; slot completeness is the
// validity gate's job, not the binder's.
type AddCustomInput struct {
	Composition models.Composition `json:"composition"`
}

// POST /api/cart/custom prices a composition against the live catalog and
// appends it. The price is computed here, server-side; the client's own
// estimate is display-only and never trusted.
func AddCustom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			return
		}

		var input AddCustomInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var variants []models.Variant
		if err := db.Find(&variants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}
		catalog := pricing.NewCatalog(variants)

		if err := pricing.Validate(catalog, input.Composition); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		price := pricing.Price(catalog, input.Composition)

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}

		before := append([]models.CartItem(nil), cart.Items...)
		cart.AddCustom(input.Composition, price)

		if err := db.Transaction(func(tx *gorm.DB) error {
			return saveCartItems(tx, &cart, before)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"price": price,
			"items": cart.Items,
			"total": pricing.Round2(cart.Total()),
		})
	}
}

// lineOp loads the cart, applies a pure mutation to the addressed line and
// persists the result. Shared by increment, decrement and remove.
func lineOp(db *gorm.DB, op func(cart *models.Cart, idx int) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}

		idx, found := cart.LineIndex(uint(itemID))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		before := append([]models.CartItem(nil), cart.Items...)
		if err := op(&cart, idx); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return saveCartItems(tx, &cart, before)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": pricing.Round2(cart.Total())})
	}
}

// POST /api/cart/items/:item_id/increment
func IncrementItem(db *gorm.DB) gin.HandlerFunc {
	return lineOp(db, func(cart *models.Cart, idx int) error { return cart.Increment(idx) })
}

// POST /api/cart/items/:item_id/decrement removes the line when quantity
// would drop to zero.
func DecrementItem(db *gorm.DB) gin.HandlerFunc {
	return lineOp(db, func(cart *models.Cart, idx int) error { return cart.Decrement(idx) })
}

// DELETE /api/cart/items/:item_id
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return lineOp(db, func(cart *models.Cart, idx int) error { return cart.Remove(idx) })
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /api/admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart.Items)
	}
}
