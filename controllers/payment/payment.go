package paymentControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Abhi-R-04/OIBSIP/controllers/order"
	"github.com/Abhi-R-04/OIBSIP/gateway"
	"github.com/Abhi-R-04/OIBSIP/models"
)

type VerifyRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// markOrderPaid advances a pending order to order_received and destroys the
// owner's cart, atomically. Idempotent on replay: an order already past
// pending is left alone.
func markOrderPaid(db *gorm.DB, order *models.Order) error {
	if order.Status != models.OrderStatusPaymentPending {
		return nil
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Update("status", models.OrderStatusReceived).Error; err != nil {
			return err
		}
		var cart models.Cart
		if err := tx.Where("user_id = ?", order.UserID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // nothing to clear
			}
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return err
	}
	order.Status = models.OrderStatusReceived
	orderControllers.BroadcastOrder(*order)
	return nil
}

// POST|GET /api/payments/verify
//
// The client-driven reconciliation step after the hosted checkout returns:
// one best-effort check call by the order's payment reference. Failure
// leaves the order in payment_pending so the caller may retry; nothing was
// reserved, so there is nothing to roll back.
func VerifyPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// The GET form carries ?order_id=; the POST form a JSON body.
		var req VerifyRequest
		if id := c.Query("order_id"); id != "" {
			parsed, err := strconv.ParseUint(id, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order_id"})
				return
			}
			req.OrderID = uint(parsed)
		} else if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ? AND user_id = ?", req.OrderID, userIDVal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		if order.Status != models.OrderStatusPaymentPending {
			// Already reconciled (verify retry or webhook won the race).
			c.JSON(http.StatusOK, gin.H{"success": true, "status": order.Status})
			return
		}

		paid, err := gateway.CheckTransaction(order.PaymentRef)
		if err != nil {
			log.Printf("❌ payment check failed for order %s: %v", order.OrderRef, err)
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "payment verification failed, please retry"})
			return
		}
		if !paid {
			c.JSON(http.StatusOK, gin.H{"success": false, "status": order.Status})
			return
		}

		if err := markOrderPaid(db, &order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": order.Status})
	}
}

// POST /api/payments/webhook
//
// Gateway-initiated reconciliation: the provider posts the transaction
// outcome keyed by our order reference. Signature verification happens in
// middleware. This path covers customers who never return from the hosted
// checkout to trigger verify.
func WebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form"})
			return
		}

		orderRef := c.PostForm("tran_cartid")
		statusCode := c.PostForm("tran_status")
		if orderRef == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing tran_cartid"})
			return
		}

		var order models.Order
		if err := db.First(&order, "order_ref = ?", orderRef).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "unknown order reference"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		if statusCode != "3" { // gateway.StatusPaid as the form encodes it
			log.Printf("⚠️ webhook reports unpaid status %q for order %s", statusCode, orderRef)
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		if err := markOrderPaid(db, &order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}
		log.Printf("✅ webhook settled order %s", orderRef)
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
