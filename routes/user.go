package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Abhi-R-04/OIBSIP/controllers/cart"
	orderControllers "github.com/Abhi-R-04/OIBSIP/controllers/order"
	paymentControllers "github.com/Abhi-R-04/OIBSIP/controllers/payment"
	userControllers "github.com/Abhi-R-04/OIBSIP/controllers/user"
	"github.com/Abhi-R-04/OIBSIP/middleware"
)

// SetupUserRoutes registers all JWT-protected endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		api.GET("/user", userControllers.GetUser(db))
		api.PUT("/user", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("/items", cartControllers.AddPizza(db))
			cartGroup.POST("/custom", cartControllers.AddCustom(db))
			cartGroup.POST("/items/:item_id/increment", cartControllers.IncrementItem(db))
			cartGroup.POST("/items/:item_id/decrement", cartControllers.DecrementItem(db))
			cartGroup.DELETE("/items/:item_id", cartControllers.RemoveItem(db))
			cartGroup.DELETE("", cartControllers.ClearCart(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		api.POST("/orders", orderControllers.PlaceOrderHandler(db))
		api.GET("/orders/mine", orderControllers.GetMyOrdersHandler(db))

		// ──────────────── Payment Verification ────────────────
		api.GET("/payments/verify", paymentControllers.VerifyPaymentHandler(db))
		api.POST("/payments/verify", paymentControllers.VerifyPaymentHandler(db))
	}
}
