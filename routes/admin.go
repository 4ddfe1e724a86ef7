package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Abhi-R-04/OIBSIP/controllers/cart"
	catalogControllers "github.com/Abhi-R-04/OIBSIP/controllers/catalog"
	inventoryControllers "github.com/Abhi-R-04/OIBSIP/controllers/inventory"
	orderControllers "github.com/Abhi-R-04/OIBSIP/controllers/order"
	userControllers "github.com/Abhi-R-04/OIBSIP/controllers/user"
	"github.com/Abhi-R-04/OIBSIP/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Inventory Management ───────────
		inventory := adminGroup.Group("/inventory")
		{
			inventory.GET("/variants", inventoryControllers.GetVariants(db))
			inventory.PUT("/variants", inventoryControllers.SaveVariants(db))
			inventory.POST("/variants", inventoryControllers.CreateVariant(db))
			inventory.DELETE("/variants/:id", inventoryControllers.DeleteVariant(db))
			inventory.GET("/export", inventoryControllers.ExportVariantsToExcel(db))
		}

		// ─────────── Menu Management ───────────
		pizzaAdmin := adminGroup.Group("/pizzas")
		{
			pizzaAdmin.POST("", catalogControllers.CreatePizza(db))
			pizzaAdmin.PUT("/:id", catalogControllers.UpdatePizza(db))
			pizzaAdmin.DELETE("/:id", catalogControllers.DeletePizza(db))
		}

		// ─────────── Order Workflow ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// ─────────── Users ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
	}
}
