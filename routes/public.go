package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abhi-R-04/OIBSIP/auth"
	catalogControllers "github.com/Abhi-R-04/OIBSIP/controllers/catalog"
	orderControllers "github.com/Abhi-R-04/OIBSIP/controllers/order"
)

// SetupPublicRoutes registers everything reachable without a token: auth and
// the browsable menu/customize catalog.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", auth.Register(db))
			authGroup.POST("/login", auth.Login(db))
		}

		// ──────────────── Storefront Catalog ────────────────
		api.GET("/customize", catalogControllers.GetCustomizeCatalog(db))
		api.GET("/pizzas", catalogControllers.GetPizzas(db))
		api.GET("/pizzas/:id", catalogControllers.GetPizzaByID(db))

		// websocket endpoint for real-time order updates (admin console)
		api.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
	}
}
