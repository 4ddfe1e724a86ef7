package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront, user
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront + auth (no middleware)
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin console routes (API-key-protected)
	SetupAdminRoutes(r, db)

	// Payment gateway callbacks
	SetupPaymentRoutes(r, db)
}
