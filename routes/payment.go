package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/Abhi-R-04/OIBSIP/controllers/payment"
	"github.com/Abhi-R-04/OIBSIP/middleware"
)

// SetupPaymentRoutes registers the gateway-facing callback endpoint. The
// signature middleware handles sandbox/prod verification.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/api/payments/webhook",
		middleware.GatewayWebhookAuth(),
		paymentControllers.WebhookHandler(db),
	)
}
