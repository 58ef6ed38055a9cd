package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/theafzalhussain/velour-backend/config"
	paymentControllers "github.com/theafzalhussain/velour-backend/controllers/payment"
)

func SetupPaymentRoutes(r *gin.Engine, cfg *config.Config) {
	r.POST("/api/create-payment-intent", paymentControllers.CreatePaymentIntentHandler())
	r.GET("/api/config/paypal", paymentControllers.PayPalConfigHandler(cfg.PayPalClientID))
}
