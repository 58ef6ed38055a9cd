package paymentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/config/paypal
// The PayPal JS SDK only needs the public client ID; an unset ID yields an
// empty body.
func PayPalConfigHandler(clientID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, clientID)
	}
}
