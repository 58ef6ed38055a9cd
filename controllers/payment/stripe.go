package paymentControllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

type CreatePaymentIntentRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}

// MinorUnits converts a decimal currency amount to the smallest denomination
// Stripe expects, rounding to the nearest integer.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// POST /api/create-payment-intent
// One call, no idempotency key, no retry: a client retry after a network
// failure may create a duplicate pending charge.
func CreatePaymentIntentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		currency := req.Currency
		if currency == "" {
			currency = "usd"
		}

		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(MinorUnits(req.Amount)),
			Currency: stripe.String(currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}

		pi, err := paymentintent.New(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": pi.ClientSecret})
	}
}
