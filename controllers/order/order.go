package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theafzalhussain/velour-backend/models"
	"gorm.io/gorm"
)

// PlaceOrderRequest mirrors the order shape; nothing beyond well-formed JSON
// is enforced, store defaults fill the rest.
type PlaceOrderRequest struct {
	UserID       string          `json:"userId"`
	CustomerName string          `json:"customerName"`
	Items        models.ItemList `json:"items"`
	TotalAmount  float64         `json:"totalAmount"`
	Status       string          `json:"status"`
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := req.Status
		if status == "" {
			status = models.OrderStatusConfirmed
		}

		order := models.Order{
			UserID:       req.UserID,
			CustomerName: req.CustomerName,
			Items:        req.Items,
			TotalAmount:  req.TotalAmount,
			Status:       status,
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
