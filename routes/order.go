package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/theafzalhussain/velour-backend/controllers/order"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db))
		orders.GET("", orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderFeedHandler)
	}
}
