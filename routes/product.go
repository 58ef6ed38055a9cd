package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/theafzalhussain/velour-backend/controllers/product"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.POST("", productcontroller.CreateProduct(db))
		products.GET("/export", productcontroller.ExportProductsToExcel(db))
	}
}
