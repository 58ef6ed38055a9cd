package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theafzalhussain/velour-backend/models"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	Category    string   `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := []models.Product{} // empty catalogue serializes as [], not null
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// inStock defaults to true when the client does not send it
		inStock := true
		if input.InStock != nil {
			inStock = *input.InStock
		}

		product := models.Product{
			Name:        input.Name,
			Price:       *input.Price,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Category:    input.Category,
			InStock:     inStock,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
