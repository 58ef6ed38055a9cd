package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/theafzalhussain/velour-backend/config"
	"gorm.io/gorm"
)

// NewRouter builds the engine: origin guard first, then every route group.
// The allow-list and secrets come in through cfg, never from the environment
// at request time.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  config.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// liveness probe
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "VELOUR Premium API is Live and Running...")
	})

	SetupProductRoutes(r, db)
	SetupAuthRoutes(r, db, cfg)
	SetupOrderRoutes(r, db)
	SetupPaymentRoutes(r, cfg)

	return r
}
