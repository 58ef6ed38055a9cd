package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/theafzalhussain/velour-backend/config"
	userControllers "github.com/theafzalhussain/velour-backend/controllers/user"
	"github.com/theafzalhussain/velour-backend/middleware"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", userControllers.Register(db, cfg.JWTSecret))
		auth.POST("/login", userControllers.Login(db, cfg.JWTSecret))
		auth.GET("/me", middleware.RequireAuth(cfg.JWTSecret), userControllers.GetUser(db))
	}
}
