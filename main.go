package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
	"github.com/theafzalhussain/velour-backend/config"
	"github.com/theafzalhussain/velour-backend/models"
	"github.com/theafzalhussain/velour-backend/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("Starting VELOUR backend...")

	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()

	// A backend without its store would answer every request with a 500,
	// so a failed connection at startup is fatal.
	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	stripe.Key = cfg.StripeSecretKey

	r := routes.NewRouter(db, cfg)

	log.Printf("Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	return db
}
