package config

import (
	"fmt"
	"os"
)

// AllowedOrigins is the fixed set of browser origins permitted to call the API.
// Requests without an Origin header (same-origin, curl, mobile clients) bypass
// the check entirely.
var AllowedOrigins = []string{
	"http://localhost:3000",
	"https://velour-premium.netlify.app",
}

// Config holds all environment-sourced settings. It is built once in main and
// passed into the router so nothing reads the environment at request time.
type Config struct {
	DatabaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	StripeSecretKey string
	PayPalClientID  string
	JWTSecret       string
	Port            string
}

func Load() *Config {
	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		PayPalClientID:  os.Getenv("PAYPAL_CLIENT_ID"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Port:            os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// DSN returns the Postgres connection string. DATABASE_URL wins when set,
// otherwise the string is assembled from the discrete DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
