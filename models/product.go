package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `gorm:"not null" json:"imageUrl"` // Cloudinary URL
	Category    string    `json:"category"`
	InStock     bool      `gorm:"default:true" json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}
