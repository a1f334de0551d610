package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeaturedProduct struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	ProductName  string    `gorm:"type:varchar(500);not null" json:"product_name"`
	ProductImage string    `gorm:"type:varchar(1000);not null" json:"product_image"`
	ProductLink  string    `gorm:"type:varchar(1000);not null" json:"product_link"`
	Price        string    `gorm:"type:varchar(50)" json:"price"`
	Rating       float64   `gorm:"not null;default:5" json:"rating"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	PostID       string    `gorm:"type:uuid;not null;index" json:"post_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *FeaturedProduct) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
