package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductReview struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	ProductTitle  string    `gorm:"type:varchar(500);not null" json:"product_title"`
	ProductImage  string    `gorm:"type:varchar(1000)" json:"product_image"`
	ProductLink   string    `gorm:"type:varchar(1000)" json:"product_link"`
	Rating        float64   `gorm:"not null;default:5" json:"rating"`
	ReviewContent string    `gorm:"type:text;not null" json:"review_content"`
	Status        string    `gorm:"type:varchar(20);not null;default:'PUBLISHED';index" json:"status"`
	PostID        *string   `gorm:"type:uuid;index" json:"post_id"`
	Post          *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r *ProductReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
