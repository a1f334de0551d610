package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Excerpt        string    `gorm:"type:text" json:"excerpt"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	HeroImage      string    `gorm:"type:varchar(1000)" json:"hero_image"`
	Status         string    `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	SEOTitle       string    `gorm:"column:seo_title;type:varchar(255)" json:"seo_title"`
	SEODescription string    `gorm:"column:seo_description;type:text" json:"seo_description"`
	SEOKeywords    string    `gorm:"column:seo_keywords;type:text" json:"seo_keywords"`
	FocusKeyword   string    `gorm:"type:varchar(255)" json:"focus_keyword"`
	ReadingTime    *int      `json:"reading_time"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	ProductReviews   []ProductReview   `gorm:"foreignKey:PostID" json:"product_reviews,omitempty"`
	FeaturedProducts []FeaturedProduct `gorm:"foreignKey:PostID" json:"featured_products,omitempty"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
