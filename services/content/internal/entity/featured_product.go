package entity

import "time"

type FeaturedProduct struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	ProductLink  string    `json:"product_link"`
	Price        string    `json:"price,omitempty"`
	Rating       float64   `json:"rating"`
	Description  string    `json:"description"`
	PostID       string    `json:"post_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type NewFeaturedProduct struct {
	ProductName  string   `json:"product_name"`
	ProductImage string   `json:"product_image"`
	ProductLink  string   `json:"product_link"`
	Price        string   `json:"price"`
	Rating       *float64 `json:"rating"`
	Description  string   `json:"description"`
	PostID       string   `json:"post_id"`
}

type FeaturedProductPatch struct {
	ProductName  *string  `json:"product_name"`
	ProductImage *string  `json:"product_image"`
	ProductLink  *string  `json:"product_link"`
	Price        *string  `json:"price"`
	Rating       *float64 `json:"rating"`
	Description  *string  `json:"description"`
}
