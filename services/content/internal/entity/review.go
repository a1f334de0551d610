package entity

import "time"

type ReviewStatus string

const (
	ReviewStatusReview    ReviewStatus = "REVIEW"
	ReviewStatusPublished ReviewStatus = "PUBLISHED"
)

type ProductReview struct {
	ID            string       `json:"id"`
	ProductTitle  string       `json:"product_title"`
	ProductImage  string       `json:"product_image"`
	ProductLink   string       `json:"product_link"`
	Rating        float64      `json:"rating"`
	ReviewContent string       `json:"review_content"`
	Status        ReviewStatus `json:"status"`
	PostID        *string      `json:"post_id"`
	Post          *PostRef     `json:"post,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// PostRef is the owning post summary attached to queued reviews.
type PostRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type NewReview struct {
	ProductTitle  string        `json:"product_title"`
	ProductImage  string        `json:"product_image"`
	ProductLink   string        `json:"product_link"`
	Rating        *float64      `json:"rating"`
	ReviewContent string        `json:"review_content"`
	Status        *ReviewStatus `json:"status"`
	PostID        *string       `json:"post_id"`
}

type ReviewPatch struct {
	ProductTitle  *string       `json:"product_title"`
	ProductImage  *string       `json:"product_image"`
	ProductLink   *string       `json:"product_link"`
	Rating        *float64      `json:"rating"`
	ReviewContent *string       `json:"review_content"`
	Status        *ReviewStatus `json:"status"`
	PostID        *string       `json:"post_id"`
}
