package entity

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusReview    PostStatus = "REVIEW"
	PostStatusPublished PostStatus = "PUBLISHED"
)

type Post struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	Excerpt          string            `json:"excerpt"`
	Content          string            `json:"content"`
	HeroImage        string            `json:"hero_image"`
	Status           PostStatus        `json:"status"`
	SEOTitle         string            `json:"seo_title,omitempty"`
	SEODescription   string            `json:"seo_description,omitempty"`
	SEOKeywords      string            `json:"seo_keywords,omitempty"`
	FocusKeyword     string            `json:"focus_keyword,omitempty"`
	ReadingTime      *int              `json:"reading_time,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	ProductReviews   []ProductReview   `json:"product_reviews,omitempty"`
	FeaturedProducts []FeaturedProduct `json:"featured_products,omitempty"`
}

// PostPatch carries a partial admin edit; nil fields are left untouched.
type PostPatch struct {
	Title          *string     `json:"title"`
	Slug           *string     `json:"slug"`
	Excerpt        *string     `json:"excerpt"`
	Content        *string     `json:"content"`
	HeroImage      *string     `json:"hero_image"`
	Status         *PostStatus `json:"status"`
	SEOTitle       *string     `json:"seo_title"`
	SEODescription *string     `json:"seo_description"`
	SEOKeywords    *string     `json:"seo_keywords"`
	FocusKeyword   *string     `json:"focus_keyword"`
	ReadingTime    *int        `json:"reading_time"`
}

// NewPost is the input for a manually authored post.
type NewPost struct {
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	HeroImage      string `json:"hero_image"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	SEOKeywords    string `json:"seo_keywords"`
	FocusKeyword   string `json:"focus_keyword"`
}
