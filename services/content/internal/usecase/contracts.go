package usecase

import (
	"context"
	"io"

	"affiliate-blog/pkg/queue"
	"affiliate-blog/services/content/internal/entity"
)

// ImageLookup finds a hero image URL for a topic.
type ImageLookup interface {
	RequestHeroImage(ctx context.Context, topic string) (string, error)
}

// TextGenerator writes articles and product reviews.
type TextGenerator interface {
	RequestArticle(ctx context.Context, topic string) (*entity.Article, error)
	RequestProductReview(ctx context.Context, title, description string) (*entity.ReviewDraft, error)
}

// ProductLookup searches the affiliate catalog.
type ProductLookup interface {
	SearchProducts(ctx context.Context, topic string) ([]entity.Product, error)
}

type EventPublisher interface {
	PublishContentEvent(ctx context.Context, event queue.ContentEvent) error
}

type MediaStore interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
}
