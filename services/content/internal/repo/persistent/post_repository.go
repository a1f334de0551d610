package persistent

import (
	"context"
	"time"

	"affiliate-blog/pkg/models"
	"affiliate-blog/services/content/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostFilter narrows List. A nil Status lists every post; Limit <= 0 means
// no limit.
type PostFilter struct {
	Status *entity.PostStatus
	Limit  int
	Offset int
	// ByUpdated orders by updated_at instead of created_at.
	ByUpdated bool
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	ListSlugs(ctx context.Context) ([]string, error)
	List(ctx context.Context, filter PostFilter) ([]*entity.Post, error)
	ListReviewQueue(ctx context.Context) ([]*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status entity.PostStatus) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(postModel).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return err
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ProductReviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_reviews.created_at DESC")
		}).
		Preload("FeaturedProducts", func(db *gorm.DB) *gorm.DB {
			return db.Order("featured_products.created_at ASC")
		})
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel models.Post
	if err := r.preloaded(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var postModel models.Post
	if err := r.preloaded(ctx).Where("slug = ?", slug).First(&postModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) ListSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]*entity.Post, error) {
	var postModels []models.Post

	order := "created_at DESC"
	if filter.ByUpdated {
		order = "updated_at DESC"
	}
	query := r.db.WithContext(ctx).Order(order)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// ListReviewQueue returns posts awaiting approval with only their pending
// reviews attached, newest first.
func (r *postRepository) ListReviewQueue(ctx context.Context) ([]*entity.Post, error) {
	var postModels []models.Post
	err := r.db.WithContext(ctx).
		Preload("ProductReviews", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", string(entity.ReviewStatusReview)).Order("product_reviews.created_at DESC")
		}).
		Where("status = ?", string(entity.PostStatusReview)).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	postModel.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&models.Post{ID: post.ID}).
		Select("title", "slug", "excerpt", "content", "hero_image", "status",
			"seo_title", "seo_description", "seo_keywords", "focus_keyword", "reading_time", "updated_at").
		Updates(postModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrDuplicateSlug
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}

	post.UpdatedAt = postModel.UpdatedAt
	return nil
}

// Delete removes the post's reviews, then its featured products, then the
// post itself, in one transaction.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.ProductReview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.FeaturedProduct{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
}

func (r *postRepository) CountByStatus(ctx context.Context, status entity.PostStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}
