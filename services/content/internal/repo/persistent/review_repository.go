package persistent

import (
	"context"
	"time"

	"affiliate-blog/pkg/models"
	"affiliate-blog/services/content/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewFilter struct {
	Status *entity.ReviewStatus
	PostID string
	Limit  int
	Offset int
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.ProductReview) error
	GetByID(ctx context.Context, id string) (*entity.ProductReview, error)
	List(ctx context.Context, filter ReviewFilter) ([]*entity.ProductReview, error)
	ListQueue(ctx context.Context) ([]*entity.ProductReview, error)
	Update(ctx context.Context, review *entity.ProductReview) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status entity.ReviewStatus) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.ProductReview) error {
	reviewModel := ToReviewModel(review)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(reviewModel).Error; err != nil {
		return err
	}

	*review = *ToReviewEntity(reviewModel)
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.ProductReview, error) {
	var reviewModel models.ProductReview
	if err := r.db.WithContext(ctx).Preload("Post").Where("id = ?", id).First(&reviewModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToReviewEntity(&reviewModel), nil
}

func (r *reviewRepository) List(ctx context.Context, filter ReviewFilter) ([]*entity.ProductReview, error) {
	var reviewModels []models.ProductReview
	query := r.db.WithContext(ctx).Preload("Post").Order("created_at DESC")

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.PostID != "" {
		query = query.Where("post_id = ?", filter.PostID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	return toReviewEntities(reviewModels), nil
}

// ListQueue returns reviews awaiting approval with their owning post
// summary, newest first.
func (r *reviewRepository) ListQueue(ctx context.Context) ([]*entity.ProductReview, error) {
	status := entity.ReviewStatusReview
	return r.List(ctx, ReviewFilter{Status: &status})
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.ProductReview) error {
	reviewModel := ToReviewModel(review)
	reviewModel.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&models.ProductReview{ID: review.ID}).
		Select("product_title", "product_image", "product_link", "rating",
			"review_content", "status", "post_id", "updated_at").
		Updates(reviewModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}

	review.UpdatedAt = reviewModel.UpdatedAt
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductReview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) CountByStatus(ctx context.Context, status entity.ReviewStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductReview{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}

func toReviewEntities(reviewModels []models.ProductReview) []*entity.ProductReview {
	reviews := make([]*entity.ProductReview, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = ToReviewEntity(&reviewModels[i])
	}
	return reviews
}
