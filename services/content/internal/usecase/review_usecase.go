package usecase

import (
	"context"
	"errors"
	"strings"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/repo/cache"
	"affiliate-blog/services/content/internal/repo/persistent"
)

type ReviewUseCase interface {
	CreateReview(ctx context.Context, in entity.NewReview) (*entity.ProductReview, error)
	GetReview(ctx context.Context, id string) (*entity.ProductReview, error)
	ListReviews(ctx context.Context, status string, postID string) ([]*entity.ProductReview, error)
	UpdateReview(ctx context.Context, id string, patch entity.ReviewPatch) (*entity.ProductReview, error)
	ListPublishedReviews(ctx context.Context, limit, offset int) ([]*entity.ProductReview, error)
}

type reviewUseCase struct {
	reviewRepo persistent.ReviewRepository
	postRepo   persistent.PostRepository
	effects    effects
	logger     *logger.Logger
}

func NewReviewUseCase(
	reviewRepo persistent.ReviewRepository,
	postRepo persistent.PostRepository,
	postCache cache.PostCache,
	logger *logger.Logger,
) ReviewUseCase {
	return &reviewUseCase{
		reviewRepo: reviewRepo,
		postRepo:   postRepo,
		effects:    effects{cache: postCache, logger: logger},
		logger:     logger,
	}
}

func (uc *reviewUseCase) CreateReview(ctx context.Context, in entity.NewReview) (*entity.ProductReview, error) {
	fields := []struct{ name, value string }{
		{"product_title", in.ProductTitle},
		{"product_image", in.ProductImage},
		{"product_link", in.ProductLink},
		{"review_content", in.ReviewContent},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, entity.NewValidationError(f.name, f.name+" is required")
		}
	}

	rating := entity.DefaultRating
	if in.Rating != nil {
		rating = *in.Rating
	}
	if err := entity.ValidateRating(rating); err != nil {
		return nil, err
	}

	status := entity.ReviewStatusPublished
	if in.Status != nil {
		parsed, err := entity.ParseReviewStatus(string(*in.Status))
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	owner, err := uc.resolvePost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	review := &entity.ProductReview{
		ProductTitle:  strings.TrimSpace(in.ProductTitle),
		ProductImage:  in.ProductImage,
		ProductLink:   in.ProductLink,
		Rating:        rating,
		ReviewContent: in.ReviewContent,
		Status:        status,
	}
	if owner != nil {
		review.PostID = &owner.ID
		review.Post = &entity.PostRef{ID: owner.ID, Title: owner.Title, Slug: owner.Slug}
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, &entity.InternalError{Op: "create review", Err: err}
	}

	if owner != nil {
		uc.effects.invalidate(ctx, owner.Slug)
	}
	return review, nil
}

// resolvePost returns nil for a standalone review and a ValidationError when
// the referenced post does not exist.
func (uc *reviewUseCase) resolvePost(ctx context.Context, postID *string) (*entity.Post, error) {
	if postID == nil || strings.TrimSpace(*postID) == "" {
		return nil, nil
	}

	post, err := uc.postRepo.GetByID(ctx, *postID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, entity.NewValidationError("post_id", "post not found")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *reviewUseCase) GetReview(ctx context.Context, id string) (*entity.ProductReview, error) {
	return uc.reviewRepo.GetByID(ctx, id)
}

func (uc *reviewUseCase) ListReviews(ctx context.Context, status string, postID string) ([]*entity.ProductReview, error) {
	filter := persistent.ReviewFilter{PostID: postID}
	if status != "" {
		parsed, err := entity.ParseReviewStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = &parsed
	}
	return uc.reviewRepo.List(ctx, filter)
}

func (uc *reviewUseCase) UpdateReview(ctx context.Context, id string, patch entity.ReviewPatch) (*entity.ProductReview, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	staleSlugs := []string{}
	if review.Post != nil {
		staleSlugs = append(staleSlugs, review.Post.Slug)
	}

	if patch.ProductTitle != nil {
		if strings.TrimSpace(*patch.ProductTitle) == "" {
			return nil, entity.NewValidationError("product_title", "product_title cannot be empty")
		}
		review.ProductTitle = strings.TrimSpace(*patch.ProductTitle)
	}
	if patch.Rating != nil {
		if err := entity.ValidateRating(*patch.Rating); err != nil {
			return nil, err
		}
		review.Rating = *patch.Rating
	}
	if patch.Status != nil {
		if err := entity.ValidateReviewTransition(review.Status, *patch.Status); err != nil {
			return nil, err
		}
		review.Status = *patch.Status
	}
	if patch.PostID != nil {
		owner, err := uc.resolvePost(ctx, patch.PostID)
		if err != nil {
			return nil, err
		}
		review.PostID, review.Post = nil, nil
		if owner != nil {
			review.PostID = &owner.ID
			review.Post = &entity.PostRef{ID: owner.ID, Title: owner.Title, Slug: owner.Slug}
			staleSlugs = append(staleSlugs, owner.Slug)
		}
	}
	setIfPresent(&review.ProductImage, patch.ProductImage)
	setIfPresent(&review.ProductLink, patch.ProductLink)
	setIfPresent(&review.ReviewContent, patch.ReviewContent)

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	uc.effects.invalidate(ctx, staleSlugs...)
	return review, nil
}

func (uc *reviewUseCase) ListPublishedReviews(ctx context.Context, limit, offset int) ([]*entity.ProductReview, error) {
	status := entity.ReviewStatusPublished
	return uc.reviewRepo.List(ctx, persistent.ReviewFilter{Status: &status, Limit: limit, Offset: offset})
}
