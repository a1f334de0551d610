package usecase

import (
	"context"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/repo/cache"
	"affiliate-blog/services/content/internal/repo/persistent"
)

type ModerationUseCase interface {
	ListReviewQueue(ctx context.Context) ([]*entity.Post, error)
	ListReviewsQueue(ctx context.Context) ([]*entity.ProductReview, error)
	TransitionPost(ctx context.Context, id string, status string) (*entity.Post, error)
	TransitionReview(ctx context.Context, id string, status string) (*entity.ProductReview, error)
	DeletePost(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, id string) error
	QueueDepth(ctx context.Context) (posts int64, reviews int64, err error)
}

type moderationUseCase struct {
	postRepo   persistent.PostRepository
	reviewRepo persistent.ReviewRepository
	effects    effects
	logger     *logger.Logger
}

func NewModerationUseCase(
	postRepo persistent.PostRepository,
	reviewRepo persistent.ReviewRepository,
	postCache cache.PostCache,
	publisher EventPublisher,
	logger *logger.Logger,
) ModerationUseCase {
	return &moderationUseCase{
		postRepo:   postRepo,
		reviewRepo: reviewRepo,
		effects:    effects{publisher: publisher, cache: postCache, logger: logger},
		logger:     logger,
	}
}

func (uc *moderationUseCase) ListReviewQueue(ctx context.Context) ([]*entity.Post, error) {
	return uc.postRepo.ListReviewQueue(ctx)
}

func (uc *moderationUseCase) ListReviewsQueue(ctx context.Context) ([]*entity.ProductReview, error) {
	return uc.reviewRepo.ListQueue(ctx)
}

// TransitionPost validates status against the post transition table before
// touching the row, so a rejected status leaves the post unchanged.
func (uc *moderationUseCase) TransitionPost(ctx context.Context, id string, status string) (*entity.Post, error) {
	target, err := entity.ParsePostStatus(status)
	if err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidatePostTransition(post.Status, target); err != nil {
		return nil, err
	}

	previous := post.Status
	post.Status = target
	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	uc.effects.invalidate(ctx, post.Slug)
	if target == entity.PostStatusPublished && previous != entity.PostStatusPublished {
		uc.effects.postPublished(ctx, post)
	}
	uc.logger.Info("Post %s moved from %s to %s", post.ID, previous, target)
	return post, nil
}

func (uc *moderationUseCase) TransitionReview(ctx context.Context, id string, status string) (*entity.ProductReview, error) {
	target, err := entity.ParseReviewStatus(status)
	if err != nil {
		return nil, err
	}

	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateReviewTransition(review.Status, target); err != nil {
		return nil, err
	}

	review.Status = target
	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if review.Post != nil {
		uc.effects.invalidate(ctx, review.Post.Slug)
	}
	return review, nil
}

func (uc *moderationUseCase) DeletePost(ctx context.Context, id string) error {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.effects.postDeleted(ctx, post)
	uc.logger.Info("Deleted post %s with %d reviews and %d featured products", post.ID, len(post.ProductReviews), len(post.FeaturedProducts))
	return nil
}

func (uc *moderationUseCase) DeleteReview(ctx context.Context, id string) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	if review.Post != nil {
		uc.effects.invalidate(ctx, review.Post.Slug)
	}
	return nil
}

func (uc *moderationUseCase) QueueDepth(ctx context.Context) (int64, int64, error) {
	posts, err := uc.postRepo.CountByStatus(ctx, entity.PostStatusReview)
	if err != nil {
		return 0, 0, err
	}
	reviews, err := uc.reviewRepo.CountByStatus(ctx, entity.ReviewStatusReview)
	if err != nil {
		return 0, 0, err
	}
	return posts, reviews, nil
}
