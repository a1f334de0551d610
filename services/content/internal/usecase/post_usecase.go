package usecase

import (
	"context"
	"errors"
	"strings"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/repo/cache"
	"affiliate-blog/services/content/internal/repo/persistent"
	"affiliate-blog/services/content/internal/slug"
)

type PostUseCase interface {
	CreatePost(ctx context.Context, in entity.NewPost) (*entity.Post, error)
	GetPost(ctx context.Context, id string) (*entity.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error)
	UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error)
	UpdatePostBySlug(ctx context.Context, slug string, patch entity.PostPatch) (*entity.Post, error)
	DeletePostBySlug(ctx context.Context, slug string) error
	ListPublishedPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error)
	GetPublishedPost(ctx context.Context, slug string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo   persistent.PostRepository
	moderation ModerationUseCase
	postCache  cache.PostCache
	effects    effects
	logger     *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	moderation ModerationUseCase,
	postCache cache.PostCache,
	publisher EventPublisher,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:   postRepo,
		moderation: moderation,
		postCache:  postCache,
		effects:    effects{publisher: publisher, cache: postCache, logger: logger},
		logger:     logger,
	}
}

// CreatePost stores a manually authored post as DRAFT. An explicit slug
// must be free; a slug derived from the title gets a numeric suffix instead.
func (uc *postUseCase) CreatePost(ctx context.Context, in entity.NewPost) (*entity.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, entity.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, entity.NewValidationError("content", "content is required")
	}

	post := &entity.Post{
		Title:          title,
		Excerpt:        in.Excerpt,
		Content:        in.Content,
		HeroImage:      in.HeroImage,
		Status:         entity.PostStatusDraft,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		SEOKeywords:    in.SEOKeywords,
		FocusKeyword:   in.FocusKeyword,
		ReadingTime:    readingTime(in.Content),
	}

	if strings.TrimSpace(in.Slug) != "" {
		post.Slug = slug.Generate(in.Slug)
		if post.Slug == "" {
			return nil, entity.NewValidationError("slug", "slug has no usable characters")
		}
		if err := uc.postRepo.Create(ctx, post); err != nil {
			if errors.Is(err, persistent.ErrDuplicateSlug) {
				return nil, entity.NewValidationError("slug", "slug already exists")
			}
			return nil, &entity.InternalError{Op: "create post", Err: err}
		}
		return post, nil
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		existing, err := uc.postRepo.ListSlugs(ctx)
		if err != nil {
			return nil, &entity.InternalError{Op: "list slugs", Err: err}
		}
		post.Slug = slug.Resolve(title, existing)

		err = uc.postRepo.Create(ctx, post)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, persistent.ErrDuplicateSlug) {
			return nil, &entity.InternalError{Op: "create post", Err: err}
		}
	}
	return nil, &entity.InternalError{Op: "create post", Err: persistent.ErrDuplicateSlug}
}

func (uc *postUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *postUseCase) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return uc.postRepo.GetBySlug(ctx, slug)
}

func (uc *postUseCase) ListPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	return uc.postRepo.List(ctx, persistent.PostFilter{Limit: limit, Offset: offset, ByUpdated: true})
}

func (uc *postUseCase) UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, post, patch)
}

func (uc *postUseCase) UpdatePostBySlug(ctx context.Context, slug string, patch entity.PostPatch) (*entity.Post, error) {
	post, err := uc.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, post, patch)
}

func (uc *postUseCase) DeletePostBySlug(ctx context.Context, slug string) error {
	post, err := uc.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return uc.moderation.DeletePost(ctx, post.ID)
}

// update validates the whole patch before writing anything.
func (uc *postUseCase) update(ctx context.Context, post *entity.Post, patch entity.PostPatch) (*entity.Post, error) {
	oldSlug := post.Slug
	oldStatus := post.Status

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, entity.NewValidationError("title", "title cannot be empty")
		}
		post.Title = title
	}
	if patch.Status != nil {
		if err := entity.ValidatePostTransition(post.Status, *patch.Status); err != nil {
			return nil, err
		}
		post.Status = *patch.Status
	}
	if patch.Slug != nil {
		s := slug.Generate(*patch.Slug)
		if s == "" {
			return nil, entity.NewValidationError("slug", "slug has no usable characters")
		}
		post.Slug = s
	}
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return nil, entity.NewValidationError("content", "content cannot be empty")
		}
		post.Content = *patch.Content
		post.ReadingTime = readingTime(post.Content)
	}
	if patch.ReadingTime != nil {
		if *patch.ReadingTime < 0 {
			return nil, entity.NewValidationError("reading_time", "reading time cannot be negative")
		}
		rt := *patch.ReadingTime
		post.ReadingTime = &rt
	}
	setIfPresent(&post.Excerpt, patch.Excerpt)
	setIfPresent(&post.HeroImage, patch.HeroImage)
	setIfPresent(&post.SEOTitle, patch.SEOTitle)
	setIfPresent(&post.SEODescription, patch.SEODescription)
	setIfPresent(&post.SEOKeywords, patch.SEOKeywords)
	setIfPresent(&post.FocusKeyword, patch.FocusKeyword)

	if err := uc.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, persistent.ErrDuplicateSlug) {
			return nil, entity.NewValidationError("slug", "slug already exists")
		}
		return nil, err
	}

	uc.effects.invalidate(ctx, oldSlug, post.Slug)
	if post.Status == entity.PostStatusPublished && oldStatus != entity.PostStatusPublished {
		uc.effects.postPublished(ctx, post)
	}
	return post, nil
}

func (uc *postUseCase) ListPublishedPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	status := entity.PostStatusPublished
	return uc.postRepo.List(ctx, persistent.PostFilter{Status: &status, Limit: limit, Offset: offset})
}

// GetPublishedPost serves the public article page: only PUBLISHED posts,
// carrying only PUBLISHED reviews, read through the post cache.
func (uc *postUseCase) GetPublishedPost(ctx context.Context, slug string) (*entity.Post, error) {
	if cached, err := uc.postCache.Get(ctx, slug); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		uc.logger.Warn("Post cache read failed for %s: %v", slug, err)
	}

	post, err := uc.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post.Status != entity.PostStatusPublished {
		return nil, entity.ErrNotFound
	}

	var published []entity.ProductReview
	for _, r := range post.ProductReviews {
		if r.Status == entity.ReviewStatusPublished {
			published = append(published, r)
		}
	}
	post.ProductReviews = published

	if err := uc.postCache.Set(ctx, post); err != nil {
		uc.logger.Warn("Post cache write failed for %s: %v", slug, err)
	}
	return post, nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
