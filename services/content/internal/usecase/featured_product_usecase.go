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

type FeaturedProductUseCase interface {
	CreateFeaturedProduct(ctx context.Context, in entity.NewFeaturedProduct) (*entity.FeaturedProduct, error)
	GetFeaturedProduct(ctx context.Context, id string) (*entity.FeaturedProduct, error)
	ListFeaturedProducts(ctx context.Context, postID string) ([]*entity.FeaturedProduct, error)
	UpdateFeaturedProduct(ctx context.Context, id string, patch entity.FeaturedProductPatch) (*entity.FeaturedProduct, error)
	DeleteFeaturedProduct(ctx context.Context, id string) error
}

type featuredProductUseCase struct {
	productRepo persistent.FeaturedProductRepository
	postRepo    persistent.PostRepository
	effects     effects
	logger      *logger.Logger
}

func NewFeaturedProductUseCase(
	productRepo persistent.FeaturedProductRepository,
	postRepo persistent.PostRepository,
	postCache cache.PostCache,
	logger *logger.Logger,
) FeaturedProductUseCase {
	return &featuredProductUseCase{
		productRepo: productRepo,
		postRepo:    postRepo,
		effects:     effects{cache: postCache, logger: logger},
		logger:      logger,
	}
}

func (uc *featuredProductUseCase) CreateFeaturedProduct(ctx context.Context, in entity.NewFeaturedProduct) (*entity.FeaturedProduct, error) {
	fields := []struct{ name, value string }{
		{"product_name", in.ProductName},
		{"product_image", in.ProductImage},
		{"product_link", in.ProductLink},
		{"description", in.Description},
		{"post_id", in.PostID},
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

	post, err := uc.postRepo.GetByID(ctx, in.PostID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, entity.NewValidationError("post_id", "post not found")
	}
	if err != nil {
		return nil, err
	}

	product := &entity.FeaturedProduct{
		ProductName:  strings.TrimSpace(in.ProductName),
		ProductImage: in.ProductImage,
		ProductLink:  in.ProductLink,
		Price:        in.Price,
		Rating:       rating,
		Description:  in.Description,
		PostID:       post.ID,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, &entity.InternalError{Op: "create featured product", Err: err}
	}

	uc.effects.invalidate(ctx, post.Slug)
	return product, nil
}

func (uc *featuredProductUseCase) GetFeaturedProduct(ctx context.Context, id string) (*entity.FeaturedProduct, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *featuredProductUseCase) ListFeaturedProducts(ctx context.Context, postID string) ([]*entity.FeaturedProduct, error) {
	return uc.productRepo.List(ctx, postID)
}

func (uc *featuredProductUseCase) UpdateFeaturedProduct(ctx context.Context, id string, patch entity.FeaturedProductPatch) (*entity.FeaturedProduct, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.ProductName != nil {
		if strings.TrimSpace(*patch.ProductName) == "" {
			return nil, entity.NewValidationError("product_name", "product_name cannot be empty")
		}
		product.ProductName = strings.TrimSpace(*patch.ProductName)
	}
	if patch.Rating != nil {
		if err := entity.ValidateRating(*patch.Rating); err != nil {
			return nil, err
		}
		product.Rating = *patch.Rating
	}
	setIfPresent(&product.ProductImage, patch.ProductImage)
	setIfPresent(&product.ProductLink, patch.ProductLink)
	setIfPresent(&product.Price, patch.Price)
	setIfPresent(&product.Description, patch.Description)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.invalidateOwner(ctx, product.PostID)
	return product, nil
}

func (uc *featuredProductUseCase) DeleteFeaturedProduct(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateOwner(ctx, product.PostID)
	return nil
}

func (uc *featuredProductUseCase) invalidateOwner(ctx context.Context, postID string) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		uc.logger.Warn("Could not resolve post %s for cache invalidation: %v", postID, err)
		return
	}
	uc.effects.invalidate(ctx, post.Slug)
}
