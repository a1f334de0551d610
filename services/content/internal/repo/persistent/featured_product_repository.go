package persistent

import (
	"context"
	"time"

	"affiliate-blog/pkg/models"
	"affiliate-blog/services/content/internal/entity"

	"gorm.io/gorm"
)

type FeaturedProductRepository interface {
	Create(ctx context.Context, product *entity.FeaturedProduct) error
	GetByID(ctx context.Context, id string) (*entity.FeaturedProduct, error)
	List(ctx context.Context, postID string) ([]*entity.FeaturedProduct, error)
	Update(ctx context.Context, product *entity.FeaturedProduct) error
	Delete(ctx context.Context, id string) error
}

type featuredProductRepository struct {
	db *gorm.DB
}

func NewFeaturedProductRepository(db *gorm.DB) FeaturedProductRepository {
	return &featuredProductRepository{db: db}
}

func (r *featuredProductRepository) Create(ctx context.Context, product *entity.FeaturedProduct) error {
	productModel := ToFeaturedProductModel(product)
	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		return err
	}

	*product = *ToFeaturedProductEntity(productModel)
	return nil
}

func (r *featuredProductRepository) GetByID(ctx context.Context, id string) (*entity.FeaturedProduct, error) {
	var productModel models.FeaturedProduct
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToFeaturedProductEntity(&productModel), nil
}

// List returns every featured product, or only those of postID when set.
func (r *featuredProductRepository) List(ctx context.Context, postID string) ([]*entity.FeaturedProduct, error) {
	var productModels []models.FeaturedProduct
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if postID != "" {
		query = query.Where("post_id = ?", postID)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.FeaturedProduct, len(productModels))
	for i := range productModels {
		products[i] = ToFeaturedProductEntity(&productModels[i])
	}
	return products, nil
}

func (r *featuredProductRepository) Update(ctx context.Context, product *entity.FeaturedProduct) error {
	productModel := ToFeaturedProductModel(product)
	productModel.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&models.FeaturedProduct{ID: product.ID}).
		Select("product_name", "product_image", "product_link", "price",
			"rating", "description", "updated_at").
		Updates(productModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}

	product.UpdatedAt = productModel.UpdatedAt
	return nil
}

func (r *featuredProductRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FeaturedProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
