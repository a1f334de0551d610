package http

import (
	"context"
	"io"

	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockGenerationUseCase struct {
	mock.Mock
}

func (m *MockGenerationUseCase) Generate(ctx context.Context, topic string) (*entity.GenerationResult, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GenerationResult), args.Error(1)
}

func (m *MockGenerationUseCase) SynthesizeReview(ctx context.Context, postID string, product entity.Product) (*entity.ProductReview, error) {
	args := m.Called(ctx, postID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductReview), args.Error(1)
}

type MockModerationUseCase struct {
	mock.Mock
}

func (m *MockModerationUseCase) ListReviewQueue(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockModerationUseCase) ListReviewsQueue(ctx context.Context) ([]*entity.ProductReview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProductReview), args.Error(1)
}

func (m *MockModerationUseCase) TransitionPost(ctx context.Context, id string, status string) (*entity.Post, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockModerationUseCase) TransitionReview(ctx context.Context, id string, status string) (*entity.ProductReview, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductReview), args.Error(1)
}

func (m *MockModerationUseCase) DeletePost(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockModerationUseCase) DeleteReview(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockModerationUseCase) QueueDepth(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) post(args mock.Arguments) (*entity.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) posts(args mock.Arguments) ([]*entity.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, in entity.NewPost) (*entity.Post, error) {
	return m.post(m.Called(ctx, in))
}

func (m *MockPostUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	return m.post(m.Called(ctx, id))
}

func (m *MockPostUseCase) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return m.post(m.Called(ctx, slug))
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	return m.posts(m.Called(ctx, limit, offset))
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error) {
	return m.post(m.Called(ctx, id, patch))
}

func (m *MockPostUseCase) UpdatePostBySlug(ctx context.Context, slug string, patch entity.PostPatch) (*entity.Post, error) {
	return m.post(m.Called(ctx, slug, patch))
}

func (m *MockPostUseCase) DeletePostBySlug(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

func (m *MockPostUseCase) ListPublishedPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	return m.posts(m.Called(ctx, limit, offset))
}

func (m *MockPostUseCase) GetPublishedPost(ctx context.Context, slug string) (*entity.Post, error) {
	return m.post(m.Called(ctx, slug))
}

type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) review(args mock.Arguments) (*entity.ProductReview, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductReview), args.Error(1)
}

func (m *MockReviewUseCase) CreateReview(ctx context.Context, in entity.NewReview) (*entity.ProductReview, error) {
	return m.review(m.Called(ctx, in))
}

func (m *MockReviewUseCase) GetReview(ctx context.Context, id string) (*entity.ProductReview, error) {
	return m.review(m.Called(ctx, id))
}

func (m *MockReviewUseCase) ListReviews(ctx context.Context, status string, postID string) ([]*entity.ProductReview, error) {
	args := m.Called(ctx, status, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProductReview), args.Error(1)
}

func (m *MockReviewUseCase) UpdateReview(ctx context.Context, id string, patch entity.ReviewPatch) (*entity.ProductReview, error) {
	return m.review(m.Called(ctx, id, patch))
}

func (m *MockReviewUseCase) ListPublishedReviews(ctx context.Context, limit, offset int) ([]*entity.ProductReview, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProductReview), args.Error(1)
}

type MockFeaturedProductUseCase struct {
	mock.Mock
}

func (m *MockFeaturedProductUseCase) product(args mock.Arguments) (*entity.FeaturedProduct, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeaturedProduct), args.Error(1)
}

func (m *MockFeaturedProductUseCase) CreateFeaturedProduct(ctx context.Context, in entity.NewFeaturedProduct) (*entity.FeaturedProduct, error) {
	return m.product(m.Called(ctx, in))
}

func (m *MockFeaturedProductUseCase) GetFeaturedProduct(ctx context.Context, id string) (*entity.FeaturedProduct, error) {
	return m.product(m.Called(ctx, id))
}

func (m *MockFeaturedProductUseCase) ListFeaturedProducts(ctx context.Context, postID string) ([]*entity.FeaturedProduct, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FeaturedProduct), args.Error(1)
}

func (m *MockFeaturedProductUseCase) UpdateFeaturedProduct(ctx context.Context, id string, patch entity.FeaturedProductPatch) (*entity.FeaturedProduct, error) {
	return m.product(m.Called(ctx, id, patch))
}

func (m *MockFeaturedProductUseCase) DeleteFeaturedProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSettingsUseCase struct {
	mock.Mock
}

func (m *MockSettingsUseCase) GetSettings(ctx context.Context) (*entity.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SiteSettings), args.Error(1)
}

func (m *MockSettingsUseCase) UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.SiteSettings, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SiteSettings), args.Error(1)
}

type MockMediaUseCase struct {
	mock.Mock
}

func (m *MockMediaUseCase) Upload(ctx context.Context, filename, contentType string, file io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, file)
	return args.String(0), args.Error(1)
}

var (
	_ usecase.GenerationUseCase      = (*MockGenerationUseCase)(nil)
	_ usecase.ModerationUseCase      = (*MockModerationUseCase)(nil)
	_ usecase.PostUseCase            = (*MockPostUseCase)(nil)
	_ usecase.ReviewUseCase          = (*MockReviewUseCase)(nil)
	_ usecase.FeaturedProductUseCase = (*MockFeaturedProductUseCase)(nil)
	_ usecase.SettingsUseCase        = (*MockSettingsUseCase)(nil)
	_ usecase.MediaUseCase           = (*MockMediaUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
