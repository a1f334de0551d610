package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"affiliate-blog/pkg/metrics"
	"affiliate-blog/pkg/models"
	"affiliate-blog/pkg/queue"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/repo/persistent"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const defaultHero = "https://example.com/default.jpg"

type generationFixture struct {
	db        *gorm.DB
	posts     persistent.PostRepository
	reviews   persistent.ReviewRepository
	images    *MockImageLookup
	text      *MockTextGenerator
	products  *MockProductLookup
	publisher *recordingPublisher
	metrics   *metrics.Metrics
	uc        GenerationUseCase
}

func newGenerationFixture(t *testing.T) *generationFixture {
	t.Helper()
	db := setupTestDB(t)
	f := &generationFixture{
		db:        db,
		posts:     persistent.NewPostRepository(db),
		reviews:   persistent.NewReviewRepository(db),
		images:    new(MockImageLookup),
		text:      new(MockTextGenerator),
		products:  new(MockProductLookup),
		publisher: &recordingPublisher{},
		metrics:   metrics.New(prometheus.NewRegistry()),
	}
	f.uc = NewGenerationUseCase(f.posts, f.reviews, f.images, f.text, f.products, f.publisher, f.metrics,
		GenerationConfig{StepTimeout: time.Second, ProductLimit: 3, DefaultHeroImage: defaultHero}, testLogger())
	return f
}

func sampleProducts(n int) []entity.Product {
	out := make([]entity.Product, n)
	for i := range out {
		out[i] = entity.Product{
			Title:       "Product " + string(rune('A'+i)),
			Image:       "https://example.com/p.jpg",
			Link:        "https://amazon.com/dp/X",
			Description: "desc",
		}
	}
	return out
}

func TestGenerate_HappyPath(t *testing.T) {
	f := newGenerationFixture(t)
	ctx := context.Background()
	topic := "Best Kitchen Gadgets for 2024"

	f.images.On("RequestHeroImage", mock.Anything, topic).Return("https://example.com/hero.jpg", nil)
	f.text.On("RequestArticle", mock.Anything, topic).Return(&entity.Article{
		Title:   "Best Kitchen Gadgets for 2024!",
		Excerpt: "Our picks",
		Content: "<h2>Intro</h2><p>" + strings.Repeat("word ", 450) + "</p>",
	}, nil)
	f.products.On("SearchProducts", mock.Anything, topic).Return(sampleProducts(5), nil)
	f.text.On("RequestProductReview", mock.Anything, mock.Anything, "desc").Return(&entity.ReviewDraft{Rating: 4.4, Content: "Great"}, nil)

	result, err := f.uc.Generate(ctx, "  "+topic+"  ")

	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceGenerated, result.Provenance)
	assert.Equal(t, "best-kitchen-gadgets-for-2024", result.Post.Slug)
	assert.Equal(t, entity.PostStatusReview, result.Post.Status)
	assert.Equal(t, "https://example.com/hero.jpg", result.Post.HeroImage)
	require.NotNil(t, result.Post.ReadingTime)
	assert.Equal(t, 3, *result.Post.ReadingTime)

	require.Len(t, result.Reviews, 3, "product list is truncated to the limit")
	for _, r := range result.Reviews {
		assert.Equal(t, entity.ReviewStatusPublished, r.Status)
		assert.Equal(t, 4.5, r.Rating)
		require.NotNil(t, r.PostID)
		assert.Equal(t, result.Post.ID, *r.PostID)
	}
	f.text.AssertNumberOfCalls(t, "RequestProductReview", 3)

	assert.Equal(t, []string{queue.EventPostGenerated}, f.publisher.types())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.GenerationRequests.WithLabelValues(metrics.OutcomeSuccess)))
	assert.Equal(t, 3.0, testutil.ToFloat64(f.metrics.GeneratedReviews))
}

func TestGenerate_EmptyTopic(t *testing.T) {
	f := newGenerationFixture(t)

	_, err := f.uc.Generate(context.Background(), "   ")

	assert.True(t, entity.IsValidation(err))
	f.images.AssertNotCalled(t, "RequestHeroImage", mock.Anything, mock.Anything)
	f.text.AssertNotCalled(t, "RequestArticle", mock.Anything, mock.Anything)
}

func TestGenerate_ArticleFailureUsesFallback(t *testing.T) {
	f := newGenerationFixture(t)
	topic := "Air Fryers"

	f.images.On("RequestHeroImage", mock.Anything, topic).Return("", errors.New("lookup down"))
	f.text.On("RequestArticle", mock.Anything, topic).Return(nil, errors.New("quota exceeded"))
	f.products.On("SearchProducts", mock.Anything, topic).Return([]entity.Product{}, nil)

	result, err := f.uc.Generate(context.Background(), topic)

	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceFallback, result.Provenance)
	assert.Equal(t, "Ultimate Guide to Air Fryers", result.Post.Title)
	assert.NotEmpty(t, result.Post.Content)
	assert.Equal(t, entity.PostStatusReview, result.Post.Status)
	assert.Equal(t, defaultHero, result.Post.HeroImage)

	stored, err := f.posts.GetByID(context.Background(), result.Post.ID)
	require.NoError(t, err)
	assert.Equal(t, "ultimate-guide-to-air-fryers", stored.Slug)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.GenerationFallback.WithLabelValues(metrics.StepArticle)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.GenerationFallback.WithLabelValues(metrics.StepImage)))
}

func TestGenerate_ProductSearchFailureYieldsNoReviews(t *testing.T) {
	f := newGenerationFixture(t)
	topic := "Coffee"

	f.images.On("RequestHeroImage", mock.Anything, topic).Return("https://example.com/c.jpg", nil)
	f.text.On("RequestArticle", mock.Anything, topic).Return(&entity.Article{Title: "Coffee Guide", Content: "<p>brew</p>"}, nil)
	f.products.On("SearchProducts", mock.Anything, topic).Return(nil, errors.New("catalog offline"))

	result, err := f.uc.Generate(context.Background(), topic)

	require.NoError(t, err)
	assert.Empty(t, result.Reviews)

	reviews, err := f.reviews.List(context.Background(), persistent.ReviewFilter{PostID: result.Post.ID})
	require.NoError(t, err)
	assert.Empty(t, reviews)
	f.text.AssertNotCalled(t, "RequestProductReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerate_OneReviewFailureIsIsolated(t *testing.T) {
	f := newGenerationFixture(t)
	topic := "Fitness"
	products := sampleProducts(3)

	f.images.On("RequestHeroImage", mock.Anything, topic).Return("https://example.com/f.jpg", nil)
	f.text.On("RequestArticle", mock.Anything, topic).Return(&entity.Article{Title: "Fitness Gear", Content: "<p>lift</p>"}, nil)
	f.products.On("SearchProducts", mock.Anything, topic).Return(products, nil)
	f.text.On("RequestProductReview", mock.Anything, products[0].Title, mock.Anything).Return(&entity.ReviewDraft{Rating: 9, Content: "A"}, nil)
	f.text.On("RequestProductReview", mock.Anything, products[1].Title, mock.Anything).Return(nil, errors.New("timeout"))
	f.text.On("RequestProductReview", mock.Anything, products[2].Title, mock.Anything).Return(&entity.ReviewDraft{Rating: 0, Content: "C"}, nil)

	result, err := f.uc.Generate(context.Background(), topic)

	require.NoError(t, err)
	require.Len(t, result.Reviews, 2)
	assert.Equal(t, 5.0, result.Reviews[0].Rating, "ratings above range are clamped")
	assert.Equal(t, 1.0, result.Reviews[1].Rating, "ratings below range are clamped")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.GenerationFallback.WithLabelValues(metrics.StepReview)))
}

func TestGenerate_SameTitleGetsSuffixedSlug(t *testing.T) {
	f := newGenerationFixture(t)

	f.images.On("RequestHeroImage", mock.Anything, mock.Anything).Return("https://example.com/h.jpg", nil)
	f.text.On("RequestArticle", mock.Anything, mock.Anything).Return(&entity.Article{Title: "Same Title", Content: "<p>x</p>"}, nil)
	f.products.On("SearchProducts", mock.Anything, mock.Anything).Return([]entity.Product{}, nil)

	first, err := f.uc.Generate(context.Background(), "one")
	require.NoError(t, err)
	second, err := f.uc.Generate(context.Background(), "two")
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Post.Slug)
	assert.Equal(t, "same-title-2", second.Post.Slug)
}

// racingPostRepo simulates a concurrent writer taking the slug between the
// slug read and the insert.
type racingPostRepo struct {
	persistent.PostRepository
	collisions int
	calls      int
}

func (r *racingPostRepo) Create(ctx context.Context, post *entity.Post) error {
	r.calls++
	if r.calls <= r.collisions {
		// The competing writer wins with exactly the slug we picked.
		competitor := &entity.Post{Title: post.Title, Slug: post.Slug, Content: "x", Status: entity.PostStatusReview}
		if err := r.PostRepository.Create(ctx, competitor); err != nil {
			return err
		}
	}
	return r.PostRepository.Create(ctx, post)
}

func TestGenerate_RetriesSlugOnConcurrentInsert(t *testing.T) {
	f := newGenerationFixture(t)
	racing := &racingPostRepo{PostRepository: f.posts, collisions: 1}
	uc := NewGenerationUseCase(racing, f.reviews, f.images, f.text, f.products, nil, nil,
		GenerationConfig{ProductLimit: 3, DefaultHeroImage: defaultHero}, testLogger())

	f.images.On("RequestHeroImage", mock.Anything, mock.Anything).Return("https://example.com/h.jpg", nil)
	f.text.On("RequestArticle", mock.Anything, mock.Anything).Return(&entity.Article{Title: "Hot Topic", Content: "<p>x</p>"}, nil)
	f.products.On("SearchProducts", mock.Anything, mock.Anything).Return([]entity.Product{}, nil)

	result, err := uc.Generate(context.Background(), "hot")

	require.NoError(t, err)
	assert.Equal(t, "hot-topic-2", result.Post.Slug)
	assert.Equal(t, 2, racing.calls)
}

func TestGenerate_ConcurrentSameTitleGetsDistinctSlugs(t *testing.T) {
	f := newGenerationFixture(t)

	f.images.On("RequestHeroImage", mock.Anything, mock.Anything).Return("https://example.com/h.jpg", nil)
	f.text.On("RequestArticle", mock.Anything, mock.Anything).Return(&entity.Article{Title: "Same Title", Content: "<p>x</p>"}, nil)
	f.products.On("SearchProducts", mock.Anything, mock.Anything).Return([]entity.Product{}, nil)

	// A writer only loses a slug to another writer that then succeeded, so
	// maxSlugAttempts concurrent writers can never exhaust the retries.
	const writers = maxSlugAttempts

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		slugs []string
		errs  []error
	)
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			result, err := f.uc.Generate(context.Background(), "same topic")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			slugs = append(slugs, result.Post.Slug)
		}()
	}
	close(start)
	wg.Wait()

	require.Empty(t, errs)
	sort.Strings(slugs)
	assert.Equal(t, []string{"same-title", "same-title-2", "same-title-3", "same-title-4", "same-title-5"}, slugs)

	var count int64
	require.NoError(t, f.db.Model(&models.Post{}).Count(&count).Error)
	assert.Equal(t, int64(writers), count)
}

func TestGenerate_SlugRetriesExhausted(t *testing.T) {
	f := newGenerationFixture(t)
	racing := &racingPostRepo{PostRepository: f.posts, collisions: maxSlugAttempts}
	uc := NewGenerationUseCase(racing, f.reviews, f.images, f.text, f.products, nil, nil,
		GenerationConfig{ProductLimit: 3, DefaultHeroImage: defaultHero}, testLogger())

	f.images.On("RequestHeroImage", mock.Anything, mock.Anything).Return("https://example.com/h.jpg", nil)
	f.text.On("RequestArticle", mock.Anything, mock.Anything).Return(&entity.Article{Title: "Hot Topic", Content: "<p>x</p>"}, nil)

	_, err := uc.Generate(context.Background(), "hot")

	assert.True(t, entity.IsInternal(err))
	assert.ErrorIs(t, err, persistent.ErrDuplicateSlug)
	f.products.AssertNotCalled(t, "SearchProducts", mock.Anything, mock.Anything)
}

func TestGenerate_SurvivesCallerCancellation(t *testing.T) {
	f := newGenerationFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	f.images.On("RequestHeroImage", mock.Anything, mock.Anything).Return("https://example.com/h.jpg", nil).Run(func(mock.Arguments) {
		cancel()
	})
	f.text.On("RequestArticle", mock.Anything, mock.Anything).Return(&entity.Article{Title: "Still Here", Content: "<p>x</p>"}, nil)
	f.products.On("SearchProducts", mock.Anything, mock.Anything).Return([]entity.Product{}, nil)

	result, err := f.uc.Generate(ctx, "abandoned")

	require.NoError(t, err)
	assert.Equal(t, "still-here", result.Post.Slug)
}

func TestGenerate_NoCollaborators(t *testing.T) {
	db := setupTestDB(t)
	uc := NewGenerationUseCase(persistent.NewPostRepository(db), persistent.NewReviewRepository(db), nil, nil, nil, nil, nil,
		GenerationConfig{DefaultHeroImage: defaultHero}, testLogger())

	result, err := uc.Generate(context.Background(), "Home Decor")

	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceFallback, result.Provenance)
	assert.Equal(t, defaultHero, result.Post.HeroImage)
	assert.Empty(t, result.Reviews)
}

func TestSynthesizeReview_RequiresTitle(t *testing.T) {
	f := newGenerationFixture(t)

	_, err := f.uc.SynthesizeReview(context.Background(), "post-id", entity.Product{Title: "  "})

	assert.True(t, entity.IsValidation(err))
}

func TestSynthesizeReview_GeneratorFailure(t *testing.T) {
	f := newGenerationFixture(t)
	f.text.On("RequestProductReview", mock.Anything, "Kettle", "").Return(nil, errors.New("boom"))

	_, err := f.uc.SynthesizeReview(context.Background(), "post-id", entity.Product{Title: "Kettle"})

	assert.True(t, entity.IsExternal(err))
}

func TestFallbackArticle(t *testing.T) {
	a := FallbackArticle("<script>x</script>")

	assert.Equal(t, entity.ProvenanceFallback, a.Provenance)
	assert.Equal(t, "Ultimate Guide to <script>x</script>", a.Title)
	assert.NotContains(t, a.Content, "<script>")
	assert.Contains(t, a.Content, "&lt;script&gt;")
}
