package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/metrics"
	"affiliate-blog/pkg/queue"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/htmltext"
	"affiliate-blog/services/content/internal/repo/persistent"
	"affiliate-blog/services/content/internal/slug"
)

const maxSlugAttempts = 5

type GenerationUseCase interface {
	Generate(ctx context.Context, topic string) (*entity.GenerationResult, error)
	SynthesizeReview(ctx context.Context, postID string, product entity.Product) (*entity.ProductReview, error)
}

type GenerationConfig struct {
	StepTimeout      time.Duration
	ProductLimit     int
	DefaultHeroImage string
}

type generationUseCase struct {
	postRepo   persistent.PostRepository
	reviewRepo persistent.ReviewRepository
	images     ImageLookup
	text       TextGenerator
	products   ProductLookup
	metrics    *metrics.Metrics
	effects    effects
	cfg        GenerationConfig
	logger     *logger.Logger
}

func NewGenerationUseCase(
	postRepo persistent.PostRepository,
	reviewRepo persistent.ReviewRepository,
	images ImageLookup,
	text TextGenerator,
	products ProductLookup,
	publisher EventPublisher,
	m *metrics.Metrics,
	cfg GenerationConfig,
	logger *logger.Logger,
) GenerationUseCase {
	return &generationUseCase{
		postRepo:   postRepo,
		reviewRepo: reviewRepo,
		images:     images,
		text:       text,
		products:   products,
		metrics:    m,
		effects:    effects{publisher: publisher, logger: logger},
		cfg:        cfg,
		logger:     logger,
	}
}

// Generate runs image -> article -> slug/persist -> products -> reviews.
// Only slug allocation and post persistence are fatal; every other step
// degrades to a fallback. Work continues when the caller goes away and
// committed rows are never rolled back.
func (uc *generationUseCase) Generate(ctx context.Context, topic string) (*entity.GenerationResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, entity.NewValidationError("topic", "topic is required")
	}

	ctx = context.WithoutCancel(ctx)
	log := uc.logger.With("topic", topic)
	log.Info("[GENERATE] Generating post")

	heroImage := uc.heroImage(ctx, log, topic)
	article := uc.article(ctx, log, topic)

	post, err := uc.persistPost(ctx, log, article, heroImage)
	if err != nil {
		uc.metrics.RecordGeneration(metrics.OutcomeFailed)
		log.Error("[GENERATE] Failed to persist generated post: %v", err)
		return nil, err
	}

	products := uc.relatedProducts(ctx, log, topic)

	reviews := make([]entity.ProductReview, 0, len(products))
	for _, product := range products {
		review, err := uc.SynthesizeReview(ctx, post.ID, product)
		if err != nil {
			uc.metrics.RecordFallback(metrics.StepReview)
			log.Warn("[GENERATE] Skipping review for %q: %v", product.Title, err)
			continue
		}
		reviews = append(reviews, *review)
	}
	post.ProductReviews = reviews

	uc.metrics.RecordGeneration(metrics.OutcomeSuccess)
	uc.effects.publish(ctx, queue.ContentEvent{
		Type:        queue.EventPostGenerated,
		PostID:      post.ID,
		Slug:        post.Slug,
		Title:       post.Title,
		Status:      string(post.Status),
		ReviewCount: len(reviews),
		Fallback:    article.Provenance == entity.ProvenanceFallback,
	})
	log.Info("[GENERATE] Generated post %s (%s) with %d reviews", post.ID, article.Provenance, len(reviews))

	return &entity.GenerationResult{
		Post:       post,
		Reviews:    reviews,
		Provenance: article.Provenance,
	}, nil
}

func (uc *generationUseCase) step(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.StepTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.cfg.StepTimeout)
}

func (uc *generationUseCase) heroImage(ctx context.Context, log *logger.Logger, topic string) string {
	if uc.images != nil {
		stepCtx, cancel := uc.step(ctx)
		url, err := uc.images.RequestHeroImage(stepCtx, topic)
		cancel()
		if err == nil && url != "" {
			return url
		}
		if err == nil {
			err = errors.New("empty image url")
		}
		log.Warn("[GENERATE] Hero image lookup failed, using default: %v", &entity.ExternalServiceError{Service: "image lookup", Err: err})
	}

	uc.metrics.RecordFallback(metrics.StepImage)
	return uc.cfg.DefaultHeroImage
}

func (uc *generationUseCase) article(ctx context.Context, log *logger.Logger, topic string) *entity.Article {
	if uc.text != nil {
		stepCtx, cancel := uc.step(ctx)
		article, err := uc.text.RequestArticle(stepCtx, topic)
		cancel()
		if err == nil && article != nil && strings.TrimSpace(article.Title) != "" && strings.TrimSpace(article.Content) != "" {
			article.Provenance = entity.ProvenanceGenerated
			return article
		}
		if err == nil {
			err = errors.New("incomplete article")
		}
		log.Warn("[GENERATE] Article generation failed, using fallback: %v", &entity.ExternalServiceError{Service: "text generator", Err: err})
	}

	uc.metrics.RecordFallback(metrics.StepArticle)
	return FallbackArticle(topic)
}

// persistPost is the durability checkpoint. A unique-index collision means a
// concurrent writer took the slug; the existing set is refetched and the
// allocation retried.
func (uc *generationUseCase) persistPost(ctx context.Context, log *logger.Logger, article *entity.Article, heroImage string) (*entity.Post, error) {
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		existing, err := uc.postRepo.ListSlugs(ctx)
		if err != nil {
			return nil, &entity.InternalError{Op: "list slugs", Err: err}
		}

		post := &entity.Post{
			Title:       article.Title,
			Slug:        slug.Resolve(article.Title, existing),
			Excerpt:     article.Excerpt,
			Content:     article.Content,
			HeroImage:   heroImage,
			Status:      entity.PostStatusReview,
			ReadingTime: readingTime(article.Content),
		}

		err = uc.postRepo.Create(ctx, post)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, persistent.ErrDuplicateSlug) {
			return nil, &entity.InternalError{Op: "create post", Err: err}
		}
		log.Warn("[GENERATE] Slug %s was taken concurrently (attempt %d/%d)", post.Slug, attempt, maxSlugAttempts)
	}

	return nil, &entity.InternalError{
		Op:  "create post",
		Err: fmt.Errorf("%w after %d attempts", persistent.ErrDuplicateSlug, maxSlugAttempts),
	}
}

func (uc *generationUseCase) relatedProducts(ctx context.Context, log *logger.Logger, topic string) []entity.Product {
	if uc.products == nil {
		return nil
	}

	stepCtx, cancel := uc.step(ctx)
	products, err := uc.products.SearchProducts(stepCtx, topic)
	cancel()
	if err != nil {
		uc.metrics.RecordFallback(metrics.StepProducts)
		log.Warn("[GENERATE] Product search failed, continuing without reviews: %v", &entity.ExternalServiceError{Service: "product lookup", Err: err})
		return nil
	}

	if uc.cfg.ProductLimit > 0 && len(products) > uc.cfg.ProductLimit {
		products = products[:uc.cfg.ProductLimit]
	}
	return products
}

// SynthesizeReview generates and stores one PUBLISHED review of product
// under postID. Generated ratings are clamped to [1,5] and rounded to a
// half star.
func (uc *generationUseCase) SynthesizeReview(ctx context.Context, postID string, product entity.Product) (*entity.ProductReview, error) {
	title := strings.TrimSpace(product.Title)
	if title == "" {
		return nil, entity.NewValidationError("product_title", "product title is required")
	}
	if uc.text == nil {
		return nil, &entity.ExternalServiceError{Service: "text generator", Err: errors.New("not configured")}
	}

	stepCtx, cancel := uc.step(ctx)
	draft, err := uc.text.RequestProductReview(stepCtx, title, product.Description)
	cancel()
	if err != nil {
		return nil, &entity.ExternalServiceError{Service: "text generator", Err: err}
	}

	review := &entity.ProductReview{
		ProductTitle:  title,
		ProductImage:  product.Image,
		ProductLink:   product.Link,
		Rating:        entity.NormalizeRating(draft.Rating),
		ReviewContent: draft.Content,
		Status:        entity.ReviewStatusPublished,
		PostID:        &postID,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, &entity.InternalError{Op: "create review", Err: err}
	}

	uc.metrics.RecordGeneratedReview()
	return review, nil
}

// readingTime derives minutes at 200 words per minute; nil when the content
// has no words.
func readingTime(content string) *int {
	minutes := htmltext.ReadingTime(content)
	if minutes == 0 {
		return nil
	}
	return &minutes
}
