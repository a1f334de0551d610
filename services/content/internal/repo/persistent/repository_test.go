package persistent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"affiliate-blog/pkg/database"
	"affiliate-blog/pkg/models"
	"affiliate-blog/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newPost(slug string, status entity.PostStatus) *entity.Post {
	return &entity.Post{
		Title:   "Title " + slug,
		Slug:    slug,
		Content: "<p>content</p>",
		Status:  status,
	}
}

func strPtr(s string) *string { return &s }

func TestPostRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("best-mixers", entity.PostStatusReview)
	require.NoError(t, repo.Create(ctx, post))
	assert.NotEmpty(t, post.ID)
	assert.False(t, post.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "best-mixers", byID.Slug)
	assert.Equal(t, entity.PostStatusReview, byID.Status)

	bySlug, err := repo.GetBySlug(ctx, "best-mixers")
	require.NoError(t, err)
	assert.Equal(t, post.ID, bySlug.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPostRepository_DuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, newPost("same", entity.PostStatusDraft)))
	err := repo.Create(ctx, newPost("same", entity.PostStatusDraft))
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	other := newPost("other", entity.PostStatusDraft)
	require.NoError(t, repo.Create(ctx, other))
	other.Slug = "same"
	assert.ErrorIs(t, repo.Update(ctx, other), ErrDuplicateSlug)

	slugs, err := repo.ListSlugs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"same", "other"}, slugs)
}

func TestPostRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("draft", entity.PostStatusDraft)
	require.NoError(t, repo.Create(ctx, post))
	before := post.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	post.Status = entity.PostStatusPublished
	post.Excerpt = ""
	require.NoError(t, repo.Update(ctx, post))
	assert.True(t, post.UpdatedAt.After(before))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusPublished, got.Status)

	missing := newPost("ghost", entity.PostStatusDraft)
	missing.ID = "does-not-exist"
	assert.ErrorIs(t, repo.Update(ctx, missing), entity.ErrNotFound)
}

func TestPostRepository_ListAndQueue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	reviews := NewReviewRepository(db)

	queued := newPost("queued", entity.PostStatusReview)
	require.NoError(t, posts.Create(ctx, queued))
	require.NoError(t, posts.Create(ctx, newPost("live", entity.PostStatusPublished)))
	require.NoError(t, posts.Create(ctx, newPost("draft", entity.PostStatusDraft)))

	require.NoError(t, reviews.Create(ctx, &entity.ProductReview{
		ProductTitle: "Pending", ReviewContent: "x", Rating: 4, Status: entity.ReviewStatusReview, PostID: strPtr(queued.ID),
	}))
	require.NoError(t, reviews.Create(ctx, &entity.ProductReview{
		ProductTitle: "Approved", ReviewContent: "y", Rating: 5, Status: entity.ReviewStatusPublished, PostID: strPtr(queued.ID),
	}))

	all, err := posts.List(ctx, PostFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	published := entity.PostStatusPublished
	live, err := posts.List(ctx, PostFilter{Status: &published})
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "live", live[0].Slug)

	limited, err := posts.List(ctx, PostFilter{Limit: 2, ByUpdated: true})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	queue, err := posts.ListReviewQueue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Len(t, queue[0].ProductReviews, 1)
	assert.Equal(t, "Pending", queue[0].ProductReviews[0].ProductTitle)

	count, err := posts.CountByStatus(ctx, entity.PostStatusReview)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	reviews := NewReviewRepository(db)
	featured := NewFeaturedProductRepository(db)

	post := newPost("doomed", entity.PostStatusReview)
	require.NoError(t, posts.Create(ctx, post))
	keep := newPost("keep", entity.PostStatusReview)
	require.NoError(t, posts.Create(ctx, keep))

	for i := 0; i < 3; i++ {
		require.NoError(t, reviews.Create(ctx, &entity.ProductReview{
			ProductTitle: fmt.Sprintf("P%d", i), ReviewContent: "x", Rating: 4, Status: entity.ReviewStatusPublished, PostID: strPtr(post.ID),
		}))
	}
	require.NoError(t, reviews.Create(ctx, &entity.ProductReview{
		ProductTitle: "Other", ReviewContent: "x", Rating: 4, Status: entity.ReviewStatusPublished, PostID: strPtr(keep.ID),
	}))
	require.NoError(t, featured.Create(ctx, &entity.FeaturedProduct{
		ProductName: "Kettle", ProductImage: "i", ProductLink: "l", Rating: 4, Description: "d", PostID: post.ID,
	}))

	require.NoError(t, posts.Delete(ctx, post.ID))

	left, err := reviews.List(ctx, ReviewFilter{PostID: post.ID})
	require.NoError(t, err)
	assert.Empty(t, left)

	fps, err := featured.List(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, fps)

	others, err := reviews.List(ctx, ReviewFilter{PostID: keep.ID})
	require.NoError(t, err)
	assert.Len(t, others, 1)

	assert.ErrorIs(t, posts.Delete(ctx, post.ID), entity.ErrNotFound)
}

func TestReviewRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	repo := NewReviewRepository(db)

	post := newPost("owner", entity.PostStatusReview)
	require.NoError(t, posts.Create(ctx, post))

	review := &entity.ProductReview{
		ProductTitle:  "Blender",
		ProductImage:  "https://example.com/b.jpg",
		ProductLink:   "https://example.com/b",
		Rating:        3.5,
		ReviewContent: "Decent",
		Status:        entity.ReviewStatusReview,
		PostID:        strPtr(post.ID),
	}
	require.NoError(t, repo.Create(ctx, review))

	queue, err := repo.ListQueue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.NotNil(t, queue[0].Post)
	assert.Equal(t, "owner", queue[0].Post.Slug)
	assert.Equal(t, post.Title, queue[0].Post.Title)

	review.Status = entity.ReviewStatusPublished
	require.NoError(t, repo.Update(ctx, review))

	got, err := repo.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusPublished, got.Status)
	assert.Equal(t, 3.5, got.Rating)

	count, err := repo.CountByStatus(ctx, entity.ReviewStatusReview)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Delete(ctx, review.ID))
	assert.ErrorIs(t, repo.Delete(ctx, review.ID), entity.ErrNotFound)
	_, err = repo.GetByID(ctx, review.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestReviewRepository_Standalone(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(setupTestDB(t))

	review := &entity.ProductReview{ProductTitle: "Solo", ReviewContent: "x", Rating: 5, Status: entity.ReviewStatusPublished}
	require.NoError(t, repo.Create(ctx, review))

	got, err := repo.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PostID)
	assert.Nil(t, got.Post)
}

func TestFeaturedProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	repo := NewFeaturedProductRepository(db)

	post := newPost("host", entity.PostStatusPublished)
	require.NoError(t, posts.Create(ctx, post))

	fp := &entity.FeaturedProduct{
		ProductName: "Kettle", ProductImage: "i", ProductLink: "l", Price: "$20", Rating: 4, Description: "d", PostID: post.ID,
	}
	require.NoError(t, repo.Create(ctx, fp))
	require.NotEmpty(t, fp.ID)

	fp.Price = ""
	fp.Rating = 4.5
	require.NoError(t, repo.Update(ctx, fp))

	got, err := repo.GetByID(ctx, fp.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Price)
	assert.Equal(t, 4.5, got.Rating)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	loaded, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.FeaturedProducts, 1)

	require.NoError(t, repo.Delete(ctx, fp.ID))
	_, err = repo.GetByID(ctx, fp.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSettingsRepository_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)

	first, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Cursor", first.LogoText)

	second, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.LogoText, second.LogoText)

	var count int64
	db.Model(&models.SiteSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingsRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(setupTestDB(t))

	settings, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)

	settings.HeroTitle = "New Hero"
	settings.UseLogoImage = true
	require.NoError(t, repo.Update(ctx, settings))

	got, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New Hero", got.HeroTitle)
	assert.True(t, got.UseLogoImage)
	assert.Equal(t, "Kitchen Cursor", got.LogoText)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(fmt.Errorf("UNIQUE constraint failed: posts.slug")))
	assert.True(t, isUniqueViolation(fmt.Errorf(`ERROR: duplicate key value violates unique constraint "idx_posts_slug"`)))
	assert.False(t, isUniqueViolation(fmt.Errorf("connection refused")))
}
