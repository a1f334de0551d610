package usecase

import (
	"context"
	"time"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/queue"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/repo/cache"
)

// effects runs the best-effort follow-ups of a post mutation: public cache
// invalidation and content events. Failures are logged and swallowed.
type effects struct {
	publisher EventPublisher
	cache     cache.PostCache
	logger    *logger.Logger
}

func (e effects) invalidate(ctx context.Context, slugs ...string) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Invalidate(ctx, slugs...); err != nil {
		e.logger.Warn("Failed to invalidate cached posts %v: %v", slugs, err)
	}
}

func (e effects) publish(ctx context.Context, event queue.ContentEvent) {
	if e.publisher == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	if err := e.publisher.PublishContentEvent(ctx, event); err != nil {
		e.logger.Warn("Failed to publish %s for post %s: %v", event.Type, event.PostID, err)
	}
}

func (e effects) postPublished(ctx context.Context, post *entity.Post) {
	e.publish(ctx, queue.ContentEvent{
		Type:   queue.EventPostPublished,
		PostID: post.ID,
		Slug:   post.Slug,
		Title:  post.Title,
		Status: string(post.Status),
	})
}

func (e effects) postDeleted(ctx context.Context, post *entity.Post) {
	e.invalidate(ctx, post.Slug)
	e.publish(ctx, queue.ContentEvent{
		Type:   queue.EventPostDeleted,
		PostID: post.ID,
		Slug:   post.Slug,
		Title:  post.Title,
	})
}
