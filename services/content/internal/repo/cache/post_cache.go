package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"affiliate-blog/services/content/internal/entity"

	"github.com/redis/go-redis/v9"
)

const postKeyPrefix = "content:post:"

// ErrMiss is returned by Get when the slug is not cached.
var ErrMiss = errors.New("cache miss")

// PostCache keeps rendered public posts keyed by slug.
type PostCache interface {
	Get(ctx context.Context, slug string) (*entity.Post, error)
	Set(ctx context.Context, post *entity.Post) error
	Invalidate(ctx context.Context, slugs ...string) error
}

type redisPostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache returns a redis-backed cache, or a no-op cache when client is nil.
func NewPostCache(client *redis.Client, ttl time.Duration) PostCache {
	if client == nil || ttl <= 0 {
		return noopPostCache{}
	}
	return &redisPostCache{client: client, ttl: ttl}
}

func postKey(slug string) string {
	return postKeyPrefix + slug
}

func (c *redisPostCache) Get(ctx context.Context, slug string) (*entity.Post, error) {
	data, err := c.client.Get(ctx, postKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	var post entity.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("failed to decode cached post: %w", err)
	}
	return &post, nil
}

func (c *redisPostCache) Set(ctx context.Context, post *entity.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to encode post: %w", err)
	}
	return c.client.Set(ctx, postKey(post.Slug), data, c.ttl).Err()
}

func (c *redisPostCache) Invalidate(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, postKey(s))
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

type noopPostCache struct{}

func (noopPostCache) Get(context.Context, string) (*entity.Post, error) { return nil, ErrMiss }
func (noopPostCache) Set(context.Context, *entity.Post) error           { return nil }
func (noopPostCache) Invalidate(context.Context, ...string) error       { return nil }
