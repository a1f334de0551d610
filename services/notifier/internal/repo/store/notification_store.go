package store

import (
	"context"
	"encoding/json"
	"fmt"

	"affiliate-blog/services/notifier/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	AdminNotificationsKey = "notifications:admin"
	MaxNotifications      = 100
)

type NotificationStore interface {
	Push(ctx context.Context, n entity.Notification) error
	List(ctx context.Context, limit int) ([]entity.Notification, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}

type redisNotificationStore struct {
	client *redis.Client
}

func NewNotificationStore(client *redis.Client) NotificationStore {
	return &redisNotificationStore{client: client}
}

// Push prepends n and trims the list to MaxNotifications in one round trip.
func (s *redisNotificationStore) Push(ctx context.Context, n entity.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, AdminNotificationsKey, payload)
	pipe.LTrim(ctx, AdminNotificationsKey, 0, MaxNotifications-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

func (s *redisNotificationStore) List(ctx context.Context, limit int) ([]entity.Notification, error) {
	raw, err := s.client.LRange(ctx, AdminNotificationsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return decodeNotifications(raw), nil
}

func (s *redisNotificationStore) Count(ctx context.Context) (int64, error) {
	return s.client.LLen(ctx, AdminNotificationsKey).Result()
}

func (s *redisNotificationStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, AdminNotificationsKey).Err()
}

// decodeNotifications skips entries that no longer parse.
func decodeNotifications(raw []string) []entity.Notification {
	notifications := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err == nil {
			notifications = append(notifications, n)
		}
	}
	return notifications
}
