package usecase

import (
	"context"
	"time"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/queue"
	"affiliate-blog/services/notifier/internal/entity"
	"affiliate-blog/services/notifier/internal/repo/store"

	"github.com/google/uuid"
)

type NotificationUseCase interface {
	HandleContentEvent(ctx context.Context, event queue.ContentEvent) error
	GetNotifications(ctx context.Context, limit int) ([]entity.Notification, int64, error)
	ClearNotifications(ctx context.Context) error
}

type notificationUseCase struct {
	store  store.NotificationStore
	logger *logger.Logger
	now    func() time.Time
}

func NewNotificationUseCase(notificationStore store.NotificationStore, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		store:  notificationStore,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// HandleContentEvent stores one admin notification per event. A returned
// error sends the delivery to the delayed retry queue.
func (uc *notificationUseCase) HandleContentEvent(ctx context.Context, event queue.ContentEvent) error {
	notification := entity.FromEvent(uuid.New().String(), event, uc.now())

	if err := uc.store.Push(ctx, notification); err != nil {
		uc.logger.Error("[NOTIFIER] Failed to store %s notification for post %s: %v", event.Type, event.PostID, err)
		return err
	}

	uc.logger.Info("[NOTIFIER] %s", notification.Message)
	return nil
}

func (uc *notificationUseCase) GetNotifications(ctx context.Context, limit int) ([]entity.Notification, int64, error) {
	if limit <= 0 || limit > store.MaxNotifications {
		limit = store.MaxNotifications
	}

	notifications, err := uc.store.List(ctx, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.store.Count(ctx)
	if err != nil {
		uc.logger.Warn("[NOTIFIER] Failed to count notifications: %v", err)
		total = int64(len(notifications))
	}

	return notifications, total, nil
}

func (uc *notificationUseCase) ClearNotifications(ctx context.Context) error {
	if err := uc.store.Clear(ctx); err != nil {
		return err
	}
	uc.logger.Info("[NOTIFIER] Cleared admin notifications")
	return nil
}
