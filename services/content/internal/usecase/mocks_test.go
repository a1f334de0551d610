package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"affiliate-blog/pkg/database"
	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/models"
	"affiliate-blog/pkg/queue"
	"affiliate-blog/services/content/internal/entity"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockImageLookup struct {
	mock.Mock
}

func (m *MockImageLookup) RequestHeroImage(ctx context.Context, topic string) (string, error) {
	args := m.Called(ctx, topic)
	return args.String(0), args.Error(1)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) RequestArticle(ctx context.Context, topic string) (*entity.Article, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockTextGenerator) RequestProductReview(ctx context.Context, title, description string) (*entity.ReviewDraft, error) {
	args := m.Called(ctx, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReviewDraft), args.Error(1)
}

type MockProductLookup struct {
	mock.Mock
}

func (m *MockProductLookup) SearchProducts(ctx context.Context, topic string) ([]entity.Product, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

// recordingPublisher keeps every published event for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.ContentEvent
}

func (p *recordingPublisher) PublishContentEvent(ctx context.Context, event queue.ContentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

var (
	_ ImageLookup    = (*MockImageLookup)(nil)
	_ TextGenerator  = (*MockTextGenerator)(nil)
	_ ProductLookup  = (*MockProductLookup)(nil)
	_ EventPublisher = (*recordingPublisher)(nil)
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

func testLogger() *logger.Logger {
	return logger.NewNop()
}

func ptr[T any](v T) *T { return &v }
