package entity

import (
	"testing"
	"time"

	"affiliate-blog/pkg/queue"

	"github.com/stretchr/testify/assert"
)

func TestFromEvent(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	occurred := now.Add(-time.Minute)

	tests := []struct {
		name     string
		event    queue.ContentEvent
		contains string
	}{
		{
			name:     "generated",
			event:    queue.ContentEvent{Type: queue.EventPostGenerated, PostID: "p1", Title: "Best Kettles", ReviewCount: 3, OccurredAt: occurred},
			contains: `"Best Kettles" is waiting for review with 3 product reviews`,
		},
		{
			name:     "generated fallback",
			event:    queue.ContentEvent{Type: queue.EventPostGenerated, PostID: "p1", Title: "Best Kettles", Fallback: true},
			contains: "fallback article",
		},
		{
			name:     "published",
			event:    queue.ContentEvent{Type: queue.EventPostPublished, PostID: "p2", Title: "Cold Brew"},
			contains: `"Cold Brew" was published`,
		},
		{
			name:     "deleted without title",
			event:    queue.ContentEvent{Type: queue.EventPostDeleted, PostID: "p3"},
			contains: `"p3" was deleted`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := FromEvent("n-1", tt.event, now)
			assert.Contains(t, n.Message, tt.contains)
			assert.Equal(t, tt.event.Type, n.Type)
			assert.Equal(t, now, n.ReceivedAt)
		})
	}
}

func TestFromEvent_DefaultsOccurredAt(t *testing.T) {
	now := time.Now().UTC()
	n := FromEvent("n-1", queue.ContentEvent{Type: queue.EventPostPublished, PostID: "p"}, now)
	assert.Equal(t, now, n.OccurredAt)
}
