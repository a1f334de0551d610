package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// Routing keys on the content exchange.
const (
	EventPostGenerated = "post.generated"
	EventPostPublished = "post.published"
	EventPostDeleted   = "post.deleted"
)

// ContentEvent is the wire payload published on the content exchange.
type ContentEvent struct {
	Type        string    `json:"type"`
	PostID      string    `json:"post_id"`
	Slug        string    `json:"slug,omitempty"`
	Title       string    `json:"title,omitempty"`
	Status      string    `json:"status,omitempty"`
	ReviewCount int       `json:"review_count,omitempty"`
	Fallback    bool      `json:"fallback,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e ContentEvent) Validate() error {
	switch e.Type {
	case EventPostGenerated, EventPostPublished, EventPostDeleted:
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.PostID == "" {
		return fmt.Errorf("event %s has no post_id", e.Type)
	}
	return nil
}

func DecodeEvent(body []byte) (ContentEvent, error) {
	var event ContentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return ContentEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := event.Validate(); err != nil {
		return ContentEvent{}, err
	}
	return event, nil
}
