package entity

import (
	"fmt"
	"time"

	"affiliate-blog/pkg/queue"
)

// Notification is one admin feed entry derived from a content event.
type Notification struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	PostID     string    `json:"post_id"`
	Slug       string    `json:"slug,omitempty"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Fallback   bool      `json:"fallback,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	ReceivedAt time.Time `json:"received_at"`
}

// FromEvent renders the admin-facing message for event.
func FromEvent(id string, event queue.ContentEvent, now time.Time) Notification {
	title := event.Title
	if title == "" {
		title = event.PostID
	}

	var message string
	switch event.Type {
	case queue.EventPostGenerated:
		message = fmt.Sprintf("New post %q is waiting for review with %d product reviews", title, event.ReviewCount)
		if event.Fallback {
			message += " (fallback article, text generation was unavailable)"
		}
	case queue.EventPostPublished:
		message = fmt.Sprintf("Post %q was published", title)
	case queue.EventPostDeleted:
		message = fmt.Sprintf("Post %q was deleted", title)
	default:
		message = fmt.Sprintf("%s: %s", event.Type, title)
	}

	occurred := event.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}

	return Notification{
		ID:         id,
		Type:       event.Type,
		PostID:     event.PostID,
		Slug:       event.Slug,
		Title:      title,
		Message:    message,
		Fallback:   event.Fallback,
		OccurredAt: occurred,
		ReceivedAt: now,
	}
}
