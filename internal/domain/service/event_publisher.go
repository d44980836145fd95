package service

import (
	"context"
	"time"
)

// MediaEventType names what happened to a stored image.
type MediaEventType string

const (
	MediaEventAvatarUpdated    MediaEventType = "avatar.updated"
	MediaEventBannerUpdated    MediaEventType = "banner.updated"
	MediaEventPortfolioAdded   MediaEventType = "portfolio.added"
	MediaEventPortfolioRemoved MediaEventType = "portfolio.removed"
)

// MediaEvent announces a change to stored media, e.g. for CDN purges or search indexing.
type MediaEvent struct {
	EventID    string         `json:"event_id"`
	Type       MediaEventType `json:"type"`
	UserID     string         `json:"user_id"`
	ImageID    string         `json:"image_id,omitempty"` // Portfolio events only.
	URL        string         `json:"url,omitempty"`
	ObjectKey  string         `json:"object_key"`
	OccurredAt time.Time      `json:"occurred_at"`
	RequestID  string         `json:"request_id,omitempty"`
}

// MediaEventPublisher delivers media events to a message broker.
type MediaEventPublisher interface {
	Publish(ctx context.Context, event *MediaEvent) error
	Close() error
}
