package ports

import (
	"context"

	"wcamp/internal/domain"
)

// EventDirectory reads the central WordCamp directory.
type EventDirectory interface {
	// ListScheduled returns scheduled events, unfiltered and in API order
	ListScheduled(ctx context.Context) ([]domain.EventSummary, error)

	// GetEvent returns the full directory record for an event
	GetEvent(ctx context.Context, eventID int) (*domain.Event, error)

	// GetEventDetails fetches the event site's root payload, which
	// carries the gmt_offset every time conversion depends on
	GetEventDetails(ctx context.Context, siteURL string) (*domain.EventDetails, error)

	// GetMedia returns a central-directory media item
	GetMedia(ctx context.Context, mediaID int) (*domain.Media, error)
}
