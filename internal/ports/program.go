package ports

import (
	"context"

	"wcamp/internal/domain"
)

// ProgramSource reads program data from a per-event WordPress site.
// siteURL is the event's base URL without a trailing slash.
type ProgramSource interface {
	Sessions(ctx context.Context, siteURL string) ([]domain.Session, error)
	Speakers(ctx context.Context, siteURL string) ([]domain.Speaker, error)
	Speaker(ctx context.Context, siteURL string, speakerID int) (*domain.Speaker, error)
	Sponsors(ctx context.Context, siteURL string) ([]domain.Sponsor, error)
	Sponsor(ctx context.Context, siteURL string, sponsorID int) (*domain.Sponsor, error)
	Tracks(ctx context.Context, siteURL string) ([]domain.Track, error)
	Categories(ctx context.Context, siteURL string) ([]domain.Category, error)
	Media(ctx context.Context, siteURL string, mediaID int) (*domain.Media, error)
}
