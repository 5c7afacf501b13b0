package wordcamp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/ports"
)

// DefaultCentralURL is the central WordCamp directory.
const DefaultCentralURL = "https://central.wordcamp.org"

// The WordPress REST API caps per_page at 100; every listing endpoint
// requests the maximum, matching what the event sites actually hold.
const perPage = 100

// Client implements ports.EventDirectory and ports.ProgramSource against
// the central directory and per-event WordPress REST APIs. It carries no
// retry or backoff logic beyond the http.Client timeout; staleness and
// memoization are the caller's concern.
type Client struct {
	httpClient *http.Client
	centralURL string
}

// Verify interface compliance at compile time
var (
	_ ports.EventDirectory = (*Client)(nil)
	_ ports.ProgramSource  = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithCentralURL overrides the central directory base URL (tests).
func WithCentralURL(url string) Option {
	return func(c *Client) {
		c.centralURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a WordCamp API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		centralURL: DefaultCentralURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListScheduled implements ports.EventDirectory.
func (c *Client) ListScheduled(ctx context.Context) ([]domain.EventSummary, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/wordcamps?status=wcpt-scheduled&per_page=%d", c.centralURL, perPage)

	var payload []domain.EventSummary
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("failed to list scheduled events: %w", err)
	}

	return validEvents(payload), nil
}

// GetEvent implements ports.EventDirectory.
func (c *Client) GetEvent(ctx context.Context, eventID int) (*domain.Event, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/wordcamps/%d", c.centralURL, eventID)

	var event domain.Event
	if err := c.getJSON(ctx, url, &event); err != nil {
		return nil, fmt.Errorf("failed to fetch event %d: %w", eventID, err)
	}
	if event.ID == 0 {
		return nil, domain.ErrEventNotFound
	}
	return &event, nil
}

// GetEventDetails implements ports.EventDirectory. siteURL may carry a
// trailing slash; it is cleaned before joining.
func (c *Client) GetEventDetails(ctx context.Context, siteURL string) (*domain.EventDetails, error) {
	url := cleanURL(siteURL) + "/wp-json/"

	var details domain.EventDetails
	if err := c.getJSON(ctx, url, &details); err != nil {
		return nil, fmt.Errorf("failed to fetch event details: %w", err)
	}
	return &details, nil
}

// GetMedia implements ports.EventDirectory.
func (c *Client) GetMedia(ctx context.Context, mediaID int) (*domain.Media, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/media/%d", c.centralURL, mediaID)

	var media domain.Media
	if err := c.getJSON(ctx, url, &media); err != nil {
		return nil, fmt.Errorf("failed to fetch media %d: %w", mediaID, err)
	}
	return &media, nil
}

// Sessions implements ports.ProgramSource. Malformed entries are dropped
// at this boundary with a warning, never propagated into the index.
func (c *Client) Sessions(ctx context.Context, siteURL string) ([]domain.Session, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/sessions?per_page=%d", cleanURL(siteURL), perPage)

	var payload []domain.Session
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(payload))
	for _, s := range payload {
		if err := s.Validate(); err != nil {
			logging.Logger.Warn("Dropping malformed session", "error", err, "id", s.ID)
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// Speakers implements ports.ProgramSource.
func (c *Client) Speakers(ctx context.Context, siteURL string) ([]domain.Speaker, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/speakers?per_page=%d", cleanURL(siteURL), perPage)

	var payload []domain.Speaker
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch speakers: %w", err)
	}

	speakers := make([]domain.Speaker, 0, len(payload))
	for _, s := range payload {
		if err := s.Validate(); err != nil {
			logging.Logger.Warn("Dropping malformed speaker", "error", err, "id", s.ID)
			continue
		}
		speakers = append(speakers, s)
	}
	return speakers, nil
}

// Speaker implements ports.ProgramSource.
func (c *Client) Speaker(ctx context.Context, siteURL string, speakerID int) (*domain.Speaker, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/speakers/%d", cleanURL(siteURL), speakerID)

	var speaker domain.Speaker
	if err := c.getJSON(ctx, url, &speaker); err != nil {
		return nil, fmt.Errorf("failed to fetch speaker %d: %w", speakerID, err)
	}
	return &speaker, nil
}

// Sponsors implements ports.ProgramSource.
func (c *Client) Sponsors(ctx context.Context, siteURL string) ([]domain.Sponsor, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/sponsors?per_page=%d", cleanURL(siteURL), perPage)

	var payload []domain.Sponsor
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch sponsors: %w", err)
	}

	sponsors := make([]domain.Sponsor, 0, len(payload))
	for _, s := range payload {
		if err := s.Validate(); err != nil {
			logging.Logger.Warn("Dropping malformed sponsor", "error", err, "id", s.ID)
			continue
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, nil
}

// Sponsor implements ports.ProgramSource.
func (c *Client) Sponsor(ctx context.Context, siteURL string, sponsorID int) (*domain.Sponsor, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/sponsors/%d", cleanURL(siteURL), sponsorID)

	var sponsor domain.Sponsor
	if err := c.getJSON(ctx, url, &sponsor); err != nil {
		return nil, fmt.Errorf("failed to fetch sponsor %d: %w", sponsorID, err)
	}
	return &sponsor, nil
}

// Tracks implements ports.ProgramSource.
func (c *Client) Tracks(ctx context.Context, siteURL string) ([]domain.Track, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/session_track?per_page=%d", cleanURL(siteURL), perPage)

	var tracks []domain.Track
	if err := c.getJSON(ctx, url, &tracks); err != nil {
		return nil, fmt.Errorf("failed to fetch tracks: %w", err)
	}
	return tracks, nil
}

// Categories implements ports.ProgramSource.
func (c *Client) Categories(ctx context.Context, siteURL string) ([]domain.Category, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/session_category?per_page=%d", cleanURL(siteURL), perPage)

	var categories []domain.Category
	if err := c.getJSON(ctx, url, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// Media implements ports.ProgramSource.
func (c *Client) Media(ctx context.Context, siteURL string, mediaID int) (*domain.Media, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/media/%d", cleanURL(siteURL), mediaID)

	var media domain.Media
	if err := c.getJSON(ctx, url, &media); err != nil {
		return nil, fmt.Errorf("failed to fetch event media %d: %w", mediaID, err)
	}
	return &media, nil
}

// getJSON performs a GET request and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	logging.Logger.Debug("API request", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// cleanURL removes a trailing slash before path concatenation.
func cleanURL(siteURL string) string {
	return strings.TrimRight(siteURL, "/")
}

func validEvents(events []domain.EventSummary) []domain.EventSummary {
	valid := make([]domain.EventSummary, 0, len(events))
	for _, e := range events {
		if err := e.Validate(); err != nil {
			logging.Logger.Warn("Dropping malformed event", "error", err, "id", e.ID)
			continue
		}
		valid = append(valid, e)
	}
	return valid
}
