package domain

import (
	"strconv"
	"strings"
	"time"
)

// EventSummary is the field subset of a central-directory event kept for
// the selection screen.
type EventSummary struct {
	ID            int          `json:"id"`
	Title         RenderedText `json:"title"`
	FeaturedMedia int          `json:"featured_media"`
	URL           string       `json:"URL"`
	Country       string       `json:"_venue_country_name"`
	// StartDate and EndDate arrive as Unix-epoch numeric strings despite
	// the upstream field names claiming YYYY-mm-dd
	StartDate string `json:"Start Date (YYYY-mm-dd)"`
	EndDate   string `json:"End Date (YYYY-mm-dd)"`
}

// StartEpoch returns the start date as epoch seconds, or 0 when the
// upstream string is not numeric.
func (e EventSummary) StartEpoch() int64 {
	return parseEpochString(e.StartDate)
}

// EndEpoch returns the end date as epoch seconds, or 0 when the upstream
// string is not numeric.
func (e EventSummary) EndEpoch() int64 {
	return parseEpochString(e.EndDate)
}

// Validate performs the boundary field-presence check for a directory
// event.
func (e EventSummary) Validate() error {
	if e.ID == 0 {
		return ErrMissingField("event", "id")
	}
	if e.URL == "" {
		return ErrMissingField("event", "URL")
	}
	return nil
}

// Event is the full central-directory record for one WordCamp.
type Event struct {
	ID            int          `json:"id"`
	Slug          string       `json:"slug"`
	Link          string       `json:"link"`
	Title         RenderedText `json:"title"`
	Content       RenderedText `json:"content"`
	FeaturedMedia int          `json:"featured_media"`
	URL           string       `json:"URL"`
	Location      string       `json:"Location"`
	VenueName     string       `json:"Venue Name"`
	VenueCity     string       `json:"_venue_city"`
	Country       string       `json:"_venue_country_name"`
	Timezone      string       `json:"Event Timezone"`
	StartDate     string       `json:"Start Date (YYYY-mm-dd)"`
	EndDate       string       `json:"End Date (YYYY-mm-dd)"`
	Hashtag       string       `json:"WordCamp Hashtag"`
	Twitter       string       `json:"Twitter"`
}

// SiteURL returns the event's base URL without a trailing slash, the form
// every per-event API path is joined onto.
func (e Event) SiteURL() string {
	return strings.TrimRight(e.URL, "/")
}

// EventDetails is the per-event site root payload. GMTOffset drives every
// time conversion for the event: signed decimal hours, fractional for
// non-hour-aligned zones (5.5, -3.75).
type EventDetails struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	GMTOffset   float64 `json:"gmt_offset"`
	Timezone    string  `json:"timezone_string"`
}

// Media is the subset of a WP media payload used for event artwork.
type Media struct {
	ID      int    `json:"id"`
	AltText string `json:"alt_text"`
	Details struct {
		File  string               `json:"file"`
		Sizes map[string]MediaSize `json:"sizes"`
	} `json:"media_details"`
}

// MediaSize is a single rendition of a media item.
type MediaSize struct {
	File      string `json:"file"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MimeType  string `json:"mime_type"`
	SourceURL string `json:"source_url"`
}

// SourceURL returns the full-size rendition's URL, falling back to the
// widest available size. Empty when the payload carries no renditions.
func (m Media) SourceURL() string {
	if full, ok := m.Details.Sizes["full"]; ok && full.SourceURL != "" {
		return full.SourceURL
	}
	var best MediaSize
	for _, size := range m.Details.Sizes {
		if size.SourceURL == "" {
			continue
		}
		if best.SourceURL == "" || size.Width > best.Width {
			best = size
		}
	}
	return best.SourceURL
}

// FormatEventDate renders an epoch-string event date as a short label,
// or "" when the value is unusable.
func FormatEventDate(epochString string) string {
	epoch := parseEpochString(epochString)
	if epoch <= 0 {
		return ""
	}
	return time.Unix(epoch, 0).UTC().Format("Jan 2, 2006")
}

func parseEpochString(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
