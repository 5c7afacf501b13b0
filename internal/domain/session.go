package domain

import "strconv"

// Session type values carried in meta._wcpt_session_type. Only regular
// sessions link to a detail view and participate in the personal schedule;
// anything else (breaks, lunches, "custom" rows) renders as an inert
// agenda entry.
const SessionTypeSession = "session"

// RenderedText is WordPress's rendered rich-text envelope. The rendered
// string is HTML with entity-encoded characters.
type RenderedText struct {
	Rendered string `json:"rendered"`
}

// SessionMeta carries the WCPT session metadata fields.
type SessionMeta struct {
	// StartTime is the session start as UTC epoch seconds
	StartTime int64 `json:"_wcpt_session_time"`
	// Duration is the session length in seconds (not minutes, despite
	// minute-oriented naming elsewhere in the WCPT plugin)
	Duration int    `json:"_wcpt_session_duration"`
	Type     string `json:"_wcpt_session_type"`
	Slides   string `json:"_wcpt_session_slides"`
	Video    string `json:"_wcpt_session_video"`
}

// SessionSpeaker is a speaker reference embedded in a session payload.
// IDs arrive as strings and need numeric coercion before comparison.
type SessionSpeaker struct {
	ID   string `json:"id"`
	Link string `json:"link"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SpeakerID returns the numeric speaker ID, or (0, false) when the
// upstream string is not numeric.
func (s SessionSpeaker) SpeakerID() (int, bool) {
	id, err := strconv.Atoi(s.ID)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Session is a single program entry fetched from a per-event WordPress
// site. Records are immutable once fetched; the index functions only read
// and derive.
type Session struct {
	ID         int              `json:"id"`
	Slug       string           `json:"slug"`
	Link       string           `json:"link"`
	Title      RenderedText     `json:"title"`
	Content    RenderedText     `json:"content"`
	Excerpt    RenderedText     `json:"excerpt"`
	Meta       SessionMeta      `json:"meta"`
	Tracks     []int            `json:"session_track"`
	Categories []int            `json:"session_category"`
	Speakers   []SessionSpeaker `json:"session_speakers"`
}

// IsInteractive reports whether the session links to a detail view and can
// be added to the personal schedule.
func (s Session) IsInteractive() bool {
	return s.Meta.Type == SessionTypeSession
}

// Validate performs the boundary field-presence check for a fetched
// session. Entries failing validation are dropped at the adapter edge
// rather than propagated into the index.
func (s Session) Validate() error {
	if s.ID == 0 {
		return ErrMissingField("session", "id")
	}
	if s.Title.Rendered == "" {
		return ErrMissingField("session", "title")
	}
	return nil
}

// Track is a session track taxonomy term.
type Track struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Category is a session category taxonomy term.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
