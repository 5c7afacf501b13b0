package ui

import (
	"time"

	"wcamp/internal/domain"
	"wcamp/internal/services"
)

// Messages produced by the async commands in commands.go. Model handles
// them in Update and moves the state machine accordingly.

// eventsLoadedMsg carries the upcoming-events listing.
type eventsLoadedMsg struct {
	events []domain.EventSummary
}

// programLoadedMsg carries a freshly loaded program snapshot.
type programLoadedMsg struct {
	program *services.Program
}

// scheduleLoadedMsg carries the scheduled-session set for the current
// event.
type scheduleLoadedMsg struct {
	scheduled map[int]bool
}

// scheduleToggledMsg reports the outcome of a schedule toggle.
type scheduleToggledMsg struct {
	sessionID int
	added     bool
}

// contactLoadedMsg carries the saved contact card and its QR rendition,
// both nil/empty when no card is saved yet.
type contactLoadedMsg struct {
	card *domain.ContactCard
	qr   string
}

// contactSavedMsg reports that the contact form was submitted and stored.
type contactSavedMsg struct{}

// refreshTickMsg re-renders time-derived rows (live badges, the
// happening-now screen) on a fixed cadence.
type refreshTickMsg struct {
	now time.Time
}

// errMsg carries any command failure into the UI.
type errMsg struct {
	err error
}
