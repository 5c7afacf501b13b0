package ports

import (
	"context"

	"wcamp/internal/domain"
)

// SelectionStore persists the selected event ID across runs.
type SelectionStore interface {
	// SelectedEvent returns the persisted event ID, or
	// domain.ErrNoEventSelected when nothing is selected
	SelectedEvent(ctx context.Context) (int, error)

	// SelectEvent persists eventID as the current selection
	SelectEvent(ctx context.Context, eventID int) error

	// ClearSelection removes the persisted selection
	ClearSelection(ctx context.Context) error
}

// ContactStore persists the user's contact card.
type ContactStore interface {
	// Contact returns the saved card, or domain.ErrNoContactCard
	Contact(ctx context.Context) (*domain.ContactCard, error)

	// SaveContact stores the card, replacing any previous one
	SaveContact(ctx context.Context, card domain.ContactCard) error

	// DeleteContact removes the saved card
	DeleteContact(ctx context.Context) error
}

// ScheduleStore persists the personal schedule.
type ScheduleStore interface {
	// Entries returns the schedule entries for an event in insertion order
	Entries(ctx context.Context, eventID int) ([]domain.ScheduleEntry, error)

	// AddEntry inserts an entry; adding an existing (event, session) pair
	// replaces it
	AddEntry(ctx context.Context, entry domain.ScheduleEntry) error

	// RemoveEntry deletes one entry; missing entries are not an error
	RemoveEntry(ctx context.Context, eventID, sessionID int) error

	// ClearEntries deletes all entries for an event
	ClearEntries(ctx context.Context, eventID int) error

	// DueEntries returns entries across all events whose reminder is due
	DueEntries(ctx context.Context, now int64) ([]domain.ScheduleEntry, error)

	// MarkNotified records that the entry's reminder fired at the given
	// epoch second
	MarkNotified(ctx context.Context, eventID, sessionID int, at int64) error
}

// StateRepository is the composite persistence interface.
type StateRepository interface {
	SelectionStore
	ContactStore
	ScheduleStore
	Close() error
}
