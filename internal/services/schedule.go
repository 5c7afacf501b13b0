package services

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/ports"
)

// DefaultReminderLead is how long before a session's start its reminder
// fires when the user has not configured a lead.
const DefaultReminderLead = 10 * time.Minute

// ScheduleService maintains the per-event personal schedule and its
// reminders.
type ScheduleService struct {
	store    ports.ScheduleStore
	notifier ports.Notifier
	clock    ports.Clock
	lead     time.Duration
}

// NewScheduleService creates a new ScheduleService. A zero lead falls
// back to DefaultReminderLead.
func NewScheduleService(
	store ports.ScheduleStore,
	notifier ports.Notifier,
	clock ports.Clock,
	lead time.Duration,
) *ScheduleService {
	if lead <= 0 {
		lead = DefaultReminderLead
	}
	return &ScheduleService{
		store:    store,
		notifier: notifier,
		clock:    clock,
		lead:     lead,
	}
}

// Toggle adds the session to the event's personal schedule, or removes it
// when already present. Returns true when the session ended up scheduled.
// Inert agenda rows (breaks, lunch) are rejected with
// domain.ErrNotSchedulable.
func (s *ScheduleService) Toggle(ctx context.Context, program *Program, sessionID int) (bool, error) {
	session, err := program.SessionByID(sessionID)
	if err != nil {
		return false, err
	}
	if !session.IsInteractive() {
		return false, domain.ErrNotSchedulable
	}

	eventID := program.Event.ID
	scheduled, err := s.IsScheduled(ctx, eventID, sessionID)
	if err != nil {
		return false, err
	}
	if scheduled {
		if err := s.store.RemoveEntry(ctx, eventID, sessionID); err != nil {
			return true, err
		}
		logging.Logger.Info("Session removed from schedule",
			"event", eventID, "session", sessionID)
		return false, nil
	}

	entry := domain.ScheduleEntry{
		EventID:   eventID,
		SessionID: sessionID,
		Title:     session.Title.Rendered,
		AddedAt:   s.clock.Now(),
	}

	// A reminder only makes sense for a session with a usable start time
	// whose remind instant is still ahead
	if view := program.StartTime(*session); view.Valid {
		entry.StartLocal = view.LocalTime
		remindAt := time.Unix(session.Meta.StartTime, 0).UTC().Add(-s.lead)
		if remindAt.After(s.clock.Now()) {
			entry.ReminderID = uuid.NewString()
			entry.RemindAt = remindAt
		}
	}

	if err := s.store.AddEntry(ctx, entry); err != nil {
		return false, err
	}
	logging.Logger.Info("Session added to schedule",
		"event", eventID, "session", sessionID, "reminder", entry.ReminderID != "")
	return true, nil
}

// Entries returns the event's schedule entries in insertion order.
func (s *ScheduleService) Entries(ctx context.Context, eventID int) ([]domain.ScheduleEntry, error) {
	return s.store.Entries(ctx, eventID)
}

// IsScheduled reports whether the session is in the event's schedule.
func (s *ScheduleService) IsScheduled(ctx context.Context, eventID, sessionID int) (bool, error) {
	entries, err := s.store.Entries(ctx, eventID)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.SessionID == sessionID {
			return true, nil
		}
	}
	return false, nil
}

// Clear empties the event's personal schedule, dropping any pending
// reminders with it.
func (s *ScheduleService) Clear(ctx context.Context, eventID int) error {
	return s.store.ClearEntries(ctx, eventID)
}

// ScanDue fires notifications for every entry whose reminder instant has
// passed and marks them notified. Returns how many fired. Callers own the
// cadence; the scan itself is a single pass.
func (s *ScheduleService) ScanDue(ctx context.Context) (int, error) {
	now := s.clock.Now()
	due, err := s.store.DueEntries(ctx, now.Unix())
	if err != nil {
		return 0, err
	}

	fired := 0
	for _, entry := range due {
		// The store query is a coarse filter; the entry owns the final
		// due decision
		if !entry.Due(now) {
			continue
		}
		body := fmt.Sprintf("%s starts at %s", entry.Title, entry.StartLocal)
		if entry.StartLocal == "" {
			body = entry.Title
		}
		if err := s.notifier.Notify("Session starting soon", body); err != nil {
			logging.Logger.Error("Failed to deliver reminder",
				"event", entry.EventID, "session", entry.SessionID, "error", err)
			continue
		}
		if err := s.store.MarkNotified(ctx, entry.EventID, entry.SessionID, now.Unix()); err != nil {
			logging.Logger.Error("Failed to mark reminder notified",
				"event", entry.EventID, "session", entry.SessionID, "error", err)
			continue
		}
		fired++
	}

	if fired > 0 {
		logging.Logger.Info("Reminders fired", "count", fired)
	}
	return fired, nil
}

// ExportICS renders the event's personal schedule as an iCalendar
// document. Entries whose session dropped out of the program since they
// were added are skipped.
func (s *ScheduleService) ExportICS(ctx context.Context, program *Program) (string, error) {
	entries, err := s.store.Entries(ctx, program.Event.ID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//wcamp//personal schedule//EN")

	for _, entry := range entries {
		session, err := program.SessionByID(entry.SessionID)
		if err != nil {
			logging.Logger.Warn("Skipping stale schedule entry",
				"event", entry.EventID, "session", entry.SessionID)
			continue
		}
		view := program.StartTime(*session)
		if !view.Valid {
			continue
		}

		start := time.Unix(session.Meta.StartTime, 0).UTC()
		end := start.Add(time.Duration(session.Meta.Duration) * time.Second)

		ev := cal.AddEvent(fmt.Sprintf("wcamp-%d-%d", entry.EventID, entry.SessionID))
		ev.SetCreatedTime(entry.AddedAt)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(session.Title.Rendered)
		if len(session.Tracks) > 0 {
			if name := program.TrackName(session.Tracks[0]); name != "" {
				ev.SetLocation(name)
			}
		}
		if text := PlainText(session.Excerpt.Rendered); text != "" {
			ev.SetDescription(text)
		}
		if session.Link != "" {
			ev.SetURL(session.Link)
		}
	}

	return cal.Serialize(), nil
}
