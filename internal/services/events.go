package services

import (
	"context"
	"sort"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/ports"
)

// EventService lists upcoming WordCamps and tracks which one is selected.
type EventService struct {
	directory ports.EventDirectory
	selection ports.SelectionStore
	clock     ports.Clock
}

// NewEventService creates a new EventService
func NewEventService(
	directory ports.EventDirectory,
	selection ports.SelectionStore,
	clock ports.Clock,
) *EventService {
	return &EventService{
		directory: directory,
		selection: selection,
		clock:     clock,
	}
}

// Upcoming returns scheduled events inside the browsing window, sorted by
// start date ascending. The window keeps events that started up to one
// week ago (a running camp stays listed through its last day) and end no
// later than one month from now.
func (s *EventService) Upcoming(ctx context.Context) ([]domain.EventSummary, error) {
	events, err := s.directory.ListScheduled(ctx)
	if err != nil {
		logging.Logger.Error("Failed to list scheduled events", "error", err)
		return nil, err
	}

	now := s.clock.Now()
	earliest := now.AddDate(0, 0, -7).Unix()
	latest := now.AddDate(0, 1, 0).Unix()

	filtered := make([]domain.EventSummary, 0, len(events))
	for _, e := range events {
		start, end := e.StartEpoch(), e.EndEpoch()
		if start == 0 || end == 0 {
			logging.Logger.Warn("Skipping event with unparseable dates",
				"event", e.ID, "start", e.StartDate, "end", e.EndDate)
			continue
		}
		if start >= earliest && end <= latest {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].StartEpoch() < filtered[j].StartEpoch()
	})

	logging.Logger.Debug("Filtered upcoming events",
		"total", len(events), "kept", len(filtered))
	return filtered, nil
}

// Select persists eventID as the current event after checking it exists
// in the central directory.
func (s *EventService) Select(ctx context.Context, eventID int) (*domain.Event, error) {
	event, err := s.directory.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.selection.SelectEvent(ctx, eventID); err != nil {
		logging.Logger.Error("Failed to persist event selection", "error", err)
		return nil, err
	}
	logging.Logger.Info("Event selected", "event", eventID, "title", event.Title.Rendered)
	return event, nil
}

// Selected resolves the persisted selection into the full directory
// record. Returns domain.ErrNoEventSelected when nothing is selected.
func (s *EventService) Selected(ctx context.Context) (*domain.Event, error) {
	eventID, err := s.selection.SelectedEvent(ctx)
	if err != nil {
		return nil, err
	}
	return s.directory.GetEvent(ctx, eventID)
}

// Details fetches the event site's root payload, which carries the GMT
// offset used for all local-time rendering.
func (s *EventService) Details(ctx context.Context, event *domain.Event) (*domain.EventDetails, error) {
	return s.directory.GetEventDetails(ctx, event.SiteURL())
}

// ClearSelection forgets the current event.
func (s *EventService) ClearSelection(ctx context.Context) error {
	if err := s.selection.ClearSelection(ctx); err != nil {
		return err
	}
	logging.Logger.Info("Event selection cleared")
	return nil
}

// Artwork resolves the event's featured-media reference against the
// central directory. Returns nil without error when the event has none.
func (s *EventService) Artwork(ctx context.Context, event *domain.Event) (*domain.Media, error) {
	if event.FeaturedMedia == 0 {
		return nil, nil
	}
	return s.directory.GetMedia(ctx, event.FeaturedMedia)
}
