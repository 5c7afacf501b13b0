package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/ports"
)

// Program is an immutable snapshot of one event's full program. All the
// lookup helpers are pure derivations over the snapshot, so callers can
// requery freely (for example on a refresh tick) without touching the
// network.
type Program struct {
	Event      *domain.Event
	Details    *domain.EventDetails
	Sessions   []domain.Session
	Speakers   []domain.Speaker
	Sponsors   []domain.Sponsor
	Tracks     []domain.Track
	Categories []domain.Category
}

// GMTOffset returns the event's zone offset in decimal hours.
func (p *Program) GMTOffset() float64 { return p.Details.GMTOffset }

// Dates returns the program's distinct local dates in first-seen order.
func (p *Program) Dates() []string {
	return domain.UniqueDates(p.Sessions, p.GMTOffset())
}

// OnDate returns the sessions bucketed on a local date.
func (p *Program) OnDate(date string) []domain.Session {
	return domain.SessionsByDate(p.Sessions, p.GMTOffset(), date)
}

// BySpeaker returns the sessions featuring a speaker.
func (p *Program) BySpeaker(speakerID int) []domain.Session {
	return domain.SessionsBySpeaker(p.Sessions, speakerID)
}

// ByCategory returns the sessions tagged with a category.
func (p *Program) ByCategory(categoryID int) []domain.Session {
	return domain.SessionsByCategory(p.Sessions, categoryID)
}

// CurrentAt returns the sessions running at now.
func (p *Program) CurrentAt(now time.Time) []domain.Session {
	return domain.CurrentSessions(p.Sessions, p.GMTOffset(), now)
}

// StartTime converts a session's start timestamp into the event's zone.
func (p *Program) StartTime(s domain.Session) domain.LocalTimeView {
	return domain.ConvertTime(s.Meta.StartTime, p.GMTOffset())
}

// SessionByID finds a session in the snapshot.
func (p *Program) SessionByID(sessionID int) (*domain.Session, error) {
	for i := range p.Sessions {
		if p.Sessions[i].ID == sessionID {
			return &p.Sessions[i], nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

// SpeakerByID finds a speaker in the snapshot, or nil when absent.
func (p *Program) SpeakerByID(speakerID int) *domain.Speaker {
	for i := range p.Speakers {
		if p.Speakers[i].ID == speakerID {
			return &p.Speakers[i]
		}
	}
	return nil
}

// SessionSpeakers resolves a session's speaker references against the
// snapshot, dropping unknown or non-numeric ones.
func (p *Program) SessionSpeakers(s domain.Session) []domain.Speaker {
	speakers := make([]domain.Speaker, 0, len(s.Speakers))
	for _, ref := range s.Speakers {
		id, ok := ref.SpeakerID()
		if !ok {
			continue
		}
		if sp := p.SpeakerByID(id); sp != nil {
			speakers = append(speakers, *sp)
		}
	}
	return speakers
}

// TrackName returns a track's display name, or "" when unknown.
func (p *Program) TrackName(trackID int) string {
	for _, t := range p.Tracks {
		if t.ID == trackID {
			return t.Name
		}
	}
	return ""
}

// CategoryName returns a category's display name, or "" when unknown.
func (p *Program) CategoryName(categoryID int) string {
	for _, c := range p.Categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return ""
}

// ProgramService loads program snapshots for the selected event.
type ProgramService struct {
	events *EventService
	source ports.ProgramSource
}

// NewProgramService creates a new ProgramService
func NewProgramService(events *EventService, source ports.ProgramSource) *ProgramService {
	return &ProgramService{events: events, source: source}
}

// Load fetches the selected event's full program.
func (s *ProgramService) Load(ctx context.Context) (*Program, error) {
	event, err := s.events.Selected(ctx)
	if err != nil {
		return nil, err
	}
	return s.LoadFor(ctx, event)
}

// LoadFor fetches the full program of an already-resolved event, so
// callers holding the directory record skip a second lookup. The five
// per-site collections are independent, so they are fetched
// concurrently; any failure cancels the rest.
func (s *ProgramService) LoadFor(ctx context.Context, event *domain.Event) (*Program, error) {
	details, err := s.events.Details(ctx, event)
	if err != nil {
		logging.Logger.Error("Failed to fetch event details",
			"event", event.ID, "error", err)
		return nil, err
	}

	program := &Program{Event: event, Details: details}
	siteURL := event.SiteURL()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		program.Sessions, err = s.source.Sessions(gctx, siteURL)
		return err
	})
	g.Go(func() error {
		var err error
		program.Speakers, err = s.source.Speakers(gctx, siteURL)
		return err
	})
	g.Go(func() error {
		var err error
		program.Sponsors, err = s.source.Sponsors(gctx, siteURL)
		return err
	})
	g.Go(func() error {
		var err error
		program.Tracks, err = s.source.Tracks(gctx, siteURL)
		return err
	})
	g.Go(func() error {
		var err error
		program.Categories, err = s.source.Categories(gctx, siteURL)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to load program", "event", event.ID, "error", err)
		return nil, err
	}

	logging.Logger.Info("Program loaded",
		"event", event.ID,
		"sessions", len(program.Sessions),
		"speakers", len(program.Speakers),
		"sponsors", len(program.Sponsors))
	return program, nil
}

// SpeakerDetail fetches one speaker's full record from the event site.
// The snapshot's speaker list is a field subset; the detail endpoint
// carries the complete bio.
func (s *ProgramService) SpeakerDetail(ctx context.Context, program *Program, speakerID int) (*domain.Speaker, error) {
	speaker, err := s.source.Speaker(ctx, program.Event.SiteURL(), speakerID)
	if err != nil {
		logging.Logger.Error("Failed to fetch speaker",
			"event", program.Event.ID, "speaker", speakerID, "error", err)
		return nil, err
	}
	return speaker, nil
}

// SponsorDetail fetches one sponsor's full record from the event site.
func (s *ProgramService) SponsorDetail(ctx context.Context, program *Program, sponsorID int) (*domain.Sponsor, error) {
	sponsor, err := s.source.Sponsor(ctx, program.Event.SiteURL(), sponsorID)
	if err != nil {
		logging.Logger.Error("Failed to fetch sponsor",
			"event", program.Event.ID, "sponsor", sponsorID, "error", err)
		return nil, err
	}
	return sponsor, nil
}

// MediaItem fetches a media record from the event site, used to resolve
// featured-media references (sponsor logos, speaker portraits) into URLs.
func (s *ProgramService) MediaItem(ctx context.Context, program *Program, mediaID int) (*domain.Media, error) {
	return s.source.Media(ctx, program.Event.SiteURL(), mediaID)
}
