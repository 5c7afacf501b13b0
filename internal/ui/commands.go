package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wcamp/internal/domain"
)

// refreshInterval is the cadence for re-deriving time-dependent rows.
// The program snapshot itself is never refetched on this tick.
const refreshInterval = 30 * time.Second

func (m *Model) loadEventsCmd() tea.Cmd {
	return func() tea.Msg {
		events, err := m.events.Upcoming(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return eventsLoadedMsg{events: events}
	}
}

func (m *Model) selectAndLoadCmd(eventID int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		event, err := m.events.Select(ctx, eventID)
		if err != nil {
			return errMsg{err}
		}
		// Select already resolved the directory record; load the program
		// from it instead of re-resolving the selection
		program, err := m.programs.LoadFor(ctx, event)
		if err != nil {
			return errMsg{err}
		}
		return programLoadedMsg{program: program}
	}
}

func (m *Model) loadProgramCmd() tea.Cmd {
	return func() tea.Msg {
		program, err := m.programs.Load(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return programLoadedMsg{program: program}
	}
}

func (m *Model) loadScheduleCmd(eventID int) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.schedules.Entries(context.Background(), eventID)
		if err != nil {
			return errMsg{err}
		}
		scheduled := make(map[int]bool, len(entries))
		for _, e := range entries {
			scheduled[e.SessionID] = true
		}
		return scheduleLoadedMsg{scheduled: scheduled}
	}
}

func (m *Model) toggleScheduleCmd(sessionID int) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		added, err := m.schedules.Toggle(context.Background(), program, sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrNotSchedulable) {
				// Toggling a break is a no-op, not an error banner
				return nil
			}
			return errMsg{err}
		}
		return scheduleToggledMsg{sessionID: sessionID, added: added}
	}
}

func (m *Model) loadContactCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		card, err := m.contacts.Get(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNoContactCard) {
				return contactLoadedMsg{}
			}
			return errMsg{err}
		}
		qr, err := m.contacts.QR(ctx)
		if err != nil {
			return errMsg{err}
		}
		return contactLoadedMsg{card: card, qr: qr}
	}
}

func (m *Model) saveContactCmd(card domain.ContactCard) tea.Cmd {
	return func() tea.Msg {
		if err := m.contacts.Save(context.Background(), card); err != nil {
			return errMsg{err}
		}
		return contactSavedMsg{}
	}
}

func refreshTickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg{now: t.UTC()}
	})
}
