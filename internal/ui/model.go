package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/ports"
	"wcamp/internal/services"
	"wcamp/internal/theme"
)

type uiState int

const (
	stateLoading uiState = iota
	statePickingEvent
	stateAgenda
	stateDetail
	stateSpeakers
	stateSponsors
	stateSchedule
	stateNow
	stateConnect
	stateContactForm
)

type Model struct {
	events    *services.EventService
	programs  *services.ProgramService
	schedules *services.ScheduleService
	contacts  *services.ContactService
	clock     ports.Clock

	keys  KeyMap
	state uiState

	eventList list.Model
	spin      spinner.Model

	program   *services.Program
	scheduled map[int]bool
	dates     []string
	dateIdx   int
	cursor    int
	detail    *domain.Session

	contactCard *domain.ContactCard
	contactQR   string
	contactForm *huh.Form
	formCard    domain.ContactCard

	err    error
	width  int
	height int
}

func NewModel(
	events *services.EventService,
	programs *services.ProgramService,
	schedules *services.ScheduleService,
	contacts *services.ContactService,
	clock ports.Clock,
) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorSpinner)

	return &Model{
		events:    events,
		programs:  programs,
		schedules: schedules,
		contacts:  contacts,
		clock:     clock,
		keys:      NewKeyMap(),
		state:     stateLoading,
		spin:      sp,
		scheduled: map[int]bool{},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadEventsCmd(), refreshTickCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.eventList.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshTickMsg:
		// Re-arm the tick; time-derived rows pick up the new instant on
		// the next render
		return m, refreshTickCmd()

	case errMsg:
		logging.Logger.Error("UI command failed", "error", msg.err)
		m.err = msg.err
		if m.state == stateLoading {
			m.state = statePickingEvent
		}
		return m, nil

	case eventsLoadedMsg:
		m.eventList = newEventList(msg.events, m.width, max(m.height-2, 20))
		m.state = statePickingEvent
		return m, nil

	case programLoadedMsg:
		m.program = msg.program
		m.dates = msg.program.Dates()
		m.dateIdx = 0
		m.cursor = 0
		m.err = nil
		m.state = stateAgenda
		return m, m.loadScheduleCmd(msg.program.Event.ID)

	case scheduleLoadedMsg:
		m.scheduled = msg.scheduled
		return m, nil

	case scheduleToggledMsg:
		if msg.added {
			m.scheduled[msg.sessionID] = true
		} else {
			delete(m.scheduled, msg.sessionID)
		}
		return m, nil

	case contactLoadedMsg:
		m.contactCard = msg.card
		m.contactQR = msg.qr
		if msg.card == nil {
			return m.openContactForm()
		}
		m.state = stateConnect
		return m, nil

	case contactSavedMsg:
		m.state = stateLoading
		return m, m.loadContactCmd()
	}

	switch m.state {
	case statePickingEvent:
		return m.updatePickingEvent(msg)
	case stateContactForm:
		return m.updateContactForm(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case stateAgenda, stateSpeakers, stateSponsors, stateSchedule, stateNow, stateConnect:
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *Model) updatePickingEvent(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// While the list filter is active all keys belong to it
		if m.eventList.FilterState() != list.Filtering {
			switch {
			case key.Matches(keyMsg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(keyMsg, m.keys.Open):
				if item, ok := m.eventList.SelectedItem().(EventItem); ok {
					m.err = nil
					m.state = stateLoading
					return m, tea.Batch(m.spin.Tick, m.selectAndLoadCmd(item.Event.ID))
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.eventList, cmd = m.eventList.Update(msg)
	return m, cmd
}

// updateBrowsing handles every program screen that shares the
// agenda-style row navigation and screen-switch keys.
func (m *Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Back):
		if m.state == stateAgenda {
			m.program = nil
			m.state = stateLoading
			return m, tea.Batch(m.spin.Tick, m.loadEventsCmd())
		}
		m.state = stateAgenda
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.Agenda):
		m.state = stateAgenda
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.Now):
		m.state = stateNow
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.Speakers):
		m.state = stateSpeakers
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.Sponsors):
		m.state = stateSponsors
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.Schedule):
		m.state = stateSchedule
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.Connect):
		m.state = stateLoading
		return m, tea.Batch(m.spin.Tick, m.loadContactCmd())

	case key.Matches(keyMsg, m.keys.Refresh):
		m.state = stateLoading
		return m, tea.Batch(m.spin.Tick, m.loadProgramCmd())

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevDate):
		if m.state == stateAgenda && m.dateIdx > 0 {
			m.dateIdx--
			m.cursor = 0
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.NextDate):
		if m.state == stateAgenda && m.dateIdx < len(m.dates)-1 {
			m.dateIdx++
			m.cursor = 0
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Open):
		if session := m.sessionUnderCursor(); session != nil && session.IsInteractive() {
			m.detail = session
			m.state = stateDetail
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Toggle):
		if session := m.sessionUnderCursor(); session != nil {
			return m, m.toggleScheduleCmd(session.ID)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		m.detail = nil
		m.state = stateAgenda
		return m, nil
	case key.Matches(keyMsg, m.keys.Toggle):
		return m, m.toggleScheduleCmd(m.detail.ID)
	}
	return m, nil
}

func (m *Model) openContactForm() (tea.Model, tea.Cmd) {
	if m.contactCard != nil {
		m.formCard = *m.contactCard
	} else {
		m.formCard = domain.ContactCard{}
	}

	m.contactForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Full name").Value(&m.formCard.FullName),
			huh.NewInput().Title("Email").Value(&m.formCard.Email),
			huh.NewInput().Title("Company").Value(&m.formCard.Company),
			huh.NewInput().Title("Website").Value(&m.formCard.WebsiteURL),
			huh.NewInput().Title("Phone").Value(&m.formCard.Phone),
		),
	)
	m.state = stateContactForm
	return m, m.contactForm.Init()
}

func (m *Model) updateContactForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.contactForm = nil
			m.state = stateAgenda
			return m, nil
		}
	}

	form, cmd := m.contactForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.contactForm = f
	}

	if m.contactForm.State == huh.StateCompleted {
		card := m.formCard
		m.contactForm = nil
		if err := card.Validate(); err != nil {
			m.err = err
			m.state = stateAgenda
			return m, nil
		}
		m.state = stateLoading
		return m, tea.Batch(m.spin.Tick, m.saveContactCmd(card))
	}

	return m, cmd
}

// currentRows returns the session rows backing the active screen. The
// speakers and sponsors screens navigate their own collections.
func (m *Model) currentRows() []domain.Session {
	if m.program == nil {
		return nil
	}
	switch m.state {
	case stateAgenda:
		if len(m.dates) == 0 {
			return nil
		}
		return m.program.OnDate(m.dates[m.dateIdx])
	case stateNow:
		return m.program.CurrentAt(m.clock.Now())
	case stateSchedule:
		return m.scheduledSessions()
	}
	return nil
}

// rowCount is how far the cursor can travel on the active screen.
func (m *Model) rowCount() int {
	if m.program != nil {
		switch m.state {
		case stateSpeakers:
			return len(m.program.Speakers)
		case stateSponsors:
			return len(m.program.Sponsors)
		}
	}
	return len(m.currentRows())
}

func (m *Model) sessionUnderCursor() *domain.Session {
	rows := m.currentRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return &rows[m.cursor]
}

// scheduledSessions resolves the scheduled-ID set against the snapshot,
// in agenda order.
func (m *Model) scheduledSessions() []domain.Session {
	sessions := make([]domain.Session, 0, len(m.scheduled))
	for _, date := range m.dates {
		for _, s := range m.program.OnDate(date) {
			if m.scheduled[s.ID] {
				sessions = append(sessions, s)
			}
		}
	}
	return sessions
}
