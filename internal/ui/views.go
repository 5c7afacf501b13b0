package ui

import (
	"fmt"
	"strings"

	"wcamp/internal/domain"
	"wcamp/internal/services"
	"wcamp/internal/theme"
)

func (m *Model) View() string {
	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n %s Loading...\n", m.spin.View())
	case statePickingEvent:
		return m.viewEventPicker()
	case stateAgenda:
		return m.viewAgenda()
	case stateDetail:
		return m.viewDetail()
	case stateSpeakers:
		return m.viewSpeakers()
	case stateSponsors:
		return m.viewSponsors()
	case stateSchedule:
		return m.viewRowScreen("My schedule", "nothing scheduled yet, press s on a session")
	case stateNow:
		return m.viewRowScreen("Happening now", "no sessions running right now")
	case stateConnect:
		return m.viewConnect()
	case stateContactForm:
		if m.contactForm != nil {
			return theme.TitleStyle.Render("Your contact card") + "\n" + m.contactForm.View()
		}
	}
	return ""
}

func (m *Model) viewEventPicker() string {
	var b strings.Builder
	b.WriteString(m.eventList.View())
	if m.err != nil {
		b.WriteString("\n" + theme.ErrorStyle.Render(m.err.Error()))
	}
	return b.String()
}

func (m *Model) viewAgenda() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(m.viewDateTabs())
	b.WriteString("\n\n")

	rows := m.currentRows()
	if len(rows) == 0 {
		b.WriteString(theme.MutedStyle.Render("  no sessions on this day"))
		b.WriteString("\n")
	} else {
		live := sessionIDs(m.program.CurrentAt(m.clock.Now()))
		for i, s := range rows {
			b.WriteString(m.renderRow(s, i == m.cursor, live[s.ID]))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.viewFooter("enter detail · s schedule · ←/→ day · n now · p speakers · o sponsors · m mine · c connect · r reload · esc events · q quit"))
	return b.String()
}

// viewRowScreen renders the happening-now and my-schedule screens, which
// are plain session row listings.
func (m *Model) viewRowScreen(title, emptyHint string) string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(theme.SubtitleStyle.Render(title))
	b.WriteString("\n\n")

	rows := m.currentRows()
	if len(rows) == 0 {
		b.WriteString(theme.MutedStyle.Render("  " + emptyHint))
		b.WriteString("\n")
	} else {
		live := sessionIDs(m.program.CurrentAt(m.clock.Now()))
		for i, s := range rows {
			b.WriteString(m.renderRow(s, i == m.cursor, live[s.ID]))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.viewFooter("enter detail · s schedule · a agenda · esc back · q quit"))
	return b.String()
}

func (m *Model) viewDetail() string {
	s := m.detail
	view := m.program.StartTime(*s)

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(theme.SubtitleStyle.Render(s.Title.Rendered))
	b.WriteString("\n\n")

	end := domain.EndTimeOfDay(view.LocalTime, s.Meta.Duration)
	b.WriteString(fmt.Sprintf("  %s %s\n",
		theme.TimeStyle.Render(view.LocalTime),
		theme.MutedStyle.Render(fmt.Sprintf("- %s · %s", end, domain.LongDate(view.LocalDate())))))

	if names := m.speakerNames(*s); names != "" {
		b.WriteString("  " + theme.NormalStyle.Render(names) + "\n")
	}
	if len(s.Tracks) > 0 {
		if track := m.program.TrackName(s.Tracks[0]); track != "" {
			b.WriteString("  " + theme.TrackStyle.Render(track) + "\n")
		}
	}
	if m.scheduled[s.ID] {
		b.WriteString("  " + theme.ScheduledMarkStyle.Render("★ on your schedule") + "\n")
	}

	if text := services.PlainText(s.Content.Rendered); text != "" {
		b.WriteString("\n" + theme.NormalStyle.Render(text) + "\n")
	}
	if s.Meta.Slides != "" {
		b.WriteString("\n  " + theme.MutedStyle.Render("slides: "+s.Meta.Slides))
	}
	if s.Meta.Video != "" {
		b.WriteString("\n  " + theme.MutedStyle.Render("video: "+s.Meta.Video))
	}

	b.WriteString(m.viewFooter("s toggle schedule · esc back · q quit"))
	return b.String()
}

func (m *Model) viewSpeakers() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(theme.SubtitleStyle.Render("Speakers"))
	b.WriteString("\n\n")

	if len(m.program.Speakers) == 0 {
		b.WriteString(theme.MutedStyle.Render("  no speakers published yet"))
		b.WriteString("\n")
	}
	for i, sp := range m.program.Speakers {
		cursor := " "
		style := theme.NormalStyle
		if i == m.cursor {
			cursor = ">"
			style = theme.SubtitleStyle
		}
		b.WriteString(fmt.Sprintf("%s %s", cursor, style.Render(sp.Title.Rendered)))
		if talks := m.program.BySpeaker(sp.ID); len(talks) > 0 {
			b.WriteString(" " + theme.MutedStyle.Render(fmt.Sprintf("(%d sessions)", len(talks))))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter("a agenda · esc back · q quit"))
	return b.String()
}

func (m *Model) viewSponsors() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(theme.SubtitleStyle.Render("Sponsors"))
	b.WriteString("\n\n")

	if len(m.program.Sponsors) == 0 {
		b.WriteString(theme.MutedStyle.Render("  no sponsors published yet"))
		b.WriteString("\n")
	}
	for i, sp := range m.program.Sponsors {
		cursor := " "
		style := theme.NormalStyle
		if i == m.cursor {
			cursor = ">"
			style = theme.SubtitleStyle
		}
		b.WriteString(fmt.Sprintf("%s %s", cursor, style.Render(sp.Title.Rendered)))
		if sp.Meta.Website != "" {
			b.WriteString(" " + theme.MutedStyle.Render(sp.Meta.Website))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter("a agenda · esc back · q quit"))
	return b.String()
}

func (m *Model) viewConnect() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(theme.SubtitleStyle.Render("Connect"))
	b.WriteString("\n\n")

	if m.contactCard != nil {
		b.WriteString("  " + theme.NormalStyle.Render(m.contactCard.FullName))
		b.WriteString(" " + theme.MutedStyle.Render(m.contactCard.Email) + "\n\n")
		b.WriteString(m.contactQR)
		b.WriteString("\n" + theme.MutedStyle.Render("  scan with a phone to import the contact card"))
	}

	b.WriteString(m.viewFooter("esc back · q quit"))
	return b.String()
}

func (m *Model) viewHeader() string {
	if m.program == nil {
		return ""
	}
	title := theme.AppNameStyle.Render(m.program.Event.Title.Rendered)
	var location string
	if m.program.Event.Location != "" {
		location = "  " + theme.MutedStyle.Render(m.program.Event.Location)
	}
	return title + location + "\n\n"
}

func (m *Model) viewDateTabs() string {
	tabs := make([]string, 0, len(m.dates))
	for i, date := range m.dates {
		label := domain.DayName(date) + " " + domain.DayNumber(date) + " " + domain.MonthName(date)
		if i == m.dateIdx {
			tabs = append(tabs, theme.DateTabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, theme.DateTabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m *Model) viewFooter(help string) string {
	out := "\n" + theme.HelpStyle.Render(help)
	if m.err != nil {
		out += "\n" + theme.ErrorStyle.Render(m.err.Error())
	}
	return out
}

func (m *Model) renderRow(s domain.Session, selected, live bool) string {
	view := m.program.StartTime(s)

	cursor := " "
	titleStyle := theme.NormalStyle
	if !s.IsInteractive() {
		titleStyle = theme.InertRowStyle
	}
	if selected {
		cursor = ">"
		titleStyle = theme.SubtitleStyle
	}

	row := fmt.Sprintf("%s %s %s", cursor,
		theme.TimeStyle.Render(view.LocalTime),
		titleStyle.Render(s.Title.Rendered))

	if live {
		row += " " + theme.LiveBadgeStyle.Render("● live")
	}
	if m.scheduled[s.ID] {
		row += " " + theme.ScheduledMarkStyle.Render("★")
	}
	if len(s.Tracks) > 0 {
		if track := m.program.TrackName(s.Tracks[0]); track != "" {
			row += " " + theme.TrackStyle.Render(track)
		}
	}
	return row
}

func (m *Model) speakerNames(s domain.Session) string {
	speakers := m.program.SessionSpeakers(s)
	names := make([]string, 0, len(speakers))
	for _, sp := range speakers {
		names = append(names, sp.Title.Rendered)
	}
	return strings.Join(names, ", ")
}

func sessionIDs(sessions []domain.Session) map[int]bool {
	ids := make(map[int]bool, len(sessions))
	for _, s := range sessions {
		ids[s.ID] = true
	}
	return ids
}
