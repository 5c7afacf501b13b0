package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"wcamp/internal/domain"
	"wcamp/internal/theme"
)

// EventItem implements list.Item for the event picker.
type EventItem struct {
	Event domain.EventSummary
}

// FilterValue implements list.Item
func (i EventItem) FilterValue() string {
	return i.Event.Title.Rendered + " " + i.Event.Country
}

// eventDelegate renders one event per two lines: title, then dates plus
// country.
type eventDelegate struct{}

// Height implements list.ItemDelegate
func (d eventDelegate) Height() int { return 2 }

// Spacing implements list.ItemDelegate
func (d eventDelegate) Spacing() int { return 1 }

// Update implements list.ItemDelegate
func (d eventDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d eventDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(EventItem)
	if !ok {
		return
	}

	cursor := " "
	titleStyle := theme.NormalStyle
	if index == m.Index() {
		cursor = ">"
		titleStyle = theme.SubtitleStyle
	}

	dates := domain.FormatEventDate(item.Event.StartDate)
	if end := domain.FormatEventDate(item.Event.EndDate); end != "" && end != dates {
		dates += " - " + end
	}
	meta := dates
	if item.Event.Country != "" {
		meta = strings.TrimPrefix(meta+" · "+item.Event.Country, " · ")
	}

	fmt.Fprintf(w, "%s %s\n", cursor, titleStyle.Render(item.Event.Title.Rendered))
	fmt.Fprintf(w, "  %s", theme.MutedStyle.Render(meta))
}

func newEventList(events []domain.EventSummary, width, height int) list.Model {
	items := make([]list.Item, 0, len(events))
	for _, e := range events {
		items = append(items, EventItem{Event: e})
	}

	l := list.New(items, eventDelegate{}, width, height)
	l.Title = "Upcoming WordCamps"
	l.Styles.Title = theme.TitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	return l
}
