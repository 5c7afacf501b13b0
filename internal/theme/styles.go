package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Agenda row styles
var (
	TimeStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Width(7)

	LiveBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorLive)

	ScheduledMarkStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)

	InertRowStyle = lipgloss.NewStyle().
			Foreground(ColorInert)

	TrackStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Date tab styles
var (
	DateTabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	DateTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorDateTab).
				Underline(true).
				Padding(0, 1)
)
