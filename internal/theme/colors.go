package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "33"  // WordPress blue - app name, titles
	ColorSecondary Color = "75"  // Light blue - subtitles
	ColorAccent    Color = "208" // Orange - selected/scheduled markers
)

// Session state colors
const (
	ColorLive      Color = "2" // Green - happening now
	ColorScheduled Color = "3" // Yellow - on the personal schedule
	ColorInert     Color = "8" // Gray - breaks, lunches, non-session rows
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorDateTab Color = "141" // Purple - date tab labels
	ColorSpinner Color = "205" // Pink
)
