package chart

import "github.com/charmbracelet/lipgloss"

// Chart color palette
const (
	ColorBorder        = lipgloss.Color("#2A2A4A") // Glass border (purple tint)
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray
	ColorGraph         = lipgloss.Color("#00FFFF") // Neon cyan
	ColorAxis          = lipgloss.Color("#808080") // Gray
)

var (
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	AxisStyle = lipgloss.NewStyle().
			Foreground(ColorAxis)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Bold(true)

	LegendStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	SeriesStyle = lipgloss.NewStyle().
			Foreground(ColorGraph)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
