package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: ink on paper, with a few signal colors
var (
	Primary = lipgloss.Color("#2563EB") // Ink Blue
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Success = lipgloss.Color("#16A34A") // Green
	Error   = lipgloss.Color("#DC2626") // Red
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(10)

	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Rule = lipgloss.NewStyle().
		Foreground(Border)
)

// Form controls
var (
	Focused = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Blurred = lipgloss.NewStyle().
		Foreground(Text)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Notification badges
var (
	BadgeInfo = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	BadgeSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	BadgeWarning = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	BadgeError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
