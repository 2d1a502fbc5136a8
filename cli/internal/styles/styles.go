// ABOUTME: Shared lipgloss styles for consistent CLI output
// ABOUTME: Defines the palette and the sentiment-to-color mapping

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary = lipgloss.Color("#7C3AED") // Purple
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Danger  = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(Muted).
		Width(14)

	StatusOK = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)
)

// Sentiment returns the style for a sentiment class
func Sentiment(sentiment string) lipgloss.Style {
	switch sentiment {
	case "positive":
		return StatusOK
	case "negative":
		return StatusCritical
	default:
		return StatusWarning
	}
}

// Bool renders a yes/no flag in the status colors
func Bool(ok bool) string {
	if ok {
		return StatusOK.Render("yes")
	}
	return StatusCritical.Render("no")
}
