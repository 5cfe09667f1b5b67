package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/startpage/pkg/bookmarks"
)

// Color Palette
// This is the single source of truth for all start page colors.
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // Soft pastel salmon pink - primary accent
	coralPink   = lipgloss.Color("#FFCCCB") // Lighter coral accent - secondary
	mintGreen   = lipgloss.Color("#A8E6CF") // Soft mint green - weather
	mutedGray   = lipgloss.Color("#6B7280") // Muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // Bright white - primary text
)

var (
	clockTimeStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Bold(true)

	clockDateStyle = lipgloss.NewStyle().
			Foreground(coralPink)

	temperatureStyle = lipgloss.NewStyle().
				Foreground(mintGreen).
				Bold(true)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(mutedGray).
				Italic(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(salmonPink)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	searchFieldStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(salmonPink).
				Padding(0, 1)

	bookmarkStyles = bookmarks.Styles{
		Set: lipgloss.NewStyle().
			Padding(0, 3),
		Title: lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true).
			MarginBottom(1),
		Link: lipgloss.NewStyle().
			Foreground(brightWhite),
	}
)
