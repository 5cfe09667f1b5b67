package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire start page.
// This is called by Bubble Tea whenever the UI needs to be redrawn.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.search.visible() {
		return m.renderSearchOverlay()
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		m.buildClock(),
		"",
		m.buildWeather(),
		"",
		m.bookmarkView,
		"",
		m.buildTips(),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, page)
}

// buildClock renders the time above the date
func (m *model) buildClock() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		clockTimeStyle.Render(m.clock.timeText),
		clockDateStyle.Render(m.clock.dateText),
	)
}

// buildWeather renders the temperature and description, or the spinner
// while the request is in flight
func (m *model) buildWeather() string {
	if m.weather.loading {
		return m.weather.spinner.View() + descriptionStyle.Render(" fetching weather")
	}
	return temperatureStyle.Render(m.weather.temperature) + "  " + descriptionStyle.Render(m.weather.description)
}

// buildTips renders the key hints
func (m *model) buildTips() string {
	return tipsStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderSearchOverlay draws the search field centered on a clean
// background, with its hints underneath. fieldBounds relies on the field
// being centered on its own.
func (m *model) renderSearchOverlay() string {
	field := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.search.view(),
		lipgloss.WithWhitespaceChars(" "),
	)

	hints := tipsStyle.Render(m.help.FullHelpView(m.keys.FullHelp()))
	return placeBottom(field, hints)
}

// placeBottom replaces the last line of base with line
func placeBottom(base, line string) string {
	i := strings.LastIndex(base, "\n")
	if i < 0 {
		return line
	}
	return base[:i+1] + line
}
