package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/startpage/pkg/config"
	"github.com/entrhq/startpage/pkg/executor/tui/types"
)

// Update handles all state updates for the start page.
// Input events go over the bus; timer and result messages go straight to
// the module that scheduled them. Commands queued by config hooks during
// the update are returned with the rest.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

	case types.ClockTickMsg:
		cmds = append(cmds, m.clock.update(msg))

	case types.WeatherResultMsg:
		m.weather.update(msg)

	case spinner.TickMsg:
		cmds = append(cmds, m.weather.updateSpinner(msg))

	case types.ReloadMsg:
		m.handleReload(msg)

	default:
		if isInputEvent(msg) {
			cmd, handledBy := m.bus.dispatch(msg)
			if len(handledBy) > 0 {
				m.app.Logger.Debugf("%T handled by %v", msg, handledBy)
			}
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.drainPending()...)
	if m.shouldQuit {
		return m, tea.Quit
	}
	return m, tea.Batch(cmds...)
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.search.setSize(msg.Width, msg.Height)
	m.ready = true
}

// handleReload applies re-read settings. Hooks fire for keys whose value
// changed, which restarts the clock when needed.
func (m *model) handleReload(msg types.ReloadMsg) {
	if msg.Err != nil {
		m.app.Logger.Errorf("config reload failed: %v", msg.Err)
		return
	}
	m.app.Logger.Infof("applying %d reloaded settings", len(msg.Values))
	m.app.Config.Apply(msg.Values)
}

// acceptsAppKey claims the page-level keys: ctrl+c always, quit and the
// hour format toggle only while the search overlay is hidden.
func (m *model) acceptsAppKey(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return true
	}
	if m.search.visible() {
		return false
	}
	return key.Matches(keyMsg, m.keys.Quit, m.keys.ToggleHours)
}

func (m *model) handleAppKey(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit, m.keys.Quit):
		m.shouldQuit = true
	case key.Matches(keyMsg, m.keys.ToggleHours):
		next := config.HourFormat12
		if m.app.Config.HourFormat() == config.HourFormat12 {
			next = config.HourFormat24
		}
		m.app.Config.Set(config.KeyHourFormat, next)
	}
	return nil
}
