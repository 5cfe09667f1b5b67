package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/startpage/pkg/app"
	"github.com/entrhq/startpage/pkg/bookmarks"
	"github.com/entrhq/startpage/pkg/config"
)

// model represents the state of the start page.
// Each region of the screen belongs to one module; the model only routes
// messages and lays the regions out.
type model struct {
	app  *app.Context
	keys keyMap
	help help.Model
	bus  *inputBus

	// Modules
	search  *searchModule
	weather *weatherModule
	clock   *clockModule

	// bookmarkView is rendered once; the list is static
	bookmarkView string

	// pending holds commands produced by config hooks during an update
	pending []tea.Cmd

	// Window dimensions
	width  int
	height int
	ready  bool

	shouldQuit bool
}

// newModel wires the modules to appCtx and to each other.
func newModel(ctx context.Context, appCtx *app.Context) *model {
	keys := defaultKeyMap()
	h := help.New()
	h.ShortSeparator = " • "

	m := &model{
		app:     appCtx,
		keys:    keys,
		help:    h,
		bus:     newInputBus(),
		search:  newSearchModule(appCtx, keys),
		weather: newWeatherModule(ctx, appCtx),
		clock:   newClockModule(appCtx),
	}

	m.bus.subscribe("app", m.acceptsAppKey, m.handleAppKey)
	m.bus.subscribe("search", m.search.accepts, m.search.handle)
	m.bus.subscribe("clock", m.clock.accepts, m.clock.handle)

	appCtx.Config.OnChange(config.KeyTimezone, m.restartClock)
	appCtx.Config.OnChange(config.KeyHourFormat, m.restartClock)

	return m
}

// restartClock is the config hook for settings the clock renders with.
func (m *model) restartClock(key config.Key, oldValue, newValue any) {
	if m.clock == nil {
		return
	}
	m.app.Logger.Infof("%s changed from %v to %v, restarting clock", key, oldValue, newValue)
	m.queue(m.clock.restart())
}

// queue defers a command to the end of the current update
func (m *model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *model) drainPending() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// Init renders the static regions and starts every module independently.
func (m *model) Init() tea.Cmd {
	m.bookmarkView = bookmarks.Render(m.app.Bookmarks, bookmarkStyles, m.app.Logger.Component("bookmarks"))
	return tea.Batch(
		m.clock.init(),
		m.weather.init(),
	)
}
