package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/startpage/pkg/app"
	"github.com/entrhq/startpage/pkg/executor/tui/types"
)

const (
	searchFieldMaxWidth = 60
	searchFieldMinWidth = 20
)

// rect is an inclusive-exclusive screen rectangle in cells
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// searchModule owns the search overlay: a two-state machine (hidden,
// visible) around a text field.
type searchModule struct {
	app   *app.Context
	keys  keyMap
	state types.SearchState
	input textinput.Model

	width  int
	height int
}

func newSearchModule(appCtx *app.Context, keys keyMap) *searchModule {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = "› "
	ti.CharLimit = 512
	ti.Width = searchFieldMaxWidth - 7

	return &searchModule{
		app:   appCtx,
		keys:  keys,
		state: types.SearchHidden,
		input: ti,
	}
}

func (s *searchModule) visible() bool {
	return s.state == types.SearchVisible
}

func (s *searchModule) setSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = s.fieldWidth() - 7
}

// fieldWidth is the outer width of the bordered field
func (s *searchModule) fieldWidth() int {
	w := s.width - 4
	if w > searchFieldMaxWidth {
		w = searchFieldMaxWidth
	}
	if w < searchFieldMinWidth {
		w = searchFieldMinWidth
	}
	return w
}

// fieldView renders the bordered input
func (s *searchModule) fieldView() string {
	return searchFieldStyle.Width(s.fieldWidth() - 2).Render(s.input.View())
}

// fieldBounds locates the field on screen. It mirrors the centering done
// by lipgloss.Place in the overlay view.
func (s *searchModule) fieldBounds() rect {
	field := s.fieldView()
	w, h := lipgloss.Width(field), lipgloss.Height(field)
	return rect{
		x: max(s.width-w, 0) / 2,
		y: max(s.height-h, 0) / 2,
		w: w,
		h: h,
	}
}

// accepts claims space while hidden, and every key except ctrl+c plus left
// clicks while visible.
func (s *searchModule) accepts(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, s.keys.ForceQuit) {
			return false
		}
		if !s.visible() {
			return key.Matches(msg, s.keys.OpenSearch)
		}
		return true
	case tea.MouseMsg:
		return s.visible() &&
			msg.Action == tea.MouseActionPress &&
			msg.Button == tea.MouseButtonLeft
	}
	return false
}

func (s *searchModule) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.MouseMsg:
		if !s.fieldBounds().contains(msg.X, msg.Y) {
			s.hide()
		}
	}
	return nil
}

func (s *searchModule) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !s.visible() {
		return s.show()
	}

	switch {
	case key.Matches(msg, s.keys.CloseSearch):
		s.hide()
		return nil
	case key.Matches(msg, s.keys.Submit):
		s.submit()
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// show makes the overlay visible and focuses the field
func (s *searchModule) show() tea.Cmd {
	s.state = types.SearchVisible
	return s.input.Focus()
}

// hide clears and blurs the field and hides the overlay
func (s *searchModule) hide() {
	s.input.Reset()
	s.input.Blur()
	s.state = types.SearchHidden
}

// submit dispatches the current query. The overlay stays open.
func (s *searchModule) submit() {
	target, err := s.app.Search.OpenSearch(s.input.Value())
	if err != nil {
		s.app.Logger.Errorf("search dispatch failed: %v", err)
		return
	}
	if target != "" {
		s.app.Logger.Infof("opened search %s", target)
	}
}

func (s *searchModule) view() string {
	return s.fieldView()
}
