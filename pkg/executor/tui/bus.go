package tui

import tea "github.com/charmbracelet/bubbletea"

// predicate decides whether a subscriber owns an input event
type predicate func(msg tea.Msg) bool

// handler reacts to an input event the subscriber owns
type handler func(msg tea.Msg) tea.Cmd

type subscription struct {
	name    string
	accepts predicate
	handle  handler
}

// inputBus fans keyboard, mouse and focus events out to the modules.
// Each module subscribes with its own predicate; the bus does not know
// which keys mean what.
type inputBus struct {
	subs []subscription
}

func newInputBus() *inputBus {
	return &inputBus{}
}

// subscribe registers a module. Subscribers are consulted in registration
// order.
func (b *inputBus) subscribe(name string, accepts predicate, handle handler) {
	b.subs = append(b.subs, subscription{name: name, accepts: accepts, handle: handle})
}

// dispatch runs every subscriber that accepts msg and batches their
// commands. All predicates are evaluated before any handler runs, so a
// handler changing module state cannot redirect the same event. The
// returned names list the subscribers that handled msg.
func (b *inputBus) dispatch(msg tea.Msg) (tea.Cmd, []string) {
	var matched []subscription
	for _, sub := range b.subs {
		if sub.accepts(msg) {
			matched = append(matched, sub)
		}
	}

	var (
		cmds  []tea.Cmd
		names []string
	)
	for _, sub := range matched {
		names = append(names, sub.name)
		if cmd := sub.handle(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...), names
}

// isInputEvent reports whether msg travels over the bus
func isInputEvent(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg, tea.FocusMsg, tea.BlurMsg:
		return true
	}
	return false
}
