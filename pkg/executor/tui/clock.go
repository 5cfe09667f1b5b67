package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/startpage/pkg/app"
	"github.com/entrhq/startpage/pkg/config"
	"github.com/entrhq/startpage/pkg/executor/tui/types"
	"github.com/entrhq/startpage/pkg/format"
)

// clockModule owns the clock region. Its only state besides the rendered
// strings is the timer handle: a generation number plus the running flag.
// Bubble Tea ticks cannot be cancelled, so stopping bumps the generation and
// stale ticks are dropped on arrival.
type clockModule struct {
	app *app.Context

	generation int
	running    bool
	anchor     time.Time // wall time of the aligned tick the interval counts from

	dateText string
	timeText string
}

func newClockModule(appCtx *app.Context) *clockModule {
	return &clockModule{app: appCtx}
}

// untilNextSecond returns the delay from now to the next wall-clock second
// boundary, in (0, 1s].
func untilNextSecond(now time.Time) time.Duration {
	return time.Second - time.Duration(now.Nanosecond())
}

// init renders immediately and schedules the one-shot alignment tick.
func (c *clockModule) init() tea.Cmd {
	c.generation++
	c.running = true
	now := c.app.Now()
	c.render(now)

	gen := c.generation
	return tea.Tick(untilNextSecond(now), func(time.Time) tea.Msg {
		return types.ClockTickMsg{Generation: gen, Aligned: true}
	})
}

// stop cancels the running timer. Calling it while stopped does nothing.
func (c *clockModule) stop() {
	if !c.running {
		return
	}
	c.running = false
	c.generation++
}

// restart re-syncs the phase alignment and picks up new settings.
func (c *clockModule) restart() tea.Cmd {
	c.stop()
	return c.init()
}

// update handles a tick: drop it if its timer was stopped, otherwise
// render and schedule the next interval.
func (c *clockModule) update(msg types.ClockTickMsg) tea.Cmd {
	if !c.running || msg.Generation != c.generation {
		return nil
	}

	now := c.app.Now()
	if msg.Aligned {
		c.anchor = now
	}
	c.render(now)

	gen := c.generation
	return tea.Tick(c.nextDelay(now), func(time.Time) tea.Msg {
		return types.ClockTickMsg{Generation: gen}
	})
}

// nextDelay keeps ticks on anchor + n*interval so handling latency does not
// accumulate the way re-arming a plain timer would.
func (c *clockModule) nextDelay(now time.Time) time.Duration {
	interval := c.app.Config.UpdateInterval()
	elapsed := now.Sub(c.anchor)
	if elapsed < 0 {
		// wall clock went backwards; re-anchor
		c.anchor = now
		return interval
	}
	return interval - elapsed%interval
}

func (c *clockModule) render(now time.Time) {
	tz := c.app.Config.String(config.KeyTimezone)
	c.dateText = format.FormatDate(now, tz)
	c.timeText = format.FormatTime(now, tz, c.app.Config.HourFormat())
}

// accepts claims page visibility changes
func (c *clockModule) accepts(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.FocusMsg, tea.BlurMsg:
		return true
	}
	return false
}

// handle pauses ticking while the terminal is unfocused and re-aligns when
// focus returns.
func (c *clockModule) handle(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.BlurMsg:
		c.stop()
	case tea.FocusMsg:
		return c.restart()
	}
	return nil
}
