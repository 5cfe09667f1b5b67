package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/startpage/pkg/app"
	"github.com/entrhq/startpage/pkg/executor/tui/types"
	"github.com/entrhq/startpage/pkg/format"
)

const (
	weatherFallbackTemperature = "N/A"
	weatherFallbackDescription = "Connection error"
)

// weatherModule owns the temperature and description regions. It fetches
// once at startup and never again.
type weatherModule struct {
	app     *app.Context
	ctx     context.Context
	spinner spinner.Model
	loading bool

	temperature string
	description string
}

func newWeatherModule(ctx context.Context, appCtx *app.Context) *weatherModule {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return &weatherModule{
		app:     appCtx,
		ctx:     ctx,
		spinner: s,
	}
}

// init starts the single fetch. The request runs off the update loop and
// reports back with a WeatherResultMsg.
func (w *weatherModule) init() tea.Cmd {
	w.loading = true
	fetcher := w.app.Weather
	query := w.app.WeatherQuery()
	ctx := w.ctx
	w.app.Logger.Debugf("fetching weather for %q (%s)", query.City, query.Units)

	fetch := func() tea.Msg {
		reading, err := fetcher.Fetch(ctx, query)
		return types.WeatherResultMsg{Reading: reading, Err: err}
	}
	return tea.Batch(w.spinner.Tick, fetch)
}

// update renders the result or the fallback text.
func (w *weatherModule) update(msg types.WeatherResultMsg) {
	w.loading = false
	if msg.Err != nil {
		w.app.Logger.Errorf("weather request failed: %v", msg.Err)
		w.temperature = weatherFallbackTemperature
		w.description = weatherFallbackDescription
		return
	}
	w.temperature = format.FormatTemperature(msg.Reading.Temperature, w.app.Config.Units())
	w.description = msg.Reading.Description
}

// updateSpinner advances the loading animation while the request is out.
func (w *weatherModule) updateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !w.loading {
		return nil
	}
	var cmd tea.Cmd
	w.spinner, cmd = w.spinner.Update(msg)
	return cmd
}
