package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/startpage/pkg/app"
	"github.com/entrhq/startpage/pkg/config"
	"github.com/entrhq/startpage/pkg/logging"
	"github.com/entrhq/startpage/pkg/weather"
)

// 2026-10-15 13:07:09.250 UTC
var testNow = time.Date(2026, time.October, 15, 13, 7, 9, 250*int(time.Millisecond), time.UTC)

type recordingOpener struct {
	mu   sync.Mutex
	urls []string
}

func (r *recordingOpener) OpenURL(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return nil
}

func (r *recordingOpener) opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

type stubFetcher struct {
	reading weather.Reading
	err     error
	queries []weather.Query
}

func (s *stubFetcher) Fetch(_ context.Context, q weather.Query) (weather.Reading, error) {
	s.queries = append(s.queries, q)
	return s.reading, s.err
}

type testEnv struct {
	model   *model
	opener  *recordingOpener
	fetcher *stubFetcher
	now     time.Time
}

// newTestEnv builds a sized model around a fresh store, a recording
// opener, a stub fetcher and a controllable clock.
func newTestEnv(t *testing.T, values map[config.Key]any, opts ...app.Option) *testEnv {
	t.Helper()

	env := &testEnv{
		opener:  &recordingOpener{},
		fetcher: &stubFetcher{reading: weather.Reading{Temperature: 19.6, Description: "clear sky"}},
		now:     testNow,
	}

	base := []app.Option{
		app.WithOpener(env.opener),
		app.WithWeather(env.fetcher),
		app.WithClock(func() time.Time { return env.now }),
	}
	appCtx := app.New(config.NewStore(values), logging.Discard("test"), append(base, opts...)...)

	env.model = newModel(context.Background(), appCtx)
	env.model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return env
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func typeText(m *model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(keySpace)
			continue
		}
		m.Update(keyRunes(string(r)))
	}
}

// runBatch executes cmd and flattens batches, returning every message. Only
// pass commands that do not sleep; ticks and cursor blinks would.
func runBatch(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, runBatch(c)...)
	}
	return msgs
}
