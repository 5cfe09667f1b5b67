// Package tui provides the terminal start page: a clock, the current
// weather, a bookmark list and a search overlay, driven by Bubble Tea.
//
// The code is split into multiple files:
// - executor.go: program lifecycle and config reload
// - model.go: model structure and module wiring
// - update.go: Bubble Tea Update function and message routing
// - view.go: Bubble Tea View function and layout
// - bus.go: input event bus the modules subscribe to
// - clock.go, weather.go, search.go: the UI modules
// - keys.go: key bindings
// - styles.go: color scheme and styling
package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/startpage/pkg/app"
	"github.com/entrhq/startpage/pkg/config"
	"github.com/entrhq/startpage/pkg/executor/tui/types"
)

// Reloader re-reads settings, typically from the config file.
type Reloader func() (map[config.Key]any, error)

// Executor runs the start page until the user quits.
type Executor struct {
	app     *app.Context
	reload  Reloader
	program *tea.Program
}

// NewExecutor creates an executor. reload may be nil, in which case SIGHUP
// is not handled.
func NewExecutor(appCtx *app.Context, reload Reloader) *Executor {
	return &Executor{
		app:    appCtx,
		reload: reload,
	}
}

// Run starts the program and blocks until the user exits or ctx is done.
func (e *Executor) Run(ctx context.Context) error {
	e.app.Logger.Infof("start page starting")

	m := newModel(ctx, e.app)
	e.program = tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if e.reload != nil {
		stop := e.watchReload(ctx)
		defer stop()
	}

	if _, err := e.program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI program: %w", err)
	}

	e.app.Logger.Infof("start page stopped")
	return nil
}

// watchReload forwards SIGHUP as a ReloadMsg until the returned stop
// function is called.
func (e *Executor) watchReload(ctx context.Context) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sigChan:
				values, err := e.reload()
				e.program.Send(types.ReloadMsg{Values: values, Err: err})
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
