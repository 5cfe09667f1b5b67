package types

import (
	"github.com/entrhq/startpage/pkg/config"
	"github.com/entrhq/startpage/pkg/weather"
)

// ClockTickMsg fires when a clock timer expires. Ticks whose Generation no
// longer matches the clock's current one belong to a stopped timer.
type ClockTickMsg struct {
	Generation int
	// Aligned is set on the one-shot tick that lands on a second boundary
	Aligned bool
}

// WeatherResultMsg carries the outcome of the startup weather fetch
type WeatherResultMsg struct {
	Reading weather.Reading
	Err     error
}

// ReloadMsg carries settings re-read from the config file
type ReloadMsg struct {
	Values map[config.Key]any
	Err    error
}
