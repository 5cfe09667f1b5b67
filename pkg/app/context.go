// Package app holds the state shared by the start page's UI modules.
package app

import (
	"time"

	"github.com/entrhq/startpage/pkg/bookmarks"
	"github.com/entrhq/startpage/pkg/config"
	"github.com/entrhq/startpage/pkg/logging"
	"github.com/entrhq/startpage/pkg/search"
	"github.com/entrhq/startpage/pkg/weather"
)

// Context is passed to every UI module at initialization. It replaces
// process-wide singletons so modules can be built and tested in isolation.
type Context struct {
	Config    *config.Store
	Logger    *logging.Logger
	Search    *search.Dispatcher
	Weather   weather.Fetcher
	Bookmarks []bookmarks.Set

	// Now is the wall clock; tests substitute a fixed one.
	Now func() time.Time
}

// Option configures a Context
type Option func(*Context)

// WithOpener sets the opener used for search and links
func WithOpener(opener search.Opener) Option {
	return func(c *Context) {
		c.Search = search.NewDispatcher(func() string { return c.Config.String(config.KeySearchURL) }, opener)
	}
}

// WithWeather sets the weather fetcher
func WithWeather(f weather.Fetcher) Option {
	return func(c *Context) {
		c.Weather = f
	}
}

// WithBookmarks replaces the bookmark list
func WithBookmarks(sets []bookmarks.Set) Option {
	return func(c *Context) {
		c.Bookmarks = sets
	}
}

// WithClock replaces the wall clock
func WithClock(now func() time.Time) Option {
	return func(c *Context) {
		c.Now = now
	}
}

// New builds a Context around a config store and logger, defaulting to the
// system browser, the OpenWeatherMap client, the built-in bookmarks and
// time.Now.
func New(cfg *config.Store, logger *logging.Logger, opts ...Option) *Context {
	c := &Context{
		Config:    cfg,
		Logger:    logger,
		Weather:   weather.NewClient(),
		Bookmarks: bookmarks.Default,
		Now:       time.Now,
	}
	WithOpener(search.BrowserOpener)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WeatherQuery builds the weather request from the current settings.
func (c *Context) WeatherQuery() weather.Query {
	return weather.Query{
		City:   c.Config.String(config.KeyCity),
		Units:  string(c.Config.Units()),
		APIKey: c.Config.String(config.KeyAPIKey),
	}
}
