// Package main provides the startpage terminal application: a clock, the
// local weather, a bookmark list and a web search prompt on one screen.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/startpage/pkg/app"
	"github.com/entrhq/startpage/pkg/config"
	"github.com/entrhq/startpage/pkg/executor/tui"
	"github.com/entrhq/startpage/pkg/logging"
)

const version = "0.1.0" // Version of startpage

// Config holds the command line configuration. Empty fields leave the
// file and environment settings in place.
type Config struct {
	ConfigPath  string
	City        string
	APIKey      string
	Units       string
	HourFormat  int
	Timezone    string
	ShowVersion bool
}

func main() {
	// Parse command line flags
	cfg := parseFlags()

	// Show version if requested
	if cfg.ShowVersion {
		fmt.Printf("startpage v%s\n", version)
		return
	}

	if err := cfg.validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if runErr := run(ctx, cfg); runErr != nil {
		cancel()
		log.Fatalf("Application error: %v", runErr)
	}
	cancel()
}

// parseFlags parses command line flags
func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to the YAML config file (default: ~/.startpage/config.yaml)")
	flag.StringVar(&cfg.City, "city", "", "City to show the weather for (or set "+config.EnvCity+")")
	flag.StringVar(&cfg.APIKey, "api-key", "", "OpenWeatherMap API key (or set "+config.EnvAPIKey+")")
	flag.StringVar(&cfg.Units, "units", "", "Temperature units: metric or imperial")
	flag.IntVar(&cfg.HourFormat, "hour-format", 0, "Clock format: 12 or 24")
	flag.StringVar(&cfg.Timezone, "timezone", "", "IANA timezone for the clock (default: local)")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "startpage - a terminal new-tab page\n\n")
		fmt.Fprintf(os.Stderr, "Usage: startpage [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  %-26s OpenWeatherMap API key\n", config.EnvAPIKey)
		fmt.Fprintf(os.Stderr, "  %-26s Weather city\n", config.EnvCity)
		fmt.Fprintf(os.Stderr, "\nSend SIGHUP to reload the config file.\n")
	}

	flag.Parse()
	return cfg
}

// validate checks the values flag parsing cannot
func (c *Config) validate() error {
	switch config.Units(c.Units) {
	case "", config.UnitsMetric, config.UnitsImperial:
	default:
		return fmt.Errorf("units must be %q or %q, got %q", config.UnitsMetric, config.UnitsImperial, c.Units)
	}

	switch config.HourFormat(c.HourFormat) {
	case 0, config.HourFormat12, config.HourFormat24:
	default:
		return fmt.Errorf("hour format must be 12 or 24, got %d", c.HourFormat)
	}
	return nil
}

// override lays the flags over file and environment settings
func (c *Config) override(s *config.Settings) {
	if c.City != "" {
		s.City = c.City
	}
	if c.APIKey != "" {
		s.APIKey = c.APIKey
	}
	if c.Units != "" {
		s.Units = config.Units(c.Units)
	}
	if c.HourFormat != 0 {
		s.HourFormat = config.HourFormat(c.HourFormat)
	}
	if c.Timezone != "" {
		s.Timezone = c.Timezone
	}
}

// loadValues reads the file and environment, then applies the flags
func (c *Config) loadValues() (map[config.Key]any, error) {
	settings, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	c.override(&settings)
	return settings.Values(), nil
}

// run executes the main application logic
func run(ctx context.Context, cfg *Config) error {
	values, err := cfg.loadValues()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// stderr would draw over the alt screen, so a failed log file means
	// running without logs
	logger, err := logging.NewLogger("startpage")
	if err != nil {
		fmt.Fprintf(os.Stderr, "continuing without a log file: %v\n", err)
		logger = logging.Discard("startpage")
	}
	defer logger.Close()

	store := config.NewStore(values)
	if store.String(config.KeyAPIKey) == "" {
		logger.Warnf("no weather API key configured; set %s or use -api-key", config.EnvAPIKey)
	}

	appCtx := app.New(store, logger)
	executor := tui.NewExecutor(appCtx, cfg.loadValues)

	if err := executor.Run(ctx); err != nil {
		return fmt.Errorf("executor error: %w", err)
	}
	return nil
}
