package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvAPIKey overrides the weather API key from the file.
const EnvAPIKey = "STARTPAGE_WEATHER_API_KEY"

// EnvCity overrides the weather city from the file.
const EnvCity = "STARTPAGE_CITY"

// Settings is the on-disk form of the start page configuration.
// Zero fields mean "not set" and leave the store default in place.
type Settings struct {
	SearchURL        string     `yaml:"search_url"`
	City             string     `yaml:"city"`
	APIKey           string     `yaml:"api_key"`
	UpdateIntervalMS int        `yaml:"update_interval_ms"`
	Timezone         string     `yaml:"timezone"`
	Units            Units      `yaml:"units"`
	HourFormat       HourFormat `yaml:"hour_format"`
}

// DefaultPath returns ~/.startpage/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".startpage", "config.yaml"), nil
}

// LoadFile reads settings from a YAML file. A missing file yields empty
// settings and no error; the file is never created or written.
func LoadFile(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return s, nil
}

// Load reads the YAML file at path (DefaultPath when empty), loads a .env
// file from the working directory when present, and applies environment
// overrides.
func Load(path string) (Settings, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Settings{}, err
		}
		path = p
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load .env: %w", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		return s, err
	}
	s.ApplyEnvironment(os.LookupEnv)
	return s, nil
}

// ApplyEnvironment overrides fields from environment variables.
func (s *Settings) ApplyEnvironment(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		s.APIKey = v
	}
	if v, ok := lookup(EnvCity); ok && v != "" {
		s.City = v
	}
}

// Values returns the set fields keyed for Store.Apply.
func (s Settings) Values() map[Key]any {
	values := make(map[Key]any)
	if s.SearchURL != "" {
		values[KeySearchURL] = s.SearchURL
	}
	if s.City != "" {
		values[KeyCity] = s.City
	}
	if s.APIKey != "" {
		values[KeyAPIKey] = s.APIKey
	}
	if s.UpdateIntervalMS > 0 {
		values[KeyUpdateInterval] = time.Duration(s.UpdateIntervalMS) * time.Millisecond
	}
	if s.Timezone != "" {
		values[KeyTimezone] = s.Timezone
	}
	if s.Units != "" {
		values[KeyUnits] = s.Units
	}
	if s.HourFormat != 0 {
		values[KeyHourFormat] = s.HourFormat
	}
	return values
}
