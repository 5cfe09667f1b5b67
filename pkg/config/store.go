package config

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"
)

// Key names a setting in the Store.
type Key string

const (
	KeySearchURL      Key = "searchUrl"      // KeySearchURL is the prefix the encoded query is appended to.
	KeyCity           Key = "city"           // KeyCity is the weather location.
	KeyAPIKey         Key = "apiKey"         // KeyAPIKey is the OpenWeatherMap API key.
	KeyUpdateInterval Key = "updateInterval" // KeyUpdateInterval is the clock tick interval.
	KeyTimezone       Key = "timezone"       // KeyTimezone is an IANA timezone name.
	KeyUnits          Key = "units"          // KeyUnits selects metric or imperial temperatures.
	KeyHourFormat     Key = "hourFormat"     // KeyHourFormat selects the 12 or 24 hour clock.
)

// Units is the temperature unit system.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// HourFormat selects 12 or 24 hour time rendering.
type HourFormat int

const (
	HourFormat12 HourFormat = 12
	HourFormat24 HourFormat = 24
)

const (
	DefaultSearchURL      = "https://searx.tiekoetter.com/search?q="
	DefaultCity           = "Istanbul"
	DefaultUpdateInterval = 1000 * time.Millisecond
	DefaultTimezone       = "Local"
)

// ChangeHook runs after a Set replaced a value with a different one.
type ChangeHook func(key Key, oldValue, newValue any)

// Store holds the runtime settings of the start page.
//
// Values are never validated on Set; readers fall back at use time. Side
// effects of a write are explicit: they live in the per-key hook table
// populated with OnChange.
type Store struct {
	mu     sync.RWMutex
	values map[Key]any
	hooks  map[Key][]ChangeHook
}

// Defaults returns the built-in settings.
func Defaults() map[Key]any {
	return map[Key]any{
		KeySearchURL:      DefaultSearchURL,
		KeyCity:           DefaultCity,
		KeyAPIKey:         "",
		KeyUpdateInterval: DefaultUpdateInterval,
		KeyTimezone:       DefaultTimezone,
		KeyUnits:          UnitsMetric,
		KeyHourFormat:     HourFormat24,
	}
}

// NewStore creates a store holding the defaults overlaid with values.
func NewStore(values map[Key]any) *Store {
	s := &Store{
		values: Defaults(),
		hooks:  make(map[Key][]ChangeHook),
	}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// OnChange registers hook for writes to key that change its value.
func (s *Store) OnChange(key Key, hook ChangeHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks[key] = append(s.hooks[key], hook)
}

// Get returns the raw value stored under key, nil when unset.
func (s *Store) Get(key Key) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores value under key. Unknown keys are stored like any other.
// Hooks registered for key run after the write, outside the lock, and only
// when the new value differs from the old one.
func (s *Store) Set(key Key, value any) {
	s.mu.Lock()
	old, existed := s.values[key]
	s.values[key] = value
	changed := !existed || !reflect.DeepEqual(old, value)
	hooks := append([]ChangeHook(nil), s.hooks[key]...)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, hook := range hooks {
		hook(key, old, value)
	}
}

// Apply sets every entry of values.
func (s *Store) Apply(values map[Key]any) {
	for k, v := range values {
		s.Set(k, v)
	}
}

// String returns the value under key formatted as a string.
func (s *Store) String(key Key) string {
	switch v := s.Get(key).(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// UpdateInterval returns the clock interval. Integers are read as
// milliseconds; anything unusable yields the default.
func (s *Store) UpdateInterval() time.Duration {
	var d time.Duration
	switch v := s.Get(KeyUpdateInterval).(type) {
	case time.Duration:
		d = v
	case int:
		d = time.Duration(v) * time.Millisecond
	case int64:
		d = time.Duration(v) * time.Millisecond
	case float64:
		d = time.Duration(v * float64(time.Millisecond))
	case string:
		if parsed, err := time.ParseDuration(v); err == nil {
			d = parsed
		}
	}
	if d <= 0 {
		return DefaultUpdateInterval
	}
	return d
}

// HourFormat returns the configured hour format. Anything other than 12
// reads as 24.
func (s *Store) HourFormat() HourFormat {
	switch v := s.Get(KeyHourFormat).(type) {
	case HourFormat:
		if v == HourFormat12 {
			return HourFormat12
		}
	case int:
		if v == 12 {
			return HourFormat12
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n == 12 {
			return HourFormat12
		}
	}
	return HourFormat24
}

// Units returns the configured unit system. Anything other than imperial
// reads as metric.
func (s *Store) Units() Units {
	switch v := s.Get(KeyUnits).(type) {
	case Units:
		if v == UnitsImperial {
			return UnitsImperial
		}
	case string:
		if Units(v) == UnitsImperial {
			return UnitsImperial
		}
	}
	return UnitsMetric
}
