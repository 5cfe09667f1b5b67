// Package format renders the date, time and temperature strings shown on
// the start page. All functions are pure: the current time is passed in.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/entrhq/startpage/pkg/config"
)

const (
	longDateLayout     = "Monday, January 2, 2006"
	fallbackDateLayout = "02.01.2006"
	time24Layout       = "15:04:05"
	time12Layout       = "3:04:05 PM"
)

// meridiemPattern matches AM/PM markers, including dotted and a few
// localized forms, with surrounding whitespace.
var meridiemPattern = regexp.MustCompile(`(?i)\s*(?:a\.\s?m\.|p\.\s?m\.|\bam\b|\bpm\b|午前|午後|上午|下午|오전|오후)\s*`)

// resolveLocation maps a configured timezone name to a location. The empty
// name and "Local" mean the machine's zone.
func resolveLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// FormatDate renders now as a long date in timezone. An unknown timezone
// falls back to DD.MM.YYYY in local time.
func FormatDate(now time.Time, timezone string) string {
	loc, err := resolveLocation(timezone)
	if err != nil {
		return now.Local().Format(fallbackDateLayout)
	}
	return now.In(loc).Format(longDateLayout)
}

// FormatTime renders now as a clock string in timezone. In 12-hour mode the
// AM/PM marker is stripped. An unknown timezone falls back to local
// HH:MM:SS regardless of hourFormat.
func FormatTime(now time.Time, timezone string, hourFormat config.HourFormat) string {
	loc, err := resolveLocation(timezone)
	if err != nil {
		return now.Local().Format(time24Layout)
	}

	t := now.In(loc)
	if hourFormat != config.HourFormat12 {
		return t.Format(time24Layout)
	}
	return StripMeridiem(t.Format(time12Layout))
}

// StripMeridiem removes AM/PM markers from a rendered time.
func StripMeridiem(s string) string {
	return strings.TrimSpace(meridiemPattern.ReplaceAllString(s, " "))
}

// FormatTemperature rounds value half up and appends the unit suffix.
func FormatTemperature(value float64, units config.Units) string {
	rounded := int(math.Floor(value + 0.5))
	suffix := "°C"
	if units == config.UnitsImperial {
		suffix = "°F"
	}
	return fmt.Sprintf("%d %s", rounded, suffix)
}
