package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/startpage/pkg/config"
)

// 2026-10-15 13:07:09 UTC, a Thursday
var fixedNow = time.Date(2026, time.October, 15, 13, 7, 9, 0, time.UTC)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{"utc", "UTC", "Thursday, October 15, 2026"},
		{"ahead across midnight", "Pacific/Kiritimati", "Friday, October 16, 2026"},
		{"istanbul", "Europe/Istanbul", "Thursday, October 15, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(fixedNow, tt.timezone))
		})
	}
}

func TestFormatDate_InvalidTimezoneFallsBack(t *testing.T) {
	got := FormatDate(fixedNow, "Mars/Olympus_Mons")
	assert.Equal(t, fixedNow.Local().Format("02.01.2006"), got)
}

func TestFormatDate_LocalAliases(t *testing.T) {
	want := fixedNow.Local().Format("Monday, January 2, 2006")
	assert.Equal(t, want, FormatDate(fixedNow, ""))
	assert.Equal(t, want, FormatDate(fixedNow, "Local"))
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name       string
		timezone   string
		hourFormat config.HourFormat
		want       string
	}{
		{"24h utc", "UTC", config.HourFormat24, "13:07:09"},
		{"12h utc", "UTC", config.HourFormat12, "1:07:09"},
		{"24h istanbul", "Europe/Istanbul", config.HourFormat24, "16:07:09"},
		{"12h tokyo", "Asia/Tokyo", config.HourFormat12, "10:07:09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(fixedNow, tt.timezone, tt.hourFormat))
		})
	}
}

func TestFormatTime_NeverShowsMeridiem(t *testing.T) {
	zones := []string{"UTC", "America/New_York", "Asia/Tokyo", "Australia/Sydney", "Europe/Istanbul"}
	for hour := 0; hour < 24; hour++ {
		now := time.Date(2026, time.January, 1, hour, 30, 0, 0, time.UTC)
		for _, tz := range zones {
			for _, hf := range []config.HourFormat{config.HourFormat12, config.HourFormat24} {
				got := strings.ToUpper(FormatTime(now, tz, hf))
				assert.NotContains(t, got, "AM", "%s %d %v", tz, hour, hf)
				assert.NotContains(t, got, "PM", "%s %d %v", tz, hour, hf)
				assert.NotEmpty(t, got)
			}
		}
	}
}

func TestFormatTime_InvalidTimezoneFallsBack(t *testing.T) {
	want := fixedNow.Local().Format("15:04:05")
	assert.Equal(t, want, FormatTime(fixedNow, "Not/AZone", config.HourFormat12))
	assert.Equal(t, want, FormatTime(fixedNow, "Not/AZone", config.HourFormat24))
}

func TestStripMeridiem(t *testing.T) {
	tests := map[string]string{
		"1:07:09 PM":    "1:07:09",
		"1:07:09 am":    "1:07:09",
		"1:07:09 p.m.":  "1:07:09",
		"1:07:09 a. m.": "1:07:09",
		"午後1:07:09":     "1:07:09",
		"下午 1:07:09":    "1:07:09",
		"오전 1:07:09":    "1:07:09",
		"13:07:09":      "13:07:09",
	}
	for in, want := range tests {
		assert.Equal(t, want, StripMeridiem(in), in)
	}
}

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		value float64
		units config.Units
		want  string
	}{
		{19.6, config.UnitsMetric, "20 °C"},
		{19.4, config.UnitsMetric, "19 °C"},
		{19.5, config.UnitsMetric, "20 °C"},
		{-0.4, config.UnitsMetric, "0 °C"},
		{-2.5, config.UnitsMetric, "-2 °C"},
		{-2.6, config.UnitsMetric, "-3 °C"},
		{71.2, config.UnitsImperial, "71 °F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTemperature(tt.value, tt.units), "%v %s", tt.value, tt.units)
	}
}
