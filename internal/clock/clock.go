package clock

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	minutesPerDay = 24 * 60
	lastMinute    = minutesPerDay - 1
)

// TimeToMinutes parses an "HH:MM" clock string into minutes since midnight.
// An empty or malformed string yields 0.
func TimeToMinutes(s string) int {
	if s == "" {
		return 0
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return h*60 + m
}

// MinutesToTime formats minutes since midnight as "HH:MM". Negative or
// non-finite input clamps to 00:00, anything past the end of the day clamps
// to 23:59. The value is rounded to the nearest whole minute first so that
// floating-point drift from upstream arithmetic never shifts the result.
func MinutesToTime(minutes float64) string {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes < 0 {
		minutes = 0
	}
	m := int(math.Round(minutes))
	if m > lastMinute {
		m = lastMinute
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutesToTime shifts an "HH:MM" clock string by delta minutes.
// An empty input yields "00:00".
func AddMinutesToTime(s string, delta float64) string {
	if s == "" {
		return "00:00"
	}
	return MinutesToTime(float64(TimeToMinutes(s)) + delta)
}

// CalculateDuration returns the hours between two "HH:MM" endpoints at
// 4-decimal precision. Empty endpoints and non-positive spans yield 0;
// overnight spans are not supported.
func CalculateDuration(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}
	diff := TimeToMinutes(end) - TimeToMinutes(start)
	if diff <= 0 {
		return 0
	}
	return math.Round(float64(diff)/60*10000) / 10000
}

// DecimalToDuration formats decimal hours as a signed "Hh Mm" display string.
func DecimalToDuration(hours float64) string {
	return MinutesToDuration(hours * 60)
}

// MinutesToDuration formats a signed minute count as "Hh Mm", e.g. -95 -> "-1h 35m".
func MinutesToDuration(minutes float64) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	total := int(math.Round(minutes))
	return fmt.Sprintf("%s%dh %dm", sign, total/60, total%60)
}
