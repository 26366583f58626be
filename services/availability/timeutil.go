package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes parses a 24-hour "HH:MM" string into minutes from midnight.
func TimeToMinutes(hhmm string) (int, error) {
	hh, mm, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, NewValidationError(fmt.Sprintf("invalid time %q: expected HH:MM", hhmm))
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("invalid hour in %q", hhmm))
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("invalid minute in %q", hhmm))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, NewValidationError(fmt.Sprintf("time %q out of range", hhmm))
	}
	return h*60 + m, nil
}

// MinutesToTime renders minutes from midnight as zero-padded "HH:MM".
// The caller keeps the input within [0, 1439].
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatTo12Hour converts a 24-hour "HH:MM" string into a 12-hour display
// string such as "2:30 PM". Input that fails to parse is returned as-is.
func FormatTo12Hour(hhmm string) string {
	minutes, err := TimeToMinutes(hhmm)
	if err != nil {
		return hhmm
	}
	return formatMinutes12(minutes)
}

func formatMinutes12(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	period := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		period = "PM"
	case h > 12:
		h -= 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, period)
}

// WeekdayName returns the lowercase weekday name ("sunday".."saturday")
// used in schedule payloads.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
