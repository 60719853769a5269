package utils

import (
	"fmt"
	"padel-service/internal/pkg/constvars"
	"time"
)

var localDateTimeLayouts = []string{
	constvars.DateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	constvars.DateLayout,
}

// ParseISOTime accepts RFC 3339 instants as well as zone-less date times and
// plain dates, which are read in loc (UTC when loc is nil).
func ParseISOTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as ISO-8601 date time", value)
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns the last millisecond of t's calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// SameOrBeforeDate reports whether a falls on or before b's calendar date in loc.
func SameOrBeforeDate(a, b time.Time, loc *time.Location) bool {
	return !StartOfDay(a, loc).After(StartOfDay(b, loc))
}

func DurationInMinutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

func FormatDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(constvars.DateLayout)
}
