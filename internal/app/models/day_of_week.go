package models

import (
	"fmt"
	"strings"
	"time"
)

type DayOfWeek string

const (
	Sunday    DayOfWeek = "SUNDAY"
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

var weekdays = map[DayOfWeek]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

func ParseDayOfWeek(value string) (DayOfWeek, error) {
	day := DayOfWeek(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := weekdays[day]; !ok {
		return "", fmt.Errorf("unknown day of week %q", value)
	}
	return day, nil
}

func (d DayOfWeek) Weekday() time.Weekday {
	return weekdays[d]
}
