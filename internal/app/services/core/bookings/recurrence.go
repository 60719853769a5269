package bookings

import (
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"
)

type Occurrence struct {
	Start time.Time
	End   time.Time
}

// ExpandWeekly returns one occurrence per week on weekday, starting from the
// first matching day on or after first. endDate is inclusive by calendar date
// in first's location.
func ExpandWeekly(first time.Time, durationMinutes int, weekday time.Weekday, endDate time.Time) ([]Occurrence, error) {
	if durationMinutes <= 0 {
		return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientInvalidDuration)
	}

	loc := first.Location()
	duration := time.Duration(durationMinutes) * time.Minute

	current := first
	for current.Weekday() != weekday {
		current = current.AddDate(0, 0, 1)
	}

	var occurrences []Occurrence
	for utils.SameOrBeforeDate(current, endDate, loc) {
		occurrences = append(occurrences, Occurrence{Start: current, End: current.Add(duration)})
		current = current.AddDate(0, 0, 7)
	}

	if len(occurrences) == 0 {
		return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientNoOccurrences)
	}
	return occurrences, nil
}

// ExpandWeekdays scans every day from first through endDate and keeps the days
// whose weekday is in weekdays.
func ExpandWeekdays(first time.Time, durationMinutes int, weekdays []time.Weekday, endDate time.Time) ([]Occurrence, error) {
	if durationMinutes <= 0 {
		return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientInvalidDuration)
	}
	if len(weekdays) == 0 {
		return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientWeekdayRequired)
	}

	wanted := make(map[time.Weekday]struct{}, len(weekdays))
	for _, day := range weekdays {
		wanted[day] = struct{}{}
	}

	loc := first.Location()
	duration := time.Duration(durationMinutes) * time.Minute

	var occurrences []Occurrence
	for current := first; utils.SameOrBeforeDate(current, endDate, loc); current = current.AddDate(0, 0, 1) {
		if _, ok := wanted[current.Weekday()]; ok {
			occurrences = append(occurrences, Occurrence{Start: current, End: current.Add(duration)})
		}
	}

	if len(occurrences) == 0 {
		return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientNoOccurrences)
	}
	return occurrences, nil
}

// expandFixed picks the multi weekday mode when repeatedDaysOfWeek is given
// and falls back to the single weekday mode otherwise. It also returns the
// parsed weekdays, holding exactly one day in the single weekday mode.
func expandFixed(first time.Time, durationMinutes int, repeatedDayOfWeek string, repeatedDaysOfWeek []string, endDate time.Time) ([]Occurrence, []models.DayOfWeek, error) {
	if len(repeatedDaysOfWeek) > 0 {
		days := make([]models.DayOfWeek, 0, len(repeatedDaysOfWeek))
		weekdays := make([]time.Weekday, 0, len(repeatedDaysOfWeek))
		for _, raw := range repeatedDaysOfWeek {
			day, err := models.ParseDayOfWeek(raw)
			if err != nil {
				return nil, nil, exceptions.ErrBookingValidation(err, "repeated_days_of_week "+constvars.CustomValidationErrorMessages["weekday"])
			}
			days = append(days, day)
			weekdays = append(weekdays, day.Weekday())
		}
		occurrences, err := ExpandWeekdays(first, durationMinutes, weekdays, endDate)
		if err != nil {
			return nil, nil, err
		}
		return occurrences, days, nil
	}

	if repeatedDayOfWeek == "" {
		return nil, nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientWeekdayRequired)
	}
	day, err := models.ParseDayOfWeek(repeatedDayOfWeek)
	if err != nil {
		return nil, nil, exceptions.ErrBookingValidation(err, "repeated_day_of_week "+constvars.CustomValidationErrorMessages["weekday"])
	}
	occurrences, err := ExpandWeekly(first, durationMinutes, day.Weekday(), endDate)
	if err != nil {
		return nil, nil, err
	}
	return occurrences, []models.DayOfWeek{day}, nil
}
