package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// DayKey returns the canonical YYYY-MM-DD key of the calendar day containing t,
// read in t's own location. No UTC normalization is applied.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DayKeys maps each day to its key, preserving order.
func DayKeys(days []time.Time) []string {
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = DayKey(d)
	}
	return keys
}

// ParseDayKey parses a date string (YYYY-MM-DD) as midnight in the specified timezone.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// StartOfDay returns local midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TimeOfDayBucket maps the wall clock hour of t onto a bucket.
func TimeOfDayBucket(t time.Time) models.TimeOfDay {
	switch h := t.Hour(); {
	case h < constants.AfternoonStartHour:
		return models.Morning
	case h < constants.EveningStartHour:
		return models.Afternoon
	default:
		return models.Evening
	}
}

// StartOfTomorrow returns midnight of the day after now.
func StartOfTomorrow(now time.Time) time.Time {
	return AddDays(StartOfDay(now), 1)
}

// IsFuture reports whether t falls on or after the start of tomorrow.
// Any instant on the same calendar day as now is never future.
func IsFuture(t, now time.Time) bool {
	return !t.Before(StartOfTomorrow(now))
}

// AddDays moves by calendar days, keeping the wall clock time across DST changes.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func AddWeeks(t time.Time, n int) time.Time {
	return AddDays(t, 7*n)
}

// AddMonths moves by calendar months. When the target month is shorter the day is
// clamped to its last day, so Jan 31 + 1 month is the last day of February.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysInMonth(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfWeek returns midnight of the Monday starting t's week.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return AddDays(StartOfDay(t), -offset)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// WeekDays returns the seven days, Monday through Sunday, of the week containing t.
func WeekDays(t time.Time) []time.Time {
	start := StartOfWeek(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = AddDays(start, i)
	}
	return days
}

// MonthDays returns every day of the calendar month containing t, without padding.
func MonthDays(t time.Time) []time.Time {
	start := StartOfMonth(t)
	n := daysInMonth(start)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = AddDays(start, i)
	}
	return days
}

// WeekOfYear numbers Sunday-start weeks so that week 1 is the week containing
// January 1. The last days of December belong to week 1 of the next year when
// their week contains the next January 1.
func WeekOfYear(t time.Time) int {
	sow := civilDay(t) - int(t.Weekday())

	nextYearStart := sundayOnOrBefore(t.Year() + 1)
	if sow >= nextYearStart {
		return 1
	}
	yearStart := sundayOnOrBefore(t.Year())
	return (sow-yearStart)/7 + 1
}

// sundayOnOrBefore returns the civil day number of the Sunday starting the week of Jan 1.
func sundayOnOrBefore(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return civilDay(jan1) - int(jan1.Weekday())
}

// civilDay counts calendar days since the Unix epoch using t's wall clock date.
func civilDay(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Unix() / 86400)
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
