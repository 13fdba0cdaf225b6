package query

import (
	"time"

	"github.com/julianstephens/moodlog/internal/utils"
)

// CalendarDay is one cell of a month grid. Padding cells have InMonth false
// and no date.
type CalendarDay struct {
	Date    string
	Day     int
	InMonth bool
	Average *float64
}

// CalendarWeek is one Sunday-start row of a month grid.
type CalendarWeek struct {
	Number int
	Days   [7]CalendarDay
}

type Calendar struct {
	Month time.Time
	Weeks []CalendarWeek
}

// CalendarGrid lays out month as Sunday-start weeks padded to full rows, with
// each day's average mood.
func (s *Snapshot) CalendarGrid(month time.Time) Calendar {
	first := utils.StartOfMonth(month)
	days := utils.MonthDays(first)
	lead := int(first.Weekday())
	rows := (lead + len(days) + 6) / 7

	cal := Calendar{Month: first, Weeks: make([]CalendarWeek, rows)}
	for row := range cal.Weeks {
		sunday := utils.AddDays(first, row*7-lead)
		cal.Weeks[row].Number = utils.WeekOfYear(sunday)
	}
	for i, day := range days {
		cell := lead + i
		key := utils.DayKey(day)
		cal.Weeks[cell/7].Days[cell%7] = CalendarDay{
			Date:    key,
			Day:     day.Day(),
			InMonth: true,
			Average: s.AverageMoodForDay(key),
		}
	}
	return cal
}
