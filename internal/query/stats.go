package query

import (
	"time"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/utils"
)

// Stats summarizes one period against the period before it.
type Stats struct {
	Dates                []string
	Average              *float64
	PreviousAverage      *float64
	Trend                Trend
	CompletedReflections int
	// ReflectionRate is completed reflections per day in the period.
	ReflectionRate float64
	CompletionRate float64
	DaysTracked    int
	Distribution   map[models.MoodLevel]int
}

// PeriodStats computes the rollup for dates, using previous only for the trend.
func (s *Snapshot) PeriodStats(dates, previous []string) Stats {
	st := Stats{
		Dates:                dates,
		Average:              s.AverageMoodForPeriod(dates),
		PreviousAverage:      s.AverageMoodForPeriod(previous),
		CompletedReflections: s.CompletedReflectionsCount(dates),
		CompletionRate:       s.MoodCompletionRate(dates),
		DaysTracked:          s.DaysTracked(dates),
		Distribution:         s.Distribution(dates),
	}
	st.Trend = MoodTrend(st.Average, st.PreviousAverage)
	if len(dates) > 0 {
		st.ReflectionRate = float64(st.CompletedReflections) / float64(len(dates))
	}
	return st
}

// MonthStats covers the calendar month containing t, compared with the month before.
func (s *Snapshot) MonthStats(t time.Time) Stats {
	start := utils.StartOfMonth(t)
	return s.PeriodStats(
		utils.DayKeys(utils.MonthDays(start)),
		utils.DayKeys(utils.MonthDays(utils.AddMonths(start, -1))),
	)
}

// WeekStats covers the Monday to Sunday week containing t, compared with the week before.
func (s *Snapshot) WeekStats(t time.Time) Stats {
	return s.PeriodStats(
		utils.DayKeys(utils.WeekDays(t)),
		utils.DayKeys(utils.WeekDays(utils.AddWeeks(t, -1))),
	)
}
