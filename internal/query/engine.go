package query

import (
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

// Loader supplies the current journal record.
type Loader interface {
	Load() models.StoredData
}

// Engine answers each call from a fresh snapshot of the store. Callers that
// need several answers over the same data should take one Snapshot.
type Engine struct {
	store Loader
}

func NewEngine(store Loader) *Engine {
	return &Engine{store: store}
}

func (e *Engine) Snapshot() *Snapshot {
	return NewSnapshot(e.store.Load())
}

func (e *Engine) DailyMood(date string) models.DailyMood {
	return e.Snapshot().DailyMood(date)
}

func (e *Engine) DailyMoods(dates []string) map[string]models.DailyMood {
	return e.Snapshot().DailyMoods(dates)
}

func (e *Engine) AverageMoodForDay(date string) *float64 {
	return e.Snapshot().AverageMoodForDay(date)
}

func (e *Engine) AverageMoodForPeriod(dates []string) *float64 {
	return e.Snapshot().AverageMoodForPeriod(dates)
}

func (e *Engine) CompletedReflectionsCount(dates []string) int {
	return e.Snapshot().CompletedReflectionsCount(dates)
}

func (e *Engine) MoodCompletionRate(dates []string) float64 {
	return e.Snapshot().MoodCompletionRate(dates)
}

func (e *Engine) PeriodStats(dates, previous []string) Stats {
	return e.Snapshot().PeriodStats(dates, previous)
}

func (e *Engine) MonthStats(t time.Time) Stats {
	return e.Snapshot().MonthStats(t)
}

func (e *Engine) WeekStats(t time.Time) Stats {
	return e.Snapshot().WeekStats(t)
}

func (e *Engine) CalendarGrid(month time.Time) Calendar {
	return e.Snapshot().CalendarGrid(month)
}
