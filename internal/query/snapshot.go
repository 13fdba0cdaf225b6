// Package query answers read-only questions about the journal: per-day views,
// period averages, completion rates and trends.
package query

import (
	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/models"
)

// Snapshot is an immutable, date-indexed view of one loaded record. Every
// answer computed from the same Snapshot sees the same data.
type Snapshot struct {
	days map[string]*models.DailyMood
}

// NewSnapshot indexes data by date. Entries are assumed valid and unique per
// key, as returned by storage.Store.Load.
func NewSnapshot(data models.StoredData) *Snapshot {
	s := &Snapshot{days: make(map[string]*models.DailyMood)}

	for i := range data.Moods {
		m := data.Moods[i]
		day := s.day(m.Date)
		switch m.TimeOfDay {
		case models.Morning:
			day.Morning = &m
		case models.Afternoon:
			day.Afternoon = &m
		case models.Evening:
			day.Evening = &m
		}
	}
	for i := range data.Reflections {
		r := data.Reflections[i]
		s.day(r.Date).Reflection = &r
	}
	return s
}

func (s *Snapshot) day(date string) *models.DailyMood {
	d, ok := s.days[date]
	if !ok {
		d = &models.DailyMood{Date: date}
		s.days[date] = d
	}
	return d
}

// DailyMood joins the moods and reflection recorded for date. Buckets without
// an entry are nil. The result shares nothing with the snapshot.
func (s *Snapshot) DailyMood(date string) models.DailyMood {
	d, ok := s.days[date]
	if !ok {
		return models.DailyMood{Date: date}
	}
	out := models.DailyMood{Date: date}
	if d.Morning != nil {
		m := *d.Morning
		out.Morning = &m
	}
	if d.Afternoon != nil {
		m := *d.Afternoon
		out.Afternoon = &m
	}
	if d.Evening != nil {
		m := *d.Evening
		out.Evening = &m
	}
	if d.Reflection != nil {
		r := *d.Reflection
		out.Reflection = &r
	}
	return out
}

func (s *Snapshot) DailyMoods(dates []string) map[string]models.DailyMood {
	out := make(map[string]models.DailyMood, len(dates))
	for _, date := range dates {
		out[date] = s.DailyMood(date)
	}
	return out
}

// AverageMoodForDay is the mean of the filled buckets, or nil when none are.
func (s *Snapshot) AverageMoodForDay(date string) *float64 {
	d, ok := s.days[date]
	if !ok {
		return nil
	}
	return DayAverage(*d)
}

// DayAverage is the mean of a day's filled buckets, or nil when none are.
func DayAverage(day models.DailyMood) *float64 {
	entries := day.Filled()
	if len(entries) == 0 {
		return nil
	}
	sum := 0
	for _, e := range entries {
		sum += int(e.Mood)
	}
	avg := float64(sum) / float64(len(entries))
	return &avg
}

// AverageMoodForPeriod averages the per-day averages, so each day with data
// counts once however many of its buckets are filled. Nil when no day has data.
func (s *Snapshot) AverageMoodForPeriod(dates []string) *float64 {
	sum, n := 0.0, 0
	for _, date := range dates {
		if avg := s.AverageMoodForDay(date); avg != nil {
			sum += *avg
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// CompletedReflectionsCount counts completed reflections dated within dates.
func (s *Snapshot) CompletedReflectionsCount(dates []string) int {
	count := 0
	for _, date := range uniqueDates(dates) {
		if d, ok := s.days[date]; ok && d.Reflection != nil && d.Reflection.Completed {
			count++
		}
	}
	return count
}

// MoodCompletionRate is the number of mood entries dated within dates over the
// number of possible slots (three per date). Zero for an empty set.
func (s *Snapshot) MoodCompletionRate(dates []string) float64 {
	if len(dates) == 0 {
		return 0
	}
	entries := 0
	for _, date := range uniqueDates(dates) {
		if d, ok := s.days[date]; ok {
			entries += len(d.Filled())
		}
	}
	return float64(entries) / float64(len(dates)*constants.SlotsPerDay)
}

// DaysTracked counts dates with at least one mood entry.
func (s *Snapshot) DaysTracked(dates []string) int {
	count := 0
	for _, date := range uniqueDates(dates) {
		if d, ok := s.days[date]; ok && len(d.Filled()) > 0 {
			count++
		}
	}
	return count
}

// Distribution counts mood entries per level within dates.
func (s *Snapshot) Distribution(dates []string) map[models.MoodLevel]int {
	out := make(map[models.MoodLevel]int, constants.MaxMood)
	for _, date := range uniqueDates(dates) {
		d, ok := s.days[date]
		if !ok {
			continue
		}
		for _, e := range d.Filled() {
			out[e.Mood]++
		}
	}
	return out
}

// uniqueDates drops repeats so each stored entry is counted at most once.
func uniqueDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
