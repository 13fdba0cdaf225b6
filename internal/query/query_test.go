package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/storage"
)

func ptr(f float64) *float64 { return &f }

func mood(date string, tod models.TimeOfDay, level int) models.MoodEntry {
	return models.NewMoodEntry(date, tod, models.MoodLevel(level), "")
}

func fixture() models.StoredData {
	return models.StoredData{
		Moods: []models.MoodEntry{
			mood("2024-03-10", models.Morning, 2),
			mood("2024-03-10", models.Evening, 4),
			mood("2024-03-11", models.Morning, 5),
			mood("2024-03-11", models.Afternoon, 5),
			mood("2024-03-11", models.Evening, 5),
		},
		Reflections: []models.ReflectionEntry{
			models.NewReflectionEntry("2024-03-10", true, "ok"),
			models.NewReflectionEntry("2024-03-11", false, ""),
		},
	}
}

func TestDailyMood(t *testing.T) {
	s := NewSnapshot(fixture())

	day := s.DailyMood("2024-03-10")
	assert.Equal(t, "2024-03-10", day.Date)
	require.NotNil(t, day.Morning)
	assert.Equal(t, models.MoodLevel(2), day.Morning.Mood)
	assert.Nil(t, day.Afternoon)
	require.NotNil(t, day.Evening)
	require.NotNil(t, day.Reflection)
	assert.True(t, day.Reflection.Completed)

	empty := s.DailyMood("2024-01-01")
	assert.Equal(t, models.DailyMood{Date: "2024-01-01"}, empty)
}

func TestDailyMoodIsDetached(t *testing.T) {
	s := NewSnapshot(fixture())

	day := s.DailyMood("2024-03-10")
	day.Morning.Mood = 1

	assert.Equal(t, models.MoodLevel(2), s.DailyMood("2024-03-10").Morning.Mood)
}

func TestDailyMoods(t *testing.T) {
	s := NewSnapshot(fixture())

	got := s.DailyMoods([]string{"2024-03-10", "2024-03-11", "2024-03-12"})
	assert.Len(t, got, 3)
	assert.Len(t, got["2024-03-11"].Filled(), 3)
	assert.Empty(t, got["2024-03-12"].Filled())
}

func TestAverageMoodForDay(t *testing.T) {
	s := NewSnapshot(fixture())

	assert.InDelta(t, 3.0, *s.AverageMoodForDay("2024-03-10"), 1e-9)
	assert.InDelta(t, 5.0, *s.AverageMoodForDay("2024-03-11"), 1e-9)
	assert.Nil(t, s.AverageMoodForDay("2024-03-12"))
}

func TestAverageMoodForDayReflectionOnly(t *testing.T) {
	s := NewSnapshot(models.StoredData{
		Reflections: []models.ReflectionEntry{models.NewReflectionEntry("2024-03-10", true, "")},
	})
	assert.Nil(t, s.AverageMoodForDay("2024-03-10"))
}

func TestAverageMoodForPeriodWeightsDaysEqually(t *testing.T) {
	s := NewSnapshot(models.StoredData{
		Moods: []models.MoodEntry{
			mood("2024-03-10", models.Morning, 1),
			mood("2024-03-11", models.Morning, 5),
			mood("2024-03-11", models.Afternoon, 5),
			mood("2024-03-11", models.Evening, 5),
		},
	})

	// Day averages 1 and 5 give 3, not the flat entry mean of 4.
	avg := s.AverageMoodForPeriod([]string{"2024-03-10", "2024-03-11", "2024-03-12"})
	require.NotNil(t, avg)
	assert.InDelta(t, 3.0, *avg, 1e-9)

	assert.Nil(t, s.AverageMoodForPeriod([]string{"2024-03-12"}))
	assert.Nil(t, s.AverageMoodForPeriod(nil))
}

func TestCompletedReflectionsCount(t *testing.T) {
	s := NewSnapshot(fixture())

	assert.Equal(t, 1, s.CompletedReflectionsCount([]string{"2024-03-10", "2024-03-11"}))
	assert.Equal(t, 0, s.CompletedReflectionsCount([]string{"2024-03-11"}))
	assert.Equal(t, 0, s.CompletedReflectionsCount(nil))
}

func TestMoodCompletionRate(t *testing.T) {
	s := NewSnapshot(fixture())

	tests := []struct {
		name  string
		dates []string
		want  float64
	}{
		{"two entries of three", []string{"2024-03-10"}, 2.0 / 3.0},
		{"full day", []string{"2024-03-11"}, 1},
		{"entries over slots", []string{"2024-03-10", "2024-03-11"}, 5.0 / 6.0},
		{"with empty day", []string{"2024-03-10", "2024-03-11", "2024-03-12"}, 5.0 / 9.0},
		{"empty set", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.MoodCompletionRate(tt.dates)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestMoodTrend(t *testing.T) {
	tests := []struct {
		name              string
		current, previous *float64
		want              Trend
	}{
		{"no current", nil, ptr(3), TrendUnknown},
		{"no previous", ptr(3), nil, TrendUnknown},
		{"both missing", nil, nil, TrendUnknown},
		{"equal", ptr(3), ptr(3), TrendStable},
		{"just under threshold up", ptr(3.29), ptr(3), TrendStable},
		{"just under threshold down", ptr(2.71), ptr(3), TrendStable},
		{"at threshold", ptr(3.5), ptr(3.2), TrendUp},
		{"up", ptr(4), ptr(3), TrendUp},
		{"down", ptr(2), ptr(3), TrendDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MoodTrend(tt.current, tt.previous))
		})
	}
}

func TestPeriodStats(t *testing.T) {
	s := NewSnapshot(fixture())

	st := s.PeriodStats([]string{"2024-03-11"}, []string{"2024-03-10"})
	require.NotNil(t, st.Average)
	require.NotNil(t, st.PreviousAverage)
	assert.InDelta(t, 5.0, *st.Average, 1e-9)
	assert.InDelta(t, 3.0, *st.PreviousAverage, 1e-9)
	assert.Equal(t, TrendUp, st.Trend)
	assert.Equal(t, 0, st.CompletedReflections)
	assert.Equal(t, 1, st.DaysTracked)
	assert.Equal(t, 3, st.Distribution[5])
	assert.InDelta(t, 1.0, st.CompletionRate, 1e-9)
}

func TestMonthStatsComparesPreviousMonth(t *testing.T) {
	s := NewSnapshot(models.StoredData{
		Moods: []models.MoodEntry{
			mood("2024-02-15", models.Morning, 2),
			mood("2024-03-01", models.Morning, 4),
		},
		Reflections: []models.ReflectionEntry{
			models.NewReflectionEntry("2024-03-01", true, ""),
		},
	})

	st := s.MonthStats(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	assert.Len(t, st.Dates, 31)
	require.NotNil(t, st.PreviousAverage)
	assert.InDelta(t, 2.0, *st.PreviousAverage, 1e-9)
	assert.Equal(t, TrendUp, st.Trend)
	assert.InDelta(t, 1.0/31.0, st.ReflectionRate, 1e-9)
	assert.InDelta(t, 1.0/93.0, st.CompletionRate, 1e-9)
}

func TestWeekStats(t *testing.T) {
	s := NewSnapshot(models.StoredData{
		Moods: []models.MoodEntry{
			mood("2024-03-04", models.Morning, 4), // Monday, previous week
			mood("2024-03-11", models.Morning, 4), // Monday
			mood("2024-03-17", models.Evening, 4), // Sunday
		},
	})

	st := s.WeekStats(time.Date(2024, time.March, 14, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{
		"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14",
		"2024-03-15", "2024-03-16", "2024-03-17",
	}, st.Dates)
	assert.Equal(t, 2, st.DaysTracked)
	assert.Equal(t, TrendStable, st.Trend)
}

func TestCalendarGrid(t *testing.T) {
	s := NewSnapshot(models.StoredData{
		Moods: []models.MoodEntry{mood("2024-03-10", models.Morning, 3)},
	})

	// March 2024 starts on a Friday and has 31 days: 5 padding cells + 31 = 6 rows.
	cal := s.CalendarGrid(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))
	require.Len(t, cal.Weeks, 6)

	first := cal.Weeks[0]
	for i := 0; i < 5; i++ {
		assert.False(t, first.Days[i].InMonth, "cell %d should be padding", i)
	}
	assert.Equal(t, "2024-03-01", first.Days[5].Date)
	assert.Equal(t, time.Friday, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).Weekday())

	// March 10 is the Sunday starting row 2.
	tenth := cal.Weeks[2].Days[0]
	assert.Equal(t, "2024-03-10", tenth.Date)
	require.NotNil(t, tenth.Average)
	assert.InDelta(t, 3.0, *tenth.Average, 1e-9)

	// Feb 25 2024 is the Sunday of the week holding March 1; Jan 1 2024 was a Monday so
	// week 1 started Dec 31 2023 and Feb 25 is 8 weeks later.
	assert.Equal(t, 9, first.Number)
	assert.Equal(t, 10, cal.Weeks[1].Number)

	last := cal.Weeks[5]
	assert.Equal(t, "2024-03-31", last.Days[0].Date)
	assert.False(t, last.Days[1].InMonth)
}

func TestEngineReadsFreshData(t *testing.T) {
	store := storage.NewStore(storage.NewMemoryBackend(nil))
	engine := NewEngine(store)

	assert.Nil(t, engine.AverageMoodForDay("2024-03-10"))

	require.NoError(t, store.UpsertMood(mood("2024-03-10", models.Morning, 4)))
	require.NoError(t, store.UpsertReflection(models.NewReflectionEntry("2024-03-10", true, "")))

	avg := engine.AverageMoodForDay("2024-03-10")
	require.NotNil(t, avg)
	assert.InDelta(t, 4.0, *avg, 1e-9)
	assert.Equal(t, 1, engine.CompletedReflectionsCount([]string{"2024-03-10"}))
	assert.InDelta(t, 1.0/3.0, engine.MoodCompletionRate([]string{"2024-03-10"}), 1e-9)
	assert.NotNil(t, engine.DailyMood("2024-03-10").Morning)
	assert.Len(t, engine.DailyMoods([]string{"2024-03-10"}), 1)
	assert.NotNil(t, engine.AverageMoodForPeriod([]string{"2024-03-10"}))
}
