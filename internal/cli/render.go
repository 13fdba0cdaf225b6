package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/query"
)

const dayHeaderFormat = "Monday, January 2 2006"

// averageEmoji shows the nearest rating's emoji for an average, or a dot.
func averageEmoji(avg *float64) string {
	if avg == nil {
		return "·"
	}
	return insights.MoodEmoji(models.MoodLevel(decimal.NewFromFloat(*avg).Round(0).IntPart()))
}

func slotLine(e *models.MoodEntry) string {
	if e == nil {
		return "-"
	}
	line := fmt.Sprintf("%s %s (%d)", insights.MoodEmoji(e.Mood), insights.MoodLabel(e.Mood), e.Mood)
	if e.Notes != "" {
		line += "  " + e.Notes
	}
	return line
}

func reflectionLine(r *models.ReflectionEntry) string {
	switch {
	case r == nil:
		return "-"
	case r.Completed && r.Notes != "":
		return "✓ " + r.Notes
	case r.Completed:
		return "✓ completed"
	default:
		return "✗ skipped"
	}
}

func renderDay(w io.Writer, day models.DailyMood, avg *float64) {
	for _, tod := range models.TimesOfDay {
		fmt.Fprintf(w, "  %-11s %s\n", insights.TimeOfDayLabel(tod), slotLine(day.Slot(tod)))
	}
	fmt.Fprintf(w, "  %-11s %s\n", "Average", insights.FormatAverage(avg))
	fmt.Fprintf(w, "  %-11s %s\n", "Reflection", reflectionLine(day.Reflection))
}

func renderStats(w io.Writer, st query.Stats, period string) {
	fmt.Fprintf(w, "  Average mood:      %s %s (previous %s %s)\n",
		insights.FormatAverage(st.Average), insights.TrendArrow(st.Trend),
		period, insights.FormatAverage(st.PreviousAverage))
	fmt.Fprintf(w, "  Days tracked:      %d of %d\n", st.DaysTracked, len(st.Dates))
	fmt.Fprintf(w, "  Check-ins:         %s of possible\n", insights.FormatPercent(st.CompletionRate))
	fmt.Fprintf(w, "  Reflections:       %d completed\n", st.CompletedReflections)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", insights.MoodInsight(st.Average))
	fmt.Fprintf(w, "  %s\n", insights.TrendInsight(st.Trend))
	fmt.Fprintf(w, "  %s\n", insights.CompletionInsight(st.CompletionRate))
	fmt.Fprintf(w, "  %s\n", insights.ReflectionInsight(st.CompletedReflections, len(st.Dates)))
}

func renderDistribution(w io.Writer, dist map[models.MoodLevel]int) {
	levels := make([]int, 0, len(dist))
	total := 0
	for level, n := range dist {
		levels = append(levels, int(level))
		total += n
	}
	if total == 0 {
		return
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))
	for _, l := range levels {
		level := models.MoodLevel(l)
		n := dist[level]
		fmt.Fprintf(w, "  %s %-9s %s %d\n", insights.MoodEmoji(level), insights.MoodLabel(level), strings.Repeat("█", n), n)
	}
}
