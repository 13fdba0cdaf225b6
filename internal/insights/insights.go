// Package insights turns numbers from the query engine into words, emoji and
// colours for display.
package insights

import (
	"github.com/shopspring/decimal"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/query"
)

// NoColor is used for days and buckets without a rating.
const NoColor = "#CBD5E1"

var moodLevels = map[models.MoodLevel]struct {
	label string
	emoji string
	color string
}{
	1: {"Very Bad", "😢", "#FF6B6B"},
	2: {"Bad", "😕", "#FFB347"},
	3: {"Neutral", "😐", "#FFDB58"},
	4: {"Good", "🙂", "#77DD77"},
	5: {"Very Good", "😄", "#48BF91"},
}

func MoodLabel(m models.MoodLevel) string {
	if l, ok := moodLevels[m]; ok {
		return l.label
	}
	return "Unknown"
}

func MoodEmoji(m models.MoodLevel) string {
	if l, ok := moodLevels[m]; ok {
		return l.emoji
	}
	return "❓"
}

// MoodColor returns the hex colour for a rating, or NoColor.
func MoodColor(m models.MoodLevel) string {
	if l, ok := moodLevels[m]; ok {
		return l.color
	}
	return NoColor
}

// AverageColor colours a fractional average by its nearest rating.
func AverageColor(avg *float64) string {
	if avg == nil {
		return NoColor
	}
	rounded := decimal.NewFromFloat(*avg).Round(0).IntPart()
	return MoodColor(models.MoodLevel(rounded))
}

func TimeOfDayLabel(t models.TimeOfDay) string {
	switch t {
	case models.Morning:
		return "Morning"
	case models.Afternoon:
		return "Afternoon"
	case models.Evening:
		return "Evening"
	}
	return string(t)
}

func MoodInsight(avg *float64) string {
	if avg == nil {
		return "No data available yet."
	}
	switch a := *avg; {
	case a >= 4.5:
		return "Fantastic! You've been doing great lately."
	case a >= 4:
		return "You've been doing well overall."
	case a >= 3.5:
		return "You've been doing pretty good lately."
	case a >= 3:
		return "You've been doing okay. Not bad, not great."
	case a >= 2.5:
		return "You've been a bit down lately."
	case a >= 2:
		return "You've been having a rough time. Remember to take care of yourself."
	default:
		return "You've been very low. Consider reaching out for support."
	}
}

func CompletionInsight(rate float64) string {
	switch {
	case rate >= 0.9:
		return "Excellent tracking consistency!"
	case rate >= 0.7:
		return "Good tracking consistency."
	case rate >= 0.5:
		return "Moderate tracking consistency."
	case rate >= 0.3:
		return "Try to track more regularly."
	default:
		return "Consider setting reminders to track more often."
	}
}

// ReflectionInsight grades completed reflections over the days in a period.
func ReflectionInsight(completed, days int) string {
	rate := 0.0
	if days > 0 {
		rate = float64(completed) / float64(days)
	}
	switch {
	case rate >= 0.8:
		return "You've been very consistent with your reflections!"
	case rate >= 0.6:
		return "You've been good with your reflections."
	case rate >= 0.4:
		return "You've done some reflections. Keep it up!"
	case rate >= 0.2:
		return "Consider doing more reflections for better self-awareness."
	default:
		return "Try to make time for evening reflections."
	}
}

func TrendInsight(t query.Trend) string {
	switch t {
	case query.TrendUp:
		return "You're improving! Keep up whatever you're doing."
	case query.TrendDown:
		return "You've been declining. Consider what might be affecting you."
	case query.TrendStable:
		return "You've been stable lately."
	}
	return "Not enough data to determine a trend."
}

func TrendArrow(t query.Trend) string {
	switch t {
	case query.TrendUp:
		return "↑"
	case query.TrendDown:
		return "↓"
	case query.TrendStable:
		return "→"
	}
	return "?"
}

// FormatAverage renders an average with one decimal, or "-" when missing.
func FormatAverage(avg *float64) string {
	if avg == nil {
		return "-"
	}
	return decimal.NewFromFloat(*avg).StringFixed(1)
}

// FormatPercent renders a [0,1] rate as a whole percentage.
func FormatPercent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).StringFixed(0) + "%"
}
