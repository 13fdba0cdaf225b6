package query

import (
	"math"

	"github.com/julianstephens/moodlog/internal/constants"
)

// Trend is the direction of change between two period averages.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown"
)

// MoodTrend compares two averages. Unknown when either is missing; stable when
// they differ by less than constants.TrendThreshold.
func MoodTrend(current, previous *float64) Trend {
	if current == nil || previous == nil {
		return TrendUnknown
	}
	diff := *current - *previous
	switch {
	case math.Abs(diff) < constants.TrendThreshold:
		return TrendStable
	case diff > 0:
		return TrendUp
	default:
		return TrendDown
	}
}
