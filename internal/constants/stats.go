package constants

const (
	// TrendThreshold is the absolute average difference below which two periods are "stable".
	TrendThreshold = 0.3

	// SlotsPerDay is the number of mood check-ins possible per day.
	SlotsPerDay = 3

	MinMood = 1
	MaxMood = 5
)
