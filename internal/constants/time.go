package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// AfternoonStartHour and EveningStartHour split the day into time-of-day buckets.
	AfternoonStartHour = 12
	EveningStartHour   = 18
)
