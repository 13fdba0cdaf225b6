package models

import "fmt"

// TimeOfDay is one of the three daily windows a mood can be recorded against.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimesOfDay lists the buckets in display order.
var TimesOfDay = []TimeOfDay{Morning, Afternoon, Evening}

// ParseTimeOfDay converts user input into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	switch TimeOfDay(s) {
	case Morning, Afternoon, Evening:
		return TimeOfDay(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// MoodLevel is a rating from 1 (very bad) to 5 (very good).
type MoodLevel int

type MoodEntry struct {
	ID        string    `json:"id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD, local time
	TimeOfDay TimeOfDay `json:"timeOfDay" validate:"required,oneof=morning afternoon evening"`
	Mood      MoodLevel `json:"mood" validate:"min=1,max=5"`
	Notes     string    `json:"notes,omitempty"`
}

// MoodEntryID derives the stable identifier for a (date, bucket) pair.
func MoodEntryID(date string, timeOfDay TimeOfDay) string {
	return fmt.Sprintf("%s-%s", date, timeOfDay)
}

// NewMoodEntry builds an entry keyed by date and bucket.
func NewMoodEntry(date string, timeOfDay TimeOfDay, mood MoodLevel, notes string) MoodEntry {
	return MoodEntry{
		ID:        MoodEntryID(date, timeOfDay),
		Date:      date,
		TimeOfDay: timeOfDay,
		Mood:      mood,
		Notes:     notes,
	}
}

// ReflectionEntry records the evening reflection for one day. The date is its key.
type ReflectionEntry struct {
	ID        string `json:"id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

func NewReflectionEntry(date string, completed bool, notes string) ReflectionEntry {
	return ReflectionEntry{
		ID:        date,
		Date:      date,
		Completed: completed,
		Notes:     notes,
	}
}

// DailyMood is a read model assembled from the stored entries for one date.
// It is never persisted.
type DailyMood struct {
	Date       string
	Morning    *MoodEntry
	Afternoon  *MoodEntry
	Evening    *MoodEntry
	Reflection *ReflectionEntry
}

// Slot returns the entry recorded for the given bucket, or nil.
func (d DailyMood) Slot(timeOfDay TimeOfDay) *MoodEntry {
	switch timeOfDay {
	case Morning:
		return d.Morning
	case Afternoon:
		return d.Afternoon
	case Evening:
		return d.Evening
	}
	return nil
}

// Filled returns the recorded entries in bucket order.
func (d DailyMood) Filled() []MoodEntry {
	var entries []MoodEntry
	for _, tod := range TimesOfDay {
		if e := d.Slot(tod); e != nil {
			entries = append(entries, *e)
		}
	}
	return entries
}

// StoredData is the entire durable state of the journal.
type StoredData struct {
	Moods       []MoodEntry       `json:"moods"`
	Reflections []ReflectionEntry `json:"reflections"`
}

// EmptyStoredData returns a record with non-nil, empty collections.
func EmptyStoredData() StoredData {
	return StoredData{
		Moods:       []MoodEntry{},
		Reflections: []ReflectionEntry{},
	}
}
