package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/models"
)

// ErrCorruptRecord is returned when stored bytes cannot be decoded as a record.
var ErrCorruptRecord = errors.New("record is not valid moodlog data")

// Store reads and writes the journal record through a Backend. It holds no
// cached state: every Load goes to the backend.
type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Backend() Backend {
	return s.backend
}

// Load returns the current record. It never fails: a missing, unreadable or
// unparseable record reads as empty and the problem is logged. Invalid entries
// are dropped and duplicate keys resolve to the last entry.
func (s *Store) Load() models.StoredData {
	data, err := s.readRecord()
	if err != nil {
		logger.Warn("failed to read journal, treating as empty", "path", s.backend.Path(), "error", err)
		return models.EmptyStoredData()
	}
	return data
}

// readRecord is Load without swallowing backend read errors. Writers use it so
// that an I/O failure aborts the write instead of replacing the record. A
// record that reads but does not decode is still empty.
func (s *Store) readRecord() (models.StoredData, error) {
	raw, err := s.backend.Read()
	if err != nil {
		return models.EmptyStoredData(), fmt.Errorf("failed to read journal: %w", err)
	}
	if raw == nil {
		return models.EmptyStoredData(), nil
	}

	data, err := Decode(raw)
	if err != nil {
		logger.Warn("journal is corrupt, treating as empty", "path", s.backend.Path(), "error", err)
		return models.EmptyStoredData(), nil
	}

	clean, problems := Sanitize(data)
	for _, p := range problems {
		logger.Warn("dropping journal entry", "error", p)
	}
	return clean, nil
}

// Decode parses raw bytes into a record with non-nil collections.
func Decode(raw []byte) (models.StoredData, error) {
	var data models.StoredData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.EmptyStoredData(), fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if data.Moods == nil {
		data.Moods = []models.MoodEntry{}
	}
	if data.Reflections == nil {
		data.Reflections = []models.ReflectionEntry{}
	}
	return data, nil
}

// Sanitize drops entries that fail validation and collapses duplicate keys,
// keeping the position of the first occurrence and the value of the last.
// The returned errors describe everything that was changed.
func Sanitize(data models.StoredData) (models.StoredData, []error) {
	var problems []error
	out := models.EmptyStoredData()

	moodIdx := make(map[string]int)
	for _, m := range data.Moods {
		if err := m.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("mood %q: %w", m.ID, err))
			continue
		}
		if i, ok := moodIdx[m.ID]; ok {
			problems = append(problems, fmt.Errorf("mood %q: duplicate key, keeping the later entry", m.ID))
			out.Moods[i] = m
			continue
		}
		moodIdx[m.ID] = len(out.Moods)
		out.Moods = append(out.Moods, m)
	}

	reflIdx := make(map[string]int)
	for _, r := range data.Reflections {
		if err := r.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("reflection %q: %w", r.ID, err))
			continue
		}
		if i, ok := reflIdx[r.Date]; ok {
			problems = append(problems, fmt.Errorf("reflection %q: duplicate key, keeping the later entry", r.Date))
			out.Reflections[i] = r
			continue
		}
		reflIdx[r.Date] = len(out.Reflections)
		out.Reflections = append(out.Reflections, r)
	}

	return out, problems
}

// Persist serializes the whole record and hands it to the backend.
func (s *Store) Persist(data models.StoredData) error {
	if data.Moods == nil {
		data.Moods = []models.MoodEntry{}
	}
	if data.Reflections == nil {
		data.Reflections = []models.ReflectionEntry{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize journal: %w", err)
	}
	if err := s.backend.Write(raw); err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

// UpsertMood stores entry, replacing any entry for the same date and bucket.
func (s *Store) UpsertMood(entry models.MoodEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	data, err := s.readRecord()
	if err != nil {
		return err
	}
	replaced := false
	for i := range data.Moods {
		if data.Moods[i].Date == entry.Date && data.Moods[i].TimeOfDay == entry.TimeOfDay {
			data.Moods[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		data.Moods = append(data.Moods, entry)
	}
	return s.Persist(data)
}

// UpsertReflection stores entry, replacing any reflection for the same date.
func (s *Store) UpsertReflection(entry models.ReflectionEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	data, err := s.readRecord()
	if err != nil {
		return err
	}
	replaced := false
	for i := range data.Reflections {
		if data.Reflections[i].Date == entry.Date {
			data.Reflections[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		data.Reflections = append(data.Reflections, entry)
	}
	return s.Persist(data)
}

// Raw returns the stored bytes unchanged, or nil when nothing was written.
func (s *Store) Raw() ([]byte, error) {
	return s.backend.Read()
}

// Restore replaces the record with raw after checking that it decodes.
func (s *Store) Restore(raw []byte) error {
	data, err := Decode(raw)
	if err != nil {
		return err
	}
	clean, problems := Sanitize(data)
	for _, p := range problems {
		logger.Warn("dropping restored entry", "error", p)
	}
	return s.Persist(clean)
}
