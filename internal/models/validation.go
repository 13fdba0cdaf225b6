package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidMood      = errors.New("mood must be between 1 and 5")
	ErrInvalidTimeOfDay = errors.New("time of day must be morning, afternoon or evening")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidID        = errors.New("entry id does not match its key")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the entry against its field constraints and the id derivation rule.
func (e MoodEntry) Validate() error {
	if err := validateStruct(e); err != nil {
		return err
	}
	if e.ID != MoodEntryID(e.Date, e.TimeOfDay) {
		return fmt.Errorf("%w: %s", ErrInvalidID, e.ID)
	}
	return nil
}

func (r ReflectionEntry) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.ID != r.Date {
		return fmt.Errorf("%w: %s", ErrInvalidID, r.ID)
	}
	return nil
}

// validateStruct maps the first validator failure onto one of the package sentinels.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Mood":
		return fmt.Errorf("%w: got %v", ErrInvalidMood, fe.Value())
	case "TimeOfDay":
		return fmt.Errorf("%w: got %q", ErrInvalidTimeOfDay, fe.Value())
	case "Date":
		return fmt.Errorf("%w: got %q", ErrInvalidDate, fe.Value())
	case "ID":
		return fmt.Errorf("%w: id is required", ErrInvalidID)
	}
	return fmt.Errorf("invalid %s: failed %q", fe.Field(), fe.Tag())
}
