package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/moodlog/internal/lock"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/storage"
)

// hints pair sentinel errors with a next step for the user.
var hints = []struct {
	target error
	hint   string
}{
	{lock.ErrLocked, "another moodlog session is writing to this journal; close it and try again"},
	{models.ErrInvalidMood, "rate your mood with a whole number from 1 (very bad) to 5 (very good)"},
	{models.ErrInvalidTimeOfDay, "use --bucket morning, afternoon or evening"},
	{models.ErrInvalidDate, "dates are written as YYYY-MM-DD"},
	{storage.ErrCorruptRecord, "the file is not a moodlog record; pick another backup"},
}

// Format formats an error message with a consistent "Error: " prefix and,
// for known failures, a hint on the following line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if h := Hint(err); h != "" {
		msg += "\n  hint: " + h
	}
	return msg
}

// Hint returns the user-facing next step for err, or "".
func Hint(err error) string {
	for _, h := range hints {
		if stderrors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
