package session

import (
	"github.com/julianstephens/moodlog/internal/utils"
)

// StepDays moves the cursor by n days. Forward moves into the future are
// refused and report false.
func (s *Session) StepDays(n int) bool {
	target := utils.AddDays(s.current, n)
	if n > 0 && utils.IsFuture(target, s.now()) {
		return false
	}
	s.SetCurrentDate(target)
	return true
}

// StepWeeks moves the cursor by n weeks with the same future guard as StepDays.
func (s *Session) StepWeeks(n int) bool {
	target := utils.AddWeeks(s.current, n)
	if n > 0 && utils.IsFuture(target, s.now()) {
		return false
	}
	s.SetCurrentDate(target)
	return true
}

// StepMonths moves the cursor by n months. A forward move is allowed when the
// target month has started; the cursor is then clamped to today if the same
// day of that month has not.
func (s *Session) StepMonths(n int) bool {
	now := s.now()
	target := utils.AddMonths(s.current, n)
	if n > 0 {
		if utils.IsFuture(utils.StartOfMonth(target), now) {
			return false
		}
		if utils.IsFuture(target, now) {
			target = utils.StartOfDay(now)
		}
	}
	s.SetCurrentDate(target)
	return true
}

// Today moves the cursor back to the current day.
func (s *Session) Today() {
	s.SetCurrentDate(s.now())
}
