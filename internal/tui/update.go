package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.sess.CheckTimeOfDay() && m.state == StateDay && m.sess.IsToday() {
			m.selected = bucketIndex(m.sess.CurrentTimeOfDay())
		}
		return m, tick(constants.TimeOfDayPollInterval)

	case recordChangedMsg:
		m.sess.Refresh()
		return m, waitForChange(m.ctx, m.changes)
	}

	if m.state == StateReflect {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
	case key.Matches(msg, m.keys.Up):
		m.selected = (m.selected - 1 + len(models.TimesOfDay)) % len(models.TimesOfDay)
	case key.Matches(msg, m.keys.Down):
		m.selected = (m.selected + 1) % len(models.TimesOfDay)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		if !m.step(1) {
			m.status = "You can't look into the future."
		}
	case key.Matches(msg, m.keys.Today):
		m.sess.Today()
		m.status = ""
	case key.Matches(msg, m.keys.Rate):
		level, _ := strconv.Atoi(msg.String())
		m.rate(models.MoodLevel(level))
	case key.Matches(msg, m.keys.Reflect):
		return m.openReflection()
	}
	return m, nil
}

// step moves the cursor by one unit of the current view.
func (m *Model) step(n int) bool {
	m.status = ""
	switch m.state {
	case StateWeek:
		return m.sess.StepWeeks(n)
	case StateMonth:
		return m.sess.StepMonths(n)
	default:
		return m.sess.StepDays(n)
	}
}

func (m *Model) rate(level models.MoodLevel) {
	bucket := models.TimesOfDay[m.selected]
	saved, err := m.sess.SaveMood(level, bucket, "")
	switch {
	case err != nil:
		m.status = dangerStyle.Render(err.Error())
	case !saved:
		m.status = "Moods can only be recorded for today or earlier."
	default:
		m.status = fmt.Sprintf("Saved %s %s for %s.", insights.MoodEmoji(level), insights.MoodLabel(level),
			insights.TimeOfDayLabel(bucket))
	}
}

func (m Model) openReflection() (tea.Model, tea.Cmd) {
	*m.draft = reflectionDraft{Completed: true}
	if r := m.sess.Daily().Reflection; r != nil {
		m.draft.Notes = r.Notes
	}
	m.form = ReflectionForm(&m.draft.Completed, &m.draft.Notes)
	m.previousState = m.state
	m.state = StateReflect
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		m.status = "Reflection cancelled."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.sess.SaveReflection(m.draft.Completed, m.draft.Notes); err != nil {
			m.status = dangerStyle.Render(err.Error())
		} else {
			m.status = "Reflection saved."
		}
		m.state = m.previousState
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		m.status = "Reflection cancelled."
		return m, nil
	}
	return m, cmd
}
