package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/query"
	"github.com/julianstephens/moodlog/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDay:
		content = m.viewDay()
	case StateWeek:
		content = m.viewWeek()
	case StateMonth:
		content = m.viewMonth()
	case StateReflect:
		content = m.form.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		statusStyle.Render(m.status),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == StateReflect {
		active = m.previousState
	}
	var tabs []string
	for i, title := range []string{"Day", "Week", "Month"} {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDay() string {
	var b strings.Builder
	day := m.sess.Daily()

	title := m.sess.CurrentDate().Format("Monday, January 2 2006")
	if m.sess.IsToday() {
		title += " (today)"
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	for i, tod := range models.TimesOfDay {
		cursor := "  "
		label := fmt.Sprintf("%-10s", insights.TimeOfDayLabel(tod))
		if i == m.selected {
			cursor = selectedStyle.Render("▸ ")
			label = selectedStyle.Render(label)
		}

		value := mutedStyle.Render("not recorded")
		if e := day.Slot(tod); e != nil {
			value = moodStyle(e.Mood).Render(fmt.Sprintf("%s %s", insights.MoodEmoji(e.Mood), insights.MoodLabel(e.Mood)))
			if e.Notes != "" {
				value += mutedStyle.Render("  " + e.Notes)
			}
		}

		now := ""
		if m.sess.IsToday() && tod == m.sess.CurrentTimeOfDay() {
			now = mutedStyle.Render("  ← now")
		}
		b.WriteString(cursor + label + " " + value + now + "\n")
	}

	avg := query.DayAverage(day)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-10s %s\n", "Average", averageStyle(avg).Render(insights.FormatAverage(avg))))

	refl := mutedStyle.Render("press r to reflect")
	if r := day.Reflection; r != nil {
		if r.Completed {
			refl = "✓ completed"
		} else {
			refl = "✗ skipped"
		}
		if r.Notes != "" {
			refl += mutedStyle.Render("  " + r.Notes)
		}
	}
	b.WriteString(fmt.Sprintf("  %-10s %s\n", "Reflection", refl))
	return b.String()
}

func (m Model) viewWeek() string {
	var b strings.Builder
	days := m.sess.WeekDays()
	weekly := m.sess.Weekly()
	first, _ := utils.ParseDayKey(days[0], m.sess.CurrentDate().Location())
	last, _ := utils.ParseDayKey(days[len(days)-1], m.sess.CurrentDate().Location())
	b.WriteString(titleStyle.Render(fmt.Sprintf("Week of %s - %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))) + "\n")

	for _, key := range days {
		day := weekly[key]
		d, _ := utils.ParseDayKey(key, m.sess.CurrentDate().Location())

		label := fmt.Sprintf("%-10s", d.Format("Mon Jan 2"))
		if key == m.sess.CurrentDateKey() {
			label = selectedStyle.Render(label)
		}

		var cells []string
		for _, tod := range models.TimesOfDay {
			if e := day.Slot(tod); e != nil {
				cells = append(cells, moodStyle(e.Mood).Render(insights.MoodEmoji(e.Mood)))
			} else {
				cells = append(cells, mutedStyle.Render("·"))
			}
		}
		avg := query.DayAverage(day)
		refl := " "
		if day.Reflection != nil && day.Reflection.Completed {
			refl = "✓"
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n", label, strings.Join(cells, " "),
			averageStyle(avg).Render(fmt.Sprintf("%-4s", insights.FormatAverage(avg))), refl))
	}

	b.WriteString("\n" + renderStats(m.sess.Engine().WeekStats(m.sess.CurrentDate())))
	return b.String()
}

func (m Model) viewMonth() string {
	var b strings.Builder
	snap := m.sess.Engine().Snapshot()
	cal := snap.CalendarGrid(m.sess.CurrentDate())
	b.WriteString(titleStyle.Render(cal.Month.Format("January 2006")) + "\n")

	b.WriteString(mutedStyle.Render("Wk   Su  Mo  Tu  We  Th  Fr  Sa") + "\n")
	for _, week := range cal.Weeks {
		row := mutedStyle.Render(fmt.Sprintf("%-4d", week.Number))
		for _, day := range week.Days {
			if !day.InMonth {
				row += "    "
				continue
			}
			cell := fmt.Sprintf("%4d", day.Day)
			style := averageStyle(day.Average)
			if day.Date == m.sess.CurrentDateKey() {
				style = style.Underline(true).Bold(true)
			}
			row += style.Render(cell)
		}
		b.WriteString(row + "\n")
	}

	b.WriteString("\n" + renderStats(snap.MonthStats(m.sess.CurrentDate())))
	return b.String()
}

func renderStats(st query.Stats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Average %s %s   Check-ins %s   Reflections %d\n",
		averageStyle(st.Average).Render(insights.FormatAverage(st.Average)),
		insights.TrendArrow(st.Trend),
		insights.FormatPercent(st.CompletionRate),
		st.CompletedReflections))
	b.WriteString(mutedStyle.Render(insights.MoodInsight(st.Average)) + "\n")
	b.WriteString(mutedStyle.Render(insights.TrendInsight(st.Trend)) + "\n")
	return b.String()
}
