package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	dangerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func moodStyle(m models.MoodLevel) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(insights.MoodColor(m)))
}

func averageStyle(avg *float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(insights.AverageColor(avg)))
}
