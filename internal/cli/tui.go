package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlog/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	l, err := ctx.AcquireLock("tui")
	if err != nil {
		return err
	}
	defer l.Release()

	// Perform automatic backup on TUI startup
	ctx.PerformAutomaticBackup()

	model := tui.NewModel(ctx.Session(), ctx.Store.Backend().Path())
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
