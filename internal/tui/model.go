package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/session"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateWeek
	StateMonth
	StateReflect
)

const tabCount = 3

// reflectionDraft outlives Model copies so the form's value pointers stay valid.
type reflectionDraft struct {
	Completed bool
	Notes     string
}

type Model struct {
	sess          *session.Session
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	form          *huh.Form
	draft         *reflectionDraft
	selected      int // index into models.TimesOfDay on the day view
	status        string
	quitting      bool
	width         int
	height        int

	watchPath string
	changes   chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewModel builds the TUI over sess. When watchPath is set, changes to that
// file made by other processes refresh the views.
func NewModel(sess *session.Session, watchPath string) Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		sess:      sess,
		state:     StateDay,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		draft:     &reflectionDraft{},
		watchPath: watchPath,
		changes:   make(chan struct{}, 1),
		ctx:       ctx,
		cancel:    cancel,
	}
	m.selected = bucketIndex(sess.CurrentTimeOfDay())
	return m
}

func bucketIndex(tod models.TimeOfDay) int {
	for i, t := range models.TimesOfDay {
		if t == tod {
			return i
		}
	}
	return 0
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Prev, m.keys.Next}
	if m.state == StateDay {
		keys = append(keys, m.keys.Up, m.keys.Down)
	}
	return append(keys, m.keys.Rate, m.keys.Reflect, m.keys.Quit, m.keys.Help)
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// Close stops the journal watcher. Safe to call more than once.
func (m Model) Close() {
	m.cancel()
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(constants.TimeOfDayPollInterval)}
	if m.watchPath != "" && m.watchPath != ":memory:" {
		cmds = append(cmds,
			startWatch(m.ctx, m.watchPath, m.changes),
			waitForChange(m.ctx, m.changes),
		)
	}
	return tea.Batch(cmds...)
}
