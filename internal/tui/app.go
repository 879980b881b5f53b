package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// App ties together views.
type App struct {
	state  appState
	ledger *LedgerPanel
	note   *NotePanel
	keys   keyMap
	help   help.Model
	logger *slog.Logger
	width  int
	height int
}

type appState string

const (
	viewLedger appState = "ledger"
	viewNote   appState = "note"
)

// New returns the dashboard opened on the ledger panel.
func New(ledger *LedgerPanel, note *NotePanel, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		state:  viewLedger,
		ledger: ledger,
		note:   note,
		keys:   newKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

func (a *App) Init() tea.Cmd {
	return a.ledger.Mount()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.ledger.SetWidth(m.Width)
		a.note.SetWidth(m.Width)
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			a.ledger.Unmount()
			a.logger.Info("shutting down")
			return a, tea.Quit
		case key.Matches(m, a.keys.Switch):
			return a, a.toggle()
		case key.Matches(m, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
	}
	// timers are always routed so stale generations get dropped
	return a, a.ledger.Update(msg)
}

// toggle swaps the visible panel. Leaving the ledger unmounts it; returning
// mounts it again with a fresh banner.
func (a *App) toggle() tea.Cmd {
	if a.state == viewLedger {
		a.ledger.Unmount()
		a.state = viewNote
		a.logger.Debug("view", "state", string(a.state))
		return nil
	}
	a.state = viewLedger
	a.logger.Debug("view", "state", string(a.state))
	return a.ledger.Mount()
}

func (a *App) View() string {
	var body string
	var helpView string
	switch a.state {
	case viewNote:
		body = a.note.View()
		helpView = a.help.View(noteKeyMap{a.keys})
	default:
		body = a.ledger.View()
		helpView = a.help.View(a.keys)
	}
	return body + "\n" + helpView
}
