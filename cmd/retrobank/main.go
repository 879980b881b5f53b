package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/retrobank/internal/config"
	"github.com/jask/retrobank/internal/format"
	"github.com/jask/retrobank/internal/ledger"
	"github.com/jask/retrobank/internal/logging"
	"github.com/jask/retrobank/internal/note"
	"github.com/jask/retrobank/internal/tui"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run wires the dashboard and blocks until it exits. Startup failures are
// written to stderr because the log file is not visible while the UI runs.
func run(stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	n, state, err := loadNote(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "note: %v\n", err)
		return 1
	}

	logger, closer, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "logging: %v\n", err)
		return 1
	}
	defer closer.Close()

	loc, err := cfg.Location()
	if err != nil {
		logger.Warn("using local timezone", "error", err)
	}

	// Validate already parsed these
	opening, _ := cfg.OpeningBalance()
	seed, _ := cfg.SeedAmount()
	book := ledger.NewSeeded(opening, seed, cfg.Ledger.SeedDescription)

	ledgerPanel := tui.NewLedgerPanel(book, tui.LedgerOptions{
		Currency:       cfg.UI.CurrencySymbol,
		Banner:         cfg.UI.Banner,
		ClockInterval:  cfg.UI.ClockInterval,
		RevealInterval: cfg.UI.RevealInterval,
		Location:       loc,
		Logger:         logger,
	})
	notePanel := tui.NewNotePanel(n, state, format.NewPrinter(cfg.UI.Locale))

	logger.Info("starting", "balance", book.Balance().StringFixed(2), "note_loaded", n != nil)
	p := tea.NewProgram(tui.New(ledgerPanel, notePanel, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// loadNote reads the configured fixture. Chain state from config overrides
// whatever the fixture carries.
func loadNote(cfg config.Config) (*note.Note, note.ChainState, error) {
	state := note.DefaultChainState()
	var n *note.Note
	if cfg.Note.Path != "" {
		var err error
		n, state, err = note.LoadFile(cfg.Note.Path)
		if err != nil {
			return nil, note.ChainState{}, err
		}
	}
	if cfg.Note.StateSize > 0 {
		state.Size = cfg.Note.StateSize
	}
	if cfg.Note.StateRoot != "" {
		state.Root = cfg.Note.StateRoot
	}
	return n, state, nil
}
