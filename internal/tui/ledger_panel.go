package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/retrobank/internal/format"
	"github.com/jask/retrobank/internal/ledger"
)

const maxHistoryRows = 8

// clockTickMsg and revealMsg carry the mount generation that scheduled them.
// Ticks from an earlier generation are dropped and never rescheduled.
type clockTickMsg struct {
	gen int
	at  time.Time
}

type revealMsg struct {
	gen int
}

// LedgerOptions tunes the ledger panel.
type LedgerOptions struct {
	Currency       string
	Banner         string
	ClockInterval  time.Duration
	RevealInterval time.Duration
	Location       *time.Location
	Now            func() time.Time
	Logger         *slog.Logger
}

func (o LedgerOptions) withDefaults() LedgerOptions {
	if o.Currency == "" {
		o.Currency = "$"
	}
	if o.ClockInterval <= 0 {
		o.ClockInterval = time.Second
	}
	if o.RevealInterval <= 0 {
		o.RevealInterval = 100 * time.Millisecond
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// LedgerPanel is the banking side of the dashboard.
type LedgerPanel struct {
	ledger  *ledger.Ledger
	opts    LedgerOptions
	keys    keyMap
	input   textinput.Model
	banner  typewriter
	clock   time.Time
	gen     int
	mounted bool
	width   int
}

// NewLedgerPanel wraps l. Call Mount to start the clock and banner.
func NewLedgerPanel(l *ledger.Ledger, opts LedgerOptions) *LedgerPanel {
	opts = opts.withDefaults()
	inp := textinput.New()
	inp.Placeholder = "0.00"
	inp.Prompt = opts.Currency + " "
	inp.CharLimit = 18
	inp.Focus()
	return &LedgerPanel{
		ledger: l,
		opts:   opts,
		keys:   newKeyMap(),
		input:  inp,
		banner: newTypewriter(opts.Banner),
		clock:  opts.Now(),
	}
}

// Mount starts a fresh banner reveal and the clock. The first rune is shown
// immediately.
func (p *LedgerPanel) Mount() tea.Cmd {
	p.gen++
	p.mounted = true
	p.clock = p.opts.Now()
	p.banner.Reset()
	p.input.Focus()
	cmds := []tea.Cmd{p.tickClock()}
	if p.banner.Step() {
		cmds = append(cmds, p.tickReveal())
	}
	return tea.Batch(cmds...)
}

// Unmount cancels the clock and any reveal still in flight.
func (p *LedgerPanel) Unmount() {
	p.gen++
	p.mounted = false
	p.input.Blur()
}

func (p *LedgerPanel) Mounted() bool { return p.mounted }

func (p *LedgerPanel) tickClock() tea.Cmd {
	gen := p.gen
	return tea.Tick(p.opts.ClockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg{gen: gen, at: t}
	})
}

func (p *LedgerPanel) tickReveal() tea.Cmd {
	gen := p.gen
	return tea.Tick(p.opts.RevealInterval, func(time.Time) tea.Msg {
		return revealMsg{gen: gen}
	})
}

func (p *LedgerPanel) live(gen int) bool { return p.mounted && gen == p.gen }

// Update handles timer messages and, while mounted, keys for the amount field.
func (p *LedgerPanel) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case clockTickMsg:
		if !p.live(m.gen) {
			return nil
		}
		p.clock = m.at
		return p.tickClock()
	case revealMsg:
		if !p.live(m.gen) {
			return nil
		}
		if p.banner.Step() {
			return p.tickReveal()
		}
		return nil
	case tea.KeyMsg:
		if !p.mounted {
			return nil
		}
		switch {
		case key.Matches(m, p.keys.Deposit):
			p.deposit()
			return nil
		case key.Matches(m, p.keys.Withdraw):
			p.withdraw()
			return nil
		}
		if m.Type == tea.KeyRunes && !amountRunes(m.Runes) {
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(m)
		return cmd
	}
	return nil
}

func amountRunes(rs []rune) bool {
	for _, r := range rs {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

func (p *LedgerPanel) deposit() {
	text := p.input.Value()
	if !p.ledger.Deposit(text) {
		return
	}
	p.input.SetValue("")
	p.opts.Logger.Debug("deposit", "amount", strings.TrimSpace(text), "balance", p.ledger.Balance().StringFixed(2))
}

func (p *LedgerPanel) withdraw() {
	text := p.input.Value()
	if !p.ledger.Withdraw(text) {
		return
	}
	p.input.SetValue("")
	p.opts.Logger.Debug("withdrawal", "amount", strings.TrimSpace(text), "balance", p.ledger.Balance().StringFixed(2))
}

// SetAmount replaces the contents of the amount field.
func (p *LedgerPanel) SetAmount(text string) { p.input.SetValue(text) }

func (p *LedgerPanel) Amount() string { return p.input.Value() }

func (p *LedgerPanel) Banner() string { return p.banner.Visible() }

func (p *LedgerPanel) Clock() time.Time { return p.clock }

func (p *LedgerPanel) SetWidth(w int) { p.width = w }

func (p *LedgerPanel) View() string {
	w := p.width
	if w <= 0 {
		w = 80
	}
	sections := []string{
		p.renderHeader(w),
		p.renderBalance(w),
		p.renderTerminal(w),
		p.renderHistory(w),
		card{Title: "BALANCE TREND", Icon: glyphTrendUp, Content: renderTrend(p.ledger.History(), max(10, w-4), p.opts.Location)}.Render(w),
		p.renderFooter(w),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *LedgerPanel) renderHeader(w int) string {
	lines := []string{
		logoStyle.Render(logo),
		bannerStyle.Render(p.banner.Visible()) + bannerStyle.Blink(true).Render(glyphCursor),
		mutedStyle.Render("System Time: " + format.Timestamp(p.clock.In(p.opts.Location))),
	}
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (p *LedgerPanel) renderBalance(w int) string {
	body := bigValueStyle.Render(format.Currency(p.opts.Currency, p.ledger.Balance())) + "\n" +
		mutedStyle.Render("Available Funds")
	return card{Title: "ACCOUNT BALANCE", Icon: glyphDollar, Content: body}.Render(w)
}

func (p *LedgerPanel) renderTerminal(w int) string {
	depStyle, wdStyle := p.buttonStyles()
	dep := depStyle.Render(glyphTrendUp + " DEPOSIT")
	wd := wdStyle.Render(glyphTrendDn + " WITHDRAW")
	body := labelStyle.Render(fmt.Sprintf("AMOUNT (%s)", p.opts.Currency)) + "\n" +
		p.input.View() + "\n\n" +
		dep + "   " + wd
	return card{Title: "TRANSACTION TERMINAL", Icon: glyphMonitor, Content: body, Focused: p.mounted}.Render(w)
}

// buttonStyles picks the deposit and withdraw styles for the current amount.
func (p *LedgerPanel) buttonStyles() (deposit, withdraw lipgloss.Style) {
	text := p.input.Value()
	deposit, withdraw = disabledButton, disabledButton
	if p.ledger.CanDeposit(text) {
		deposit = depositButton
	}
	if p.ledger.CanWithdraw(text) {
		withdraw = withdrawButton
	}
	return deposit, withdraw
}

func (p *LedgerPanel) renderHistory(w int) string {
	txs := p.ledger.Transactions()
	if len(txs) == 0 {
		return card{Title: "TRANSACTION HISTORY", Icon: glyphClock, Content: mutedStyle.Render("NO TRANSACTIONS FOUND")}.Render(w)
	}
	inner := max(20, w-4)
	shown := txs
	if len(shown) > maxHistoryRows {
		shown = shown[:maxHistoryRows]
	}
	rows := make([]string, 0, len(shown)+1)
	for _, tx := range shown {
		rows = append(rows, p.renderRow(tx, inner))
	}
	if extra := len(txs) - len(shown); extra > 0 {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("... %d older", extra)))
	}
	return card{Title: "TRANSACTION HISTORY", Icon: glyphClock, Content: strings.Join(rows, "\n")}.Render(w)
}

func (p *LedgerPanel) renderRow(tx ledger.Transaction, width int) string {
	icon, style := glyphTrendUp, creditStyle
	if tx.Kind == ledger.KindWithdrawal {
		icon, style = glyphTrendDn, debitStyle
	}
	left := style.Render(icon+" "+strings.ToUpper(tx.Kind.String())) + " " + mutedStyle.Render(tx.Description)
	right := style.Render(tx.Kind.Sign()+format.Currency(p.opts.Currency, tx.Amount)) + " " +
		mutedStyle.Render(format.Timestamp(tx.Timestamp.In(p.opts.Location)))

	room := width - ansi.StringWidth(right) - 1
	if room < 1 {
		return right
	}
	if ansi.StringWidth(left) > room {
		left = ansi.Truncate(left, room, "…")
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	return left + strings.Repeat(" ", max(1, gap)) + right
}

func (p *LedgerPanel) renderFooter(w int) string {
	lines := mutedStyle.Render("░░░ SECURE CONNECTION ESTABLISHED ░░░") + "\n" +
		mutedStyle.Render("© 2024 RETRO-BANK SYSTEMS • ALL TRANSACTIONS ENCRYPTED")
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, lines))
}
