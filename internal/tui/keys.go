package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Deposit  key.Binding
	Withdraw key.Binding
	Switch   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Deposit:  key.NewBinding(key.WithKeys("enter", "+"), key.WithHelp("enter/+", "deposit")),
		Withdraw: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "withdraw")),
		Switch:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "ledger/note")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Deposit, k.Withdraw, k.Switch, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Deposit, k.Withdraw}, {k.Switch, k.Help, k.Quit}}
}

// noteKeyMap hides the ledger actions while the note inspector is shown.
type noteKeyMap struct {
	keyMap
}

func (k noteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Quit}
}

func (k noteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Switch, k.Help, k.Quit}}
}
