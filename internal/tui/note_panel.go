package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/jask/retrobank/internal/note"
)

var stateGlyphs = map[string]string{
	"STATE SIZE": glyphDatabase,
	"STATE ROOT": glyphLock,
}

// NotePanel renders the current note. It holds no state beyond its inputs.
type NotePanel struct {
	note    *note.Note
	state   note.ChainState
	printer *message.Printer
	width   int
}

func NewNotePanel(n *note.Note, st note.ChainState, p *message.Printer) *NotePanel {
	return &NotePanel{note: n, state: st, printer: p}
}

// SetNote swaps the displayed note and chain state.
func (p *NotePanel) SetNote(n *note.Note, st note.ChainState) {
	p.note, p.state = n, st
}

func (p *NotePanel) SetWidth(w int) { p.width = w }

func (p *NotePanel) Projection() note.Projection {
	return note.Project(p.note, p.state, p.printer)
}

func (p *NotePanel) View() string {
	w := p.width
	if w <= 0 {
		w = 80
	}
	proj := p.Projection()
	if proj.Empty {
		body := lipgloss.PlaceHorizontal(max(1, w-4), lipgloss.Center, mutedStyle.Render(proj.Message))
		return card{Title: "CURRENT NOTE", Icon: glyphEye, Content: "\n" + body + "\n", Focused: true}.Render(w)
	}

	var plain, hashed []string
	for _, f := range proj.Fields {
		if f.Hashed {
			hashed = append(hashed, renderField(glyphHash+" "+f.Label, f.Value))
			continue
		}
		plain = append(plain, renderField(f.Label, f.Value))
	}
	state := make([]string, 0, len(proj.State))
	for _, f := range proj.State {
		state = append(state, renderField(stateGlyphs[f.Label]+" "+f.Label, f.Value))
	}

	col := max(1, (w-4)/2)
	left := lipgloss.NewStyle().Width(col).Render(strings.Join(plain, "\n\n"))
	right := lipgloss.NewStyle().Width(col).Render(strings.Join(hashed, "\n\n"))
	rule := mutedStyle.Render(strings.Repeat("─", max(1, w-4)))
	stateRow := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(col).Render(state[0]),
		lipgloss.NewStyle().Width(col).Render(strings.Join(state[1:], "\n\n")),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + rule + "\n" + stateRow
	return card{Title: "CURRENT NOTE", Icon: glyphEye, Content: body, Focused: true}.Render(w)
}

func renderField(label, value string) string {
	return labelStyle.Render(label) + "\n" + valueStyle.Render(value)
}
