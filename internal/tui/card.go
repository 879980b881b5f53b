package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// card is a bordered panel with a heading row and a right-aligned icon.
type card struct {
	Title   string
	Icon    string
	Content string
	Focused bool
}

func (c card) Render(width int) string {
	style := cardStyle
	if c.Focused {
		style = focusedCard
	}
	if width <= 0 {
		return style.Render(c.header(0) + "\n\n" + c.Content)
	}
	content := max(1, width-style.GetHorizontalFrameSize())
	block := max(1, width-style.GetHorizontalBorderSize())
	return style.Width(block).Render(c.header(content) + "\n\n" + c.Content)
}

func (c card) header(width int) string {
	title := headingStyle.Render(c.Title)
	icon := iconStyle.Render(c.Icon)
	if width <= 0 {
		return title + "  " + icon
	}
	gap := width - ansi.StringWidth(title) - ansi.StringWidth(icon)
	if gap < 1 {
		return ansi.Truncate(title, max(0, width-ansi.StringWidth(icon)-1), "") + " " + icon
	}
	return title + strings.Repeat(" ", gap) + icon
}
