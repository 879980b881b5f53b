package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Phosphor CRT palette
// ---------------------------------------------------------------------------

const (
	colorPhosphor   lipgloss.Color = "#33ff66"
	colorPhosphorLo lipgloss.Color = "#1f9e40"
	colorAmber      lipgloss.Color = "#ffb000"
	colorAmberLo    lipgloss.Color = "#a67300"
	colorAlarm      lipgloss.Color = "#ff4f4f"
	colorAlarmLo    lipgloss.Color = "#8c2b2b"
	colorScanline   lipgloss.Color = "#5f7f5f"
	colorGlass      lipgloss.Color = "#0b140d"
	colorBezel      lipgloss.Color = "#2a3d2d"
)

// ---------------------------------------------------------------------------
// Semantic aliases
// ---------------------------------------------------------------------------

const (
	colorPrimary     = colorPhosphor
	colorAccent      = colorAmber
	colorDestructive = colorAlarm
	colorMuted       = colorScanline
	colorBorder      = colorBezel
	colorDisabled    = colorPhosphorLo
)

// PaletteColors returns every palette color for validation.
func PaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorPhosphor, colorPhosphorLo,
		colorAmber, colorAmberLo,
		colorAlarm, colorAlarmLo,
		colorScanline, colorGlass, colorBezel,
	}
}

// Decorative glyphs standing in for the icon set.
const (
	glyphDollar   = "$"
	glyphTrendUp  = "▲"
	glyphTrendDn  = "▼"
	glyphClock    = "◷"
	glyphMonitor  = "▣"
	glyphEye      = "◉"
	glyphHash     = "#"
	glyphLock     = "⚿"
	glyphDatabase = "≣"
	glyphCursor   = "█"
)

const logo = "░R░E░T░R░O░-░B░A░N░K░"

var (
	logoStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	bannerStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	valueStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	bigValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	iconStyle     = lipgloss.NewStyle().Foreground(colorAccent)
	creditStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	debitStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorDestructive)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(colorBorder).Padding(0, 1)
	focusedCard   = cardStyle.BorderForeground(colorPrimary)

	depositButton  = lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(colorGlass).Background(colorPrimary)
	withdrawButton = lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(colorGlass).Background(colorDestructive)
	disabledButton = lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted).Background(colorGlass).Strikethrough(true)

	chartLineStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	chartAxisStyle  = lipgloss.NewStyle().Foreground(colorBorder)
	chartLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
