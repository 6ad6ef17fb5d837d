package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

// groupColors cycles across group labels in the results panel.
var groupColors = []lipgloss.Color{colorGreen, colorTeal, colorPeach, colorBlue, colorPink, colorLavender}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	focusedPanel = panelStyle.BorderForeground(colorFocus)
	dimStyle     = lipgloss.NewStyle().Foreground(colorOverlay0)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(colorSuccess)
	errStyle     = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	footerStyle  = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)
	textStyle    = lipgloss.NewStyle().Foreground(colorText)
)

func groupLabelStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(groupColors[i%len(groupColors)])
}
