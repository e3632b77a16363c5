package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle     = lipgloss.NewStyle().Foreground(colorWhite)
	styleActive    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleBar       = lipgloss.NewStyle().Foreground(colorGray)
	styleBrand     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleError     = lipgloss.NewStyle().Foreground(colorRed)
	styleLink      = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	stylePanelHead = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleClose     = lipgloss.NewStyle().Foreground(colorRed)
	stylePanel     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)
