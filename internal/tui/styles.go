package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#E6E6E6"}
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	primaryFg = lipgloss.Color("#FF1AA1")
	softFg    = lipgloss.Color("#FFC1DD")
	accentFg  = lipgloss.Color("#C69D74")
	errorFg   = lipgloss.Color("#EF4444")
	okFg      = lipgloss.Color("#22C55E")
	borderCol = lipgloss.Color("#FFC1DD")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	padBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primaryFg)
	titleStyle   = lipgloss.NewStyle().Foreground(primaryFg).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(primaryFg).Bold(true)
	priceStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle     = lipgloss.NewStyle().Foreground(errorFg)
	okStyle      = lipgloss.NewStyle().Foreground(okFg).Bold(true)
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1F1F1F")).Background(softFg).Padding(0, 1)
	keyStyle     = lipgloss.NewStyle().Foreground(primaryFg)
)
