// internal/tui/styles.go
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/evalgrid/internal/results"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	detailStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// tierColor maps a tier to the terminal color used in the detail pane.
func tierColor(t results.Tier) lipgloss.Color {
	switch t {
	case results.TierHigh:
		return lipgloss.Color("42")
	case results.TierGood:
		return lipgloss.Color("39")
	case results.TierWarning:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("196")
	}
}

// renderTierBadge returns a Lipgloss-styled badge for a percentage and its tier.
func renderTierBadge(text string, tier results.Tier) string {
	badgeStyle := lipgloss.NewStyle().Background(tierColor(tier)).Foreground(lipgloss.Color("0")).Padding(0, 1)
	return badgeStyle.Render(text)
}
