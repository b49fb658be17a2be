package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yuiseki/sysquiz/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ███████╗██╗   ██╗███████╗ ██████╗ ██╗   ██╗██╗███████╗
 ██╔════╝╚██╗ ██╔╝██╔════╝██╔═══██╗██║   ██║██║╚══███╔╝
 ███████╗ ╚████╔╝ ███████╗██║   ██║██║   ██║██║  ███╔╝
 ╚════██║  ╚██╔╝  ╚════██║██║▄▄ ██║██║   ██║██║ ███╔╝
 ███████║   ██║   ███████║╚██████╔╝╚██████╔╝██║███████╗
 ╚══════╝   ╚═╝   ╚══════╝ ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const arcadeTitleCompact = "S · Y · S · Q · U · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders the lifetime totals in a bordered box matching content width.
func renderStatsBar(games, correct, streak, cw int, compact bool) string {
	gamesStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	correctStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			gamesStyle.Render(fmt.Sprintf("▶%d", games)),
			correctStyle.Render(fmt.Sprintf("✓%d", correct)),
			streakStyle.Render(fmt.Sprintf("★%d", streak)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			gamesStyle.Render(fmt.Sprintf("▶ %d GAMES", games)),
			correctStyle.Render(fmt.Sprintf("✓ %d CORRECT", correct)),
			streakStyle.Render(fmt.Sprintf("★ %d BEST STREAK", streak)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
