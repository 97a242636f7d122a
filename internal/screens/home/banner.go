package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/joe192839/Mindduel/internal/store"
	"github.com/joe192839/Mindduel/internal/ui/components"
	"github.com/joe192839/Mindduel/internal/ui/theme"
)

// Block-letter title for the arcade cabinet.
const bannerFull = ` ███╗   ███╗██╗███╗   ██╗██████╗ ██████╗ ██╗   ██╗███████╗██╗
 ████╗ ████║██║████╗  ██║██╔══██╗██╔══██╗██║   ██║██╔════╝██║
 ██╔████╔██║██║██╔██╗ ██║██║  ██║██║  ██║██║   ██║█████╗  ██║
 ██║╚██╔╝██║██║██║╚██╗██║██║  ██║██║  ██║██║   ██║██╔══╝  ██║
 ██║ ╚═╝ ██║██║██║ ╚████║██████╔╝██████╔╝╚██████╔╝███████╗███████╗
 ╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝ ╚═════╝  ╚═════╝ ╚══════╝╚══════╝`

const bannerCompact = "M · I · N · D · D · U · E · L"

const tagline = "How fast can you think?"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 70 {
		w = 70
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderBanner returns the styled title block or compact fallback.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := bannerFull
	if compact {
		title = bannerCompact
	}
	block := style.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(tagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders lifetime stats in a bordered box matching content width.
func renderStatsBar(sum store.Summary, cw int, compact bool) string {
	gameStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	speedStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			gameStyle.Render(fmt.Sprintf("▶%d", sum.Games)),
			bestStyle.Render(fmt.Sprintf("★%d", sum.BestScore)),
			speedStyle.Render(fmt.Sprintf("⚡%ds", sum.FastestLevel)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			gameStyle.Render(fmt.Sprintf("▶ %d GAMES", sum.Games)),
			bestStyle.Render(fmt.Sprintf("★ BEST %d", sum.BestScore)),
			speedStyle.Render(fmt.Sprintf("⚡ FASTEST %ds", sum.FastestLevel)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderCategoryNote shows which categories this install plays.
func renderCategoryNote(categories []string, cw int) string {
	text := "Categories: all"
	if len(categories) > 0 {
		text = "Categories: " + strings.Join(categories, ", ")
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
