package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/joe192839/Mindduel/internal/ui/theme"
)

// TimerBar displays the remaining answer time as a colored horizontal bar.
// The fill color tracks urgency: green while comfortable, amber under 60%,
// red under 30%.
type TimerBar struct {
	Remaining int // seconds left
	Limit     int // seconds allowed for this question
	Width     int
}

// NewTimerBar creates a timer bar for the given limit.
func NewTimerBar(remaining, limit, width int) TimerBar {
	return TimerBar{
		Remaining: remaining,
		Limit:     limit,
		Width:     width,
	}
}

// Fraction returns the remaining share of the time limit, clamped to [0, 1].
func (t TimerBar) Fraction() float64 {
	if t.Limit <= 0 {
		return 0
	}
	f := float64(t.Remaining) / float64(t.Limit)
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// fillStyle returns the bar color for the current urgency.
func (t TimerBar) fillStyle() lipgloss.Style {
	f := t.Fraction()
	switch {
	case f > 0.6:
		return theme.TimerHigh
	case f > 0.3:
		return theme.TimerMid
	default:
		return theme.TimerLow
	}
}

// countStyle returns the style for the seconds readout. The final five
// seconds flash red.
func (t TimerBar) countStyle() lipgloss.Style {
	if t.Remaining <= 5 {
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.Text)
}

// View renders the timer bar with a trailing seconds readout.
func (t TimerBar) View() string {
	count := t.countStyle().Render(fmt.Sprintf(" %2ds", t.Remaining))
	countWidth := lipgloss.Width(count)

	barWidth := t.Width - countWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * t.Fraction())
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	bar := t.fillStyle().Render(strings.Repeat(" ", filled)) +
		theme.TimerEmpty.Render(strings.Repeat(" ", empty))

	return bar + count
}
