package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/joe192839/Mindduel/internal/ui/components"
	"github.com/joe192839/Mindduel/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.phase {
	case phaseWarmup:
		return s.renderWarmup(width, height)
	case phaseStarting:
		return s.renderWait(width, "Contacting server...")
	case phaseLoading:
		return s.renderWait(width, "Next question coming up...")
	case phaseAnnouncing:
		return s.renderAnnouncement(width, height)
	case phaseFeedback:
		return s.renderQuestion(width, true)
	default:
		return s.renderQuestion(width, false)
	}
}

// renderWarmup shows the pre-game focus prompts one at a time.
func (s *GameScreen) renderWarmup(width, height int) string {
	step := s.warmupStep
	if step >= len(warmupSteps) {
		step = len(warmupSteps) - 1
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(warmupSteps[step]))
	b.WriteString("\n\n")

	dots := make([]string, len(warmupSteps))
	for i := range warmupSteps {
		if i <= step {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Accent).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	b.WriteString(strings.Join(dots, " "))

	return components.CabinetFrame(b.String(), width, height)
}

// renderWait shows a spinner line for the network gaps.
func (s *GameScreen) renderWait(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + s.spin.View() + " " + text)
}

// renderAnnouncement shows the speed-up card between difficulty tiers.
func (s *GameScreen) renderAnnouncement(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("SPEED UP!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%ds", s.announceOld)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  →  "))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render(fmt.Sprintf("%ds", s.announceNew)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("per question from now on"))

	card := components.ArcadeCard(b.String(), 40)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderQuestion renders the live question with the countdown bar, and the
// verdict flash when feedback is up.
func (s *GameScreen) renderQuestion(width int, feedback bool) string {
	if s.current == nil {
		return s.renderWait(width, "Next question coming up...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q%d", s.index))
	if s.current.Category != "" {
		infoLeft += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + s.current.Category)
	}

	sound := "♪ on"
	if !s.soundOn {
		sound = "♪ off"
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(sound)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	// Countdown bar spans the content width.
	barWidth := width - 8
	if barWidth < 20 {
		barWidth = 20
	}
	bar := components.NewTimerBar(s.remaining, s.limit, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(s.current.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if feedback {
		b.WriteString("\n")
		b.WriteString(s.renderVerdict(width))
	} else if s.errFlash != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(s.errFlash))
	}

	return b.String()
}

// renderVerdict renders the correct/wrong/expired flash line.
func (s *GameScreen) renderVerdict(width int) string {
	line := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.lastExpired:
		return line.Foreground(theme.Error).Bold(true).Render("Time's up!  -1 ♥")
	case s.lastCorrect:
		return line.Foreground(theme.Success).Bold(true).Render("Correct!  +1")
	default:
		return line.Foreground(theme.Error).Bold(true).Render("Not quite  -1 ♥")
	}
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End the game early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your score will be reported as it stands."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end game"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep playing"))

	return b.String()
}

// renderError renders a fatal error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
