// Package results renders the game-over screen: the final score for the run
// that just ended plus lifetime numbers from local history.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joe192839/Mindduel/internal/game"
	"github.com/joe192839/Mindduel/internal/router"
	"github.com/joe192839/Mindduel/internal/screen"
	"github.com/joe192839/Mindduel/internal/store"
	"github.com/joe192839/Mindduel/internal/ui/layout"
	"github.com/joe192839/Mindduel/internal/ui/theme"
)

// Summary is the outcome of the session that just ended.
type Summary struct {
	Score        int
	Lives        int
	Reason       game.EndReason
	Redirect     string
	FastestLevel int
	Questions    int
}

// Stats provides lifetime numbers from the local match history.
type Stats interface {
	Summarize() (store.Summary, error)
	Recent(limit int) ([]game.MatchRecord, error)
}

type statsLoadedMsg struct {
	Summary store.Summary
	Recent  []game.MatchRecord
	Err     error
}

// ResultsScreen displays the game-over summary.
type ResultsScreen struct {
	summary Summary
	stats   Stats
	replay  func() screen.Screen

	lifetime store.Summary
	recent   []game.MatchRecord
	loaded   bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the finished session.
func New(summary Summary, stats Stats, replay func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		summary: summary,
		stats:   stats,
		replay:  replay,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.stats == nil {
		s.loaded = true
		return nil
	}
	stats := s.stats
	return func() tea.Msg {
		sum, err := stats.Summarize()
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		recent, err := stats.Recent(5)
		if err != nil {
			return statsLoadedMsg{Summary: sum}
		}
		return statsLoadedMsg{Summary: sum, Recent: recent}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.replay != nil {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Play again"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.lifetime = msg.Summary
		s.recent = msg.Recent
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "p", "P", "enter":
			if s.replay != nil {
				replay := s.replay
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: replay()}
				}
			}
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// headline maps the end reason to the banner text.
func headline(reason game.EndReason) string {
	switch reason {
	case game.ReasonComplete:
		return "YOU CLEARED THE POOL!"
	case game.ReasonQuit:
		return "GAME ENDED"
	default:
		return "GAME OVER"
	}
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(headline(s.summary.Reason)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Final score: %d", s.summary.Score)))
	b.WriteString("\n")

	detail := fmt.Sprintf("%d questions  ·  fastest level %ds", s.summary.Questions, s.summary.FastestLevel)
	b.WriteString(center.Foreground(theme.TextDim).Render(detail))
	b.WriteString("\n")

	b.WriteString(center.Render(layout.RenderHearts(s.summary.Lives, game.LivesStart)))
	b.WriteString("\n\n")

	if s.summary.Redirect != "" {
		b.WriteString(center.Foreground(theme.TextDim).
			Render("Full results: " + s.summary.Redirect))
		b.WriteString("\n\n")
	}

	if !s.loaded {
		b.WriteString(center.Foreground(theme.TextDim).Render("Loading stats..."))
		return b.String()
	}

	if s.lifetime.Games > 0 {
		b.WriteString(center.Foreground(theme.Secondary).Bold(true).Render("— Lifetime —"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf(
			"%d games  ·  best %d  ·  average %.1f  ·  fastest %ds",
			s.lifetime.Games, s.lifetime.BestScore, s.lifetime.AverageScore, s.lifetime.FastestLevel)))
		b.WriteString("\n\n")
	}

	if len(s.recent) > 0 {
		b.WriteString(center.Foreground(theme.Secondary).Bold(true).Render("— Recent games —"))
		b.WriteString("\n")
		for _, m := range s.recent {
			line := fmt.Sprintf("%s  score %d  %s",
				m.PlayedAt.Format("Jan 02 15:04"), m.Score, m.Reason)
			b.WriteString(center.Foreground(theme.TextDim).Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}
