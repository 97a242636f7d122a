// Package stats lists past quickplay runs from the local match history.
package stats

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

// History is the slice of the match store this screen reads.
type History interface {
	Recent(limit int) ([]game.MatchRecord, error)
	Summarize() (store.Summary, error)
}

type statsLoadedMsg struct {
	Matches []game.MatchRecord
	Summary store.Summary
	Err     error
}

// StatsScreen displays lifetime stats and the recent match list.
type StatsScreen struct {
	history  History
	matches  []game.MatchRecord
	summary  store.Summary
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(history History) *StatsScreen {
	return &StatsScreen{history: history}
}

func (s *StatsScreen) Init() tea.Cmd {
	history := s.history
	return func() tea.Msg {
		matches, err := history.Recent(50)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		summary, err := history.Summarize()
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Matches: matches, Summary: summary}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.matches = msg.Matches
			s.summary = msg.Summary
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.matches)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}
	if len(s.matches) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Go play one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("%d games  ·  best %d  ·  average %.1f  ·  fastest %ds",
		s.summary.Games, s.summary.BestScore, s.summary.AverageScore, s.summary.FastestLevel)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header)))
	b.WriteString("\n\n")

	for i, m := range s.matches {
		dateStr := m.PlayedAt.Format("Jan 02, 2006 15:04")
		mins := int(m.Duration.Minutes())
		secs := int(m.Duration.Seconds()) % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		aiStr := ""
		if m.UsedAIQuestions {
			aiStr = "  AI"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  score %d  ⚡%ds  %s%s",
			prefix, dateStr, durationStr, m.Score, m.HighestSpeedLevel, m.Reason, aiStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
