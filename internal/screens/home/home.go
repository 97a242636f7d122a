package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/joe192839/Mindduel/internal/router"
	"github.com/joe192839/Mindduel/internal/screen"
	"github.com/joe192839/Mindduel/internal/store"
	"github.com/joe192839/Mindduel/internal/ui/components"
)

// Lifetime loads the stats shown on the cabinet front.
type Lifetime interface {
	Summarize() (store.Summary, error)
}

// Config wires the HomeScreen's navigation targets.
type Config struct {
	// NewGame builds a fresh game screen. Required.
	NewGame func() screen.Screen

	// NewStats builds the match history screen. Optional.
	NewStats func() screen.Screen

	// Stats feeds the cabinet stats bar. Optional.
	Stats Lifetime

	// Categories restricts question categories, shown as a note.
	Categories []string
}

// HomeScreen is the arcade-cabinet front of the application.
type HomeScreen struct {
	cfg        Config
	menu       components.Menu
	menuLabels []string
	summary    store.Summary
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cfg Config) *HomeScreen {
	var summary store.Summary
	if cfg.Stats != nil {
		summary, _ = cfg.Stats.Summarize()
	}

	menuLabels := []string{"PLAY", "STATS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: cfg.NewGame()}
			}
		}},
		{Label: menuLabels[1], Disabled: cfg.NewStats == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: cfg.NewStats()}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		cfg:        cfg,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		summary:    summary,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	sections = append(sections, renderStatsBar(h.summary, cw, compact))
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	if len(h.cfg.Categories) > 0 {
		sections = append(sections, renderCategoryNote(h.cfg.Categories, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
