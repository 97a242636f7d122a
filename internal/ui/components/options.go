package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joe192839/Mindduel/internal/ui/theme"
)

// Options is the answer selector for a question: four choices navigated with
// arrows or picked directly with 1-4.
type Options struct {
	Choices  []string
	Selected int
	Locked   bool // set once an answer is in flight

	// Reveal state after the round resolves.
	Revealed    bool
	ChosenIndex int
	Correct     bool
}

// NewOptions creates a selector over the given choices.
func NewOptions(choices []string) Options {
	return Options{
		Choices:     choices,
		Selected:    0,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (o Options) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Selection keys are ignored while
// locked or revealed.
func (o Options) Update(msg tea.Msg) (Options, tea.Cmd) {
	if o.Locked || o.Revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Choices)-1 {
			o.Selected++
		}
	case "1", "2", "3", "4":
		i := int(kmsg.String()[0] - '1')
		if i < len(o.Choices) {
			o.Selected = i
		}
	}

	return o, nil
}

// Lock freezes the selector while the chosen answer is checked.
func (o *Options) Lock() {
	o.Locked = true
	o.ChosenIndex = o.Selected
}

// Reveal shows the verdict for the chosen answer.
func (o *Options) Reveal(correct bool) {
	o.Revealed = true
	o.Correct = correct
}

// View renders the choices.
func (o Options) View() string {
	var s string
	for i, choice := range o.Choices {
		prefix := "  "
		if i == o.Selected && !o.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, choice)

		switch {
		case o.Revealed && i == o.ChosenIndex && o.Correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.Revealed && i == o.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// Value returns the currently selected choice text.
func (o Options) Value() string {
	if o.Selected < 0 || o.Selected >= len(o.Choices) {
		return ""
	}
	return o.Choices[o.Selected]
}
