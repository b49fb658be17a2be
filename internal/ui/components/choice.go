package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuiseki/sysquiz/internal/ui/theme"
)

// ChoiceList is a numbered answer selector for a quiz round.
type ChoiceList struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Revealed     bool
	ChosenIndex  int
}

// NewChoiceList creates a selector over the given options.
func NewChoiceList(options []string, correctIndex int) ChoiceList {
	return ChoiceList{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		Revealed:     false,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Selection is locked once revealed.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Reveal locks the list and records which option was chosen.
func (c *ChoiceList) Reveal(chosen int) {
	c.Revealed = true
	c.ChosenIndex = chosen
}

// View renders the numbered options.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if c.Revealed {
			if i == c.CorrectIndex {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if i == c.ChosenIndex {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}
	return s
}

// IsCorrect returns true if the chosen option was the correct one.
func (c ChoiceList) IsCorrect() bool {
	return c.Revealed && c.ChosenIndex == c.CorrectIndex
}
