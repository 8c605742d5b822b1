package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/ui/theme"
)

// Choices is a numbered multiple-choice selector. Options are picked with
// the number keys or the arrows plus Enter; once picked the selector is
// locked until Reveal marks the correct option.
type Choices struct {
	Options []string
	Cursor  int

	chosen  int
	correct int
}

// NewChoices creates a selector over options.
func NewChoices(options []string) Choices {
	return Choices{Options: options, chosen: -1, correct: -1}
}

// Update handles navigation. picked is true when this message chose an
// option.
func (c Choices) Update(msg tea.Msg) (_ Choices, picked bool) {
	if c.chosen >= 0 {
		return c, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter":
		if len(c.Options) > 0 {
			c.chosen = c.Cursor
			return c, true
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
			c.Cursor = n - 1
			c.chosen = c.Cursor
			return c, true
		}
	}
	return c, false
}

// Picked returns the chosen option.
func (c Choices) Picked() (string, bool) {
	if c.chosen < 0 {
		return "", false
	}
	return c.Options[c.chosen], true
}

// Reveal marks answer as the correct option for rendering.
func (c *Choices) Reveal(answer string) {
	for i, opt := range c.Options {
		if opt == answer {
			c.correct = i
			return
		}
	}
}

// View renders the options, colored by outcome once revealed.
func (c Choices) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && c.chosen < 0 {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case c.correct >= 0 && i == c.correct:
			line = theme.Correct.Render(line + "  ✓")
		case c.correct >= 0 && i == c.chosen:
			line = theme.Incorrect.Render(line + "  ✗")
		case c.chosen >= 0:
			line = theme.Dim.Render(line)
		case i == c.Cursor:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
