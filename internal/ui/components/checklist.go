package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/ui/theme"
)

// ChecklistItem is one toggleable row.
type ChecklistItem struct {
	Label  string
	Detail string
}

// Checklist is a vertical list with multi-select. Space toggles the row
// under the cursor and "a" toggles every row.
type Checklist struct {
	Items   []ChecklistItem
	Cursor  int
	checked map[int]bool
}

// NewChecklist creates a checklist with nothing checked.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items, checked: make(map[int]bool)}
}

// Update handles navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ":
		if len(c.Items) > 0 {
			c.Toggle(c.Cursor)
		}
	case "a":
		all := len(c.Checked()) == len(c.Items)
		for i := range c.Items {
			c.checked[i] = !all
		}
	}
	return c, nil
}

// Toggle flips row i.
func (c *Checklist) Toggle(i int) {
	if c.checked == nil {
		c.checked = make(map[int]bool)
	}
	c.checked[i] = !c.checked[i]
}

// Checked returns the checked row indexes in order.
func (c Checklist) Checked() []int {
	var out []int
	for i := range c.Items {
		if c.checked[i] {
			out = append(out, i)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var b strings.Builder
	for i, item := range c.Items {
		box := "[ ]"
		if c.checked[i] {
			box = "[x]"
		}
		cursor := "  "
		if i == c.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, item.Label)
		if i == c.Cursor {
			line = theme.Selected.Render(line)
		} else {
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line)
		if item.Detail != "" {
			b.WriteString("  " + theme.Hint.Render(item.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
