package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/screens/play"
	"github.com/abhisek/kanjiz/internal/ui/components"
	"github.com/abhisek/kanjiz/internal/ui/layout"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

type step int

const (
	stepLessons step = iota
	stepMode
)

// SetupScreen picks the lessons and the mode of a new quiz.
type SetupScreen struct {
	env     screen.Env
	lessons []kanji.LessonInfo
	list    components.Checklist
	modes   components.Menu
	step    step
	chosen  []string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.EscHandler = (*SetupScreen)(nil)

// New creates a SetupScreen over the catalog's lessons.
func New(env screen.Env) *SetupScreen {
	lessons := env.Catalog.Lessons()
	items := make([]components.ChecklistItem, len(lessons))
	for i, l := range lessons {
		items[i] = components.ChecklistItem{
			Label:  fmt.Sprintf("%s. %s", l.ID, l.Title),
			Detail: fmt.Sprintf("%d kanji · %s", l.KanjiCount, l.JLPTLevel),
		}
	}

	s := &SetupScreen{
		env:     env,
		lessons: lessons,
		list:    components.NewChecklist(items),
	}

	// Mixed first: it is the default pick.
	modes := quiz.AllModes()
	menu := make([]components.MenuItem, 0, len(modes))
	for _, m := range append([]quiz.Mode{quiz.ModeMixed}, modes[:len(modes)-1]...) {
		menu = append(menu, components.MenuItem{
			Label: m.Title(),
			Hint:  m.Description(),
			Action: func() tea.Cmd {
				return router.ReplaceCmd(play.New(s.env, s.chosen, m))
			},
		})
	}
	s.modes = components.NewMenu(menu)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) HandlesEsc() bool {
	return s.step == stepMode
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Esc", Description: "Lessons"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "A", Description: "All"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.step == stepMode {
		if kmsg.String() == "esc" {
			s.step = stepLessons
			return s, nil
		}
		var cmd tea.Cmd
		s.modes, cmd = s.modes.Update(msg)
		return s, cmd
	}

	if kmsg.String() == "enter" {
		s.chosen = s.selectedLessons()
		if len(s.chosen) > 0 {
			s.step = stepMode
		}
		return s, nil
	}
	s.list, _ = s.list.Update(msg)
	return s, nil
}

// selectedLessons returns the checked lesson IDs, or the lesson under the
// cursor when nothing is checked.
func (s *SetupScreen) selectedLessons() []string {
	if len(s.lessons) == 0 {
		return nil
	}
	checked := s.list.Checked()
	if len(checked) == 0 {
		checked = []int{s.list.Cursor}
	}
	ids := make([]string, len(checked))
	for i, idx := range checked {
		ids[i] = s.lessons[idx].ID
	}
	return ids
}

func (s *SetupScreen) View(width, height int) string {
	if len(s.lessons) == 0 {
		return layout.Centered(width, theme.Dim, "\n\nThe catalog has no lessons.")
	}

	var b strings.Builder
	b.WriteString("\n")
	if s.step == stepLessons {
		b.WriteString(layout.Centered(width, theme.Title, "Which lessons?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.list.View()))
		return b.String()
	}

	b.WriteString(layout.Centered(width, theme.Title, "Pick a quiz type"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Dim, "Lessons "+strings.Join(s.chosen, ", ")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.modes.View()))
	return b.String()
}
