package lessons

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
	"github.com/abhisek/kanjiz/internal/ui/layout"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

// LessonsScreen lists the catalog's lessons and shows the kanji of one.
type LessonsScreen struct {
	env      screen.Env
	lessons  []kanji.LessonInfo
	selected int

	// open is the lesson being shown, nil while listing.
	open  *kanji.LessonInfo
	items []kanji.Kanji
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)
var _ screen.EscHandler = (*LessonsScreen)(nil)

// New creates a LessonsScreen.
func New(env screen.Env) *LessonsScreen {
	return &LessonsScreen{env: env, lessons: env.Catalog.Lessons()}
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Title() string {
	if s.open != nil {
		return "Lesson " + s.open.ID
	}
	return "Lessons"
}

func (s *LessonsScreen) HandlesEsc() bool {
	return s.open != nil
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	if s.open != nil {
		return []layout.KeyHint{
			{Key: "S", Description: "Quiz this lesson"},
			{Key: "Esc", Description: "Lessons"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.open != nil {
		switch kmsg.String() {
		case "esc":
			s.open, s.items = nil, nil
		case "s", "S":
			return s, router.PushCmd(play.New(s.env, []string{s.open.ID}, quiz.ModeMixed))
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.lessons)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(s.lessons) {
			info := s.lessons[s.selected]
			s.open = &info
			s.items = s.env.Catalog.LessonKanji(info.ID)
		}
	}
	return s, nil
}

func (s *LessonsScreen) View(width, height int) string {
	if len(s.lessons) == 0 {
		return layout.Centered(width, theme.Dim, "\n\nThe catalog has no lessons.")
	}
	if s.open != nil {
		return s.renderLesson(width)
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, l := range s.lessons {
		line := fmt.Sprintf("%-3s %-28s %2d kanji  %s  ~%d min", l.ID, l.Title, l.KanjiCount, l.JLPTLevel, l.EstimatedMinutes)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
		if i == s.selected && l.Description != "" {
			b.WriteString(theme.Hint.Render("    " + l.Description))
			b.WriteString("\n")
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *LessonsScreen) renderLesson(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, s.open.Title))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Dim, fmt.Sprintf("%s · %s", s.open.Difficulty, s.open.JLPTLevel)))
	b.WriteString("\n\n")

	var rows strings.Builder
	for _, k := range s.items {
		rows.WriteString(theme.Selected.Render(k.Character))
		rows.WriteString(theme.Body.Render(fmt.Sprintf("  %-14s", k.Meaning)))
		rows.WriteString(theme.Reading.Render(fmt.Sprintf("  %-12s %s",
			strings.Join(k.Readings.Onyomi, "、"),
			strings.Join(k.Readings.Kunyomi, "、"))))
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	return b.String()
}
