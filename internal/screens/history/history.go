package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/store"
	"github.com/abhisek/kanjiz/internal/ui/layout"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

const (
	sessionLimit = 50
	missedLimit  = 5
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Missed   []store.KanjiStat
	Err      error
}

// HistoryScreen displays past quizzes and the most missed kanji.
type HistoryScreen struct {
	eventRepo store.EventRepo
	catalog   kanji.Catalog
	sessions  []store.SessionSummary
	missed    []store.KanjiStat
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(eventRepo store.EventRepo, catalog kanji.Catalog) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		catalog:   catalog,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		missed, err := repo.MostMissed(ctx, missedLimit)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}
		return historyLoadedMsg{Sessions: sessions, Missed: missed}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.missed = msg.Missed
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(width, theme.Incorrect, fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return layout.Centered(width, theme.Dim, "\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return layout.Centered(width, theme.Hint, "\n\n  No quizzes yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		mode, err := quiz.ParseMode(sess.Mode)
		title := sess.Mode
		if err == nil {
			title = mode.Title()
		}
		line := fmt.Sprintf("%s%s  %-16s %2d/%-2d  %3d%%",
			prefix, sess.EndedAt.Local().Format("Jan 02 15:04"), title, sess.Correct, sess.Answered, sess.Accuracy)
		if !sess.Completed() {
			line += "  (quit early)"
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    lessons %s · %d of %d questions · %ds avg · %d:%02d",
				strings.Join(sess.LessonIDs, ", "), sess.Answered, sess.Questions,
				sess.AvgSeconds, sess.DurationSecs/60, sess.DurationSecs%60)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(detail)))
			b.WriteString("\n")
		}
	}

	if len(s.missed) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Subtitle.Bold(true), "Most missed"))
		b.WriteString("\n")
		parts := make([]string, 0, len(s.missed))
		for _, m := range s.missed {
			label := m.KanjiID
			if k, ok := s.catalog.KanjiByID(m.KanjiID); ok {
				label = k.Character + " " + k.Meaning
			}
			parts = append(parts, fmt.Sprintf("%s (%.0f%%)", label, m.Accuracy()*100))
		}
		b.WriteString(layout.Centered(width, theme.Incorrect, strings.Join(parts, "   ")))
	}
	return b.String()
}
