package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/screens/history"
	"github.com/abhisek/kanjiz/internal/screens/lessons"
	"github.com/abhisek/kanjiz/internal/screens/lookup"
	"github.com/abhisek/kanjiz/internal/screens/notice"
	"github.com/abhisek/kanjiz/internal/screens/setup"
	"github.com/abhisek/kanjiz/internal/store"
	"github.com/abhisek/kanjiz/internal/ui/components"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

const banner = `╔═══════════════╗
║  漢  字  塾   ║
╚═══════════════╝`

type lastQuizMsg struct {
	Summary *store.SessionSummary
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env        screen.Env
	menu       components.Menu
	lessons    int
	kanjiCount int
	last       *store.SessionSummary
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env screen.Env) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Start Quiz", Hint: "pick lessons and a quiz type", Action: func() tea.Cmd {
			return router.PushCmd(setup.New(env))
		}},
		{Label: "Lessons", Hint: "browse the kanji of each lesson", Action: func() tea.Cmd {
			return router.PushCmd(lessons.New(env))
		}},
		{Label: "Kanji Lookup", Hint: "search by kanji, meaning or reading", Action: func() tea.Cmd {
			return router.PushCmd(lookup.New(env))
		}},
		{Label: "History", Hint: "past quizzes and most missed kanji", Action: func() tea.Cmd {
			if env.Events == nil {
				return router.PushCmd(notice.New("History", "History is turned off for this run."))
			}
			return router.PushCmd(history.New(env.Events, env.Catalog))
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{env: env, menu: components.NewMenu(items)}
	for _, l := range env.Catalog.Lessons() {
		h.lessons++
		h.kanjiCount += l.KanjiCount
	}
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	repo := h.env.Events
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		sessions, err := repo.QuerySessionSummaries(context.Background(), store.QueryOpts{Limit: 1})
		if err != nil || len(sessions) == 0 {
			return lastQuizMsg{}
		}
		return lastQuizMsg{Summary: &sessions[0]}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(lastQuizMsg); ok {
		h.last = m.Summary
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	sections := []string{
		center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner)),
		center(theme.Dim.Render(fmt.Sprintf("%d lessons · %d kanji", h.lessons, h.kanjiCount))),
	}
	if h.last != nil {
		sections = append(sections, center(theme.Reading.Render(
			fmt.Sprintf("Last quiz: %d/%d · %d%%", h.last.Correct, h.last.Answered, h.last.Accuracy))))
	}
	sections = append(sections, center(h.menu.View()))
	if !h.env.Mnemonics.Enabled() {
		sections = append(sections, center(lipgloss.NewStyle().Foreground(theme.Accent).
			Render("Set an LLM API key to get memory hooks for missed kanji (see kanjiz --help)")))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
