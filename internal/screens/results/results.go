package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/session"
	"github.com/abhisek/kanjiz/internal/store"
	"github.com/abhisek/kanjiz/internal/ui/layout"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

// mnemonicsMsg carries the memory hooks generated for missed kanji.
type mnemonicsMsg struct {
	Mnemonics []*store.Mnemonic
	Err       error
}

// ResultsScreen shows the score of a finished quiz, the answer review and
// memory hooks for the kanji that were missed.
type ResultsScreen struct {
	env     screen.Env
	summary quiz.Summary
	review  []quiz.ReviewItem
	missed  []string
	elapsed time.Duration

	// retry builds a fresh quiz over the same lessons and mode.
	retry func() screen.Screen

	mnemonics   []*store.Mnemonic
	mnemonicErr string
	loading     bool
	offset      int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.EscHandler = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finished session. retry may be nil.
func New(env screen.Env, st *session.State, retry func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		env:     env,
		summary: st.Summary(),
		review:  st.Review(),
		missed:  st.Missed(),
		elapsed: st.Elapsed(),
		retry:   retry,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if !s.env.Mnemonics.Enabled() || len(s.missed) == 0 {
		return nil
	}
	s.loading = true
	svc, catalog, missed := s.env.Mnemonics, s.env.Catalog, s.missed
	return func() tea.Msg {
		ms, err := svc.ForMissed(context.Background(), catalog, missed)
		return mnemonicsMsg{Mnemonics: ms, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) HandlesEsc() bool {
	return true
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "↑↓", Description: "Scroll"},
	}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
	}
	return hints
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mnemonicsMsg:
		s.loading = false
		s.mnemonics = msg.Mnemonics
		if msg.Err != nil {
			s.mnemonicErr = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, router.HomeCmd
		case "r", "R":
			if s.retry != nil {
				return s, router.ReplaceCmd(s.retry())
			}
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	lines := s.lines(width)

	// Keep the score block pinned and scroll the rest.
	head, body := lines[:min(len(lines), scoreLines)], lines[min(len(lines), scoreLines):]
	room := max(height-len(head), 1)
	s.offset = min(s.offset, max(len(body)-room, 0))
	end := min(s.offset+room, len(body))

	return strings.Join(append(head, body[s.offset:end]...), "\n")
}

// scoreLines is the height of the pinned score block built by lines.
const scoreLines = 7

func (s *ResultsScreen) lines(width int) []string {
	sum := s.summary
	center := func(st lipgloss.Style, text string) string {
		return layout.Centered(width, st, text)
	}

	gradeStyle := theme.Correct
	switch sum.Grade {
	case quiz.GradeGood:
		gradeStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	case quiz.GradeKeepPracticing:
		gradeStyle = theme.Incorrect
	}

	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60

	out := []string{
		"",
		center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Quiz complete!"),
		"",
		center(theme.Body.Bold(true), fmt.Sprintf("%d / %d correct  ·  %d%%", sum.Correct, sum.Total, sum.Accuracy)),
		center(gradeStyle, sum.Grade.Message()),
		center(theme.Dim, fmt.Sprintf("%d:%02d total  ·  %ds per question", mins, secs, sum.AverageTimeSeconds)),
		"",
	}

	if len(s.review) > 0 {
		out = append(out, center(theme.Subtitle.Bold(true), "Review"))
		for _, item := range s.review {
			out = append(out, center(lipgloss.NewStyle(), reviewLine(item)))
		}
	}

	switch {
	case s.loading:
		out = append(out, "", center(theme.Hint, "Writing memory hooks for missed kanji..."))
	case len(s.mnemonics) > 0:
		out = append(out, "", center(theme.Subtitle.Bold(true), "Memory hooks"))
		for _, m := range s.mnemonics {
			block := lipgloss.PlaceHorizontal(width, lipgloss.Center, mnemonicBlock(m, width))
			out = append(out, strings.Split(block, "\n")...)
		}
	}
	if s.mnemonicErr != "" {
		out = append(out, center(theme.Dim, "Some memory hooks could not be generated."))
	}
	return out
}

func reviewLine(item quiz.ReviewItem) string {
	if item.IsCorrect {
		return theme.Correct.Render("✓ ") + theme.Body.Render(item.Prompt+"  →  "+item.CorrectAnswer)
	}
	return theme.Incorrect.Render("✗ ") +
		theme.Body.Render(item.Prompt+"  →  "+item.CorrectAnswer) +
		theme.Dim.Render("  (you: "+item.SelectedAnswer+")")
}

func mnemonicBlock(m *store.Mnemonic, width int) string {
	text := m.Story
	if m.Keyword != "" {
		text = m.Keyword + ": " + text
	}
	story := lipgloss.NewStyle().Foreground(theme.Text).Width(max(min(width-8, 70), 20)).Render(text)
	return lipgloss.JoinHorizontal(lipgloss.Top, theme.Selected.Render(m.Character)+"  ", story)
}
