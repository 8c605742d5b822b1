package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/session"
	"github.com/abhisek/kanjiz/internal/ui/components"
	"github.com/abhisek/kanjiz/internal/ui/layout"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return layout.Centered(width, theme.Incorrect, "\n\nCould not start the quiz\n\n"+s.errMsg)
	case s.state == nil:
		return layout.Centered(width, theme.Dim, "\n\n  Preparing questions...")
	case s.confirmQuit:
		return s.renderQuitConfirm(width, height)
	}

	q, ok := s.state.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	cur, total := s.state.Progress()
	b.WriteString(components.NewProgressBar(fmt.Sprintf("Question %d of %d", cur, total), float64(cur-1)/float64(total), false, min(width-4, 60)).View())
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Dim, q.Mode.PromptLabel()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderPrompt(q)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	if s.state.Phase == session.PhaseFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width, q))
	}
	return b.String()
}

func renderPrompt(q quiz.Question) string {
	if q.Mode.ShowsKanji() {
		return theme.Glyph.Render(q.Prompt)
	}
	style := theme.Card.Foreground(theme.Text).Bold(true)
	if q.Mode != quiz.ModeMeaningToKanji {
		style = style.Foreground(theme.Secondary)
	}
	return style.Render(q.Prompt)
}

// renderFeedback shows the verdict and the kanji behind the question.
func (s *PlayScreen) renderFeedback(width int, q quiz.Question) string {
	res, ok := s.state.LastResult()
	if !ok {
		return ""
	}

	var b strings.Builder
	if res.IsCorrect {
		b.WriteString(layout.Centered(width, theme.Correct, "Correct!"))
	} else {
		b.WriteString(layout.Centered(width, theme.Incorrect, "Not quite"))
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Dim, "Correct answer: "+q.CorrectAnswer))
	}

	if k, ok := s.env.Catalog.KanjiByID(q.KanjiID); ok {
		info := fmt.Sprintf("%s  %s  ·  on: %s  ·  kun: %s",
			k.Character, k.Meaning,
			orDash(strings.Join(k.Readings.Onyomi, "、")),
			orDash(strings.Join(k.Readings.Kunyomi, "、")))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Reading, info))
	}
	return b.String()
}

func (s *PlayScreen) renderQuitConfirm(width, height int) string {
	answered := len(s.state.Results)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Body.Bold(true).Render("End the quiz now?") + "\n\n" +
			theme.Dim.Render(fmt.Sprintf("Your %d answered questions will be scored.", answered)) + "\n\n" +
			theme.Hint.Render("Y to end  ·  N to keep going"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
