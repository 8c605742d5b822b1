package play

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/screens/results"
	"github.com/abhisek/kanjiz/internal/session"
	"github.com/abhisek/kanjiz/internal/ui/components"
	"github.com/abhisek/kanjiz/internal/ui/layout"
)

// PlayScreen runs one quiz: it asks every generated question, shows
// feedback after each answer and hands off to the results screen.
type PlayScreen struct {
	env       screen.Env
	lessonIDs []string
	mode      quiz.Mode

	state    *session.State
	recorder *session.Recorder
	choices  components.Choices

	confirmQuit bool
	errMsg      string

	// now is the session clock. Tests substitute a fake.
	now session.Clock
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ screen.EscHandler = (*PlayScreen)(nil)

// New creates a PlayScreen quizzing lessonIDs in mode.
func New(env screen.Env, lessonIDs []string, mode quiz.Mode) *PlayScreen {
	return &PlayScreen{
		env:       env,
		lessonIDs: lessonIDs,
		mode:      mode,
		recorder:  session.NewRecorder(env.Events),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(s.prepare(), tickCmd())
}

func (s *PlayScreen) Title() string {
	return s.mode.Title()
}

func (s *PlayScreen) HandlesEsc() bool {
	return s.errMsg == ""
}

func (s *PlayScreen) Status() string {
	if s.state == nil {
		return ""
	}
	cur, total := s.state.Progress()
	e := s.state.Elapsed()
	return fmt.Sprintf("Q %d/%d  ✓ %d  %d:%02d", cur, total, s.state.Correct(), int(e.Minutes()), int(e.Seconds())%60)
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.state == nil || s.errMsg != "":
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.Phase == session.PhaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleReady(msg)

	case timerTickMsg:
		if s.state == nil || s.state.Done() {
			return s, nil
		}
		return s, tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// prepare generates the questions asynchronously.
func (s *PlayScreen) prepare() tea.Cmd {
	env, lessonIDs, mode, now := s.env, s.lessonIDs, s.mode, s.now
	return func() tea.Msg {
		var rnd quiz.Random
		if env.Seed != nil {
			rnd = quiz.NewRandom(*env.Seed)
		}
		gen := quiz.NewGenerator(rnd)
		gen.SkipMalformed = true
		st, err := session.Prepare(env.Catalog, gen, mode, lessonIDs, now)
		return quizReadyMsg{State: st, Err: err}
	}
}

func (s *PlayScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	_ = s.recorder.Started(context.Background(), s.state)
	s.showCurrent()
	return s, nil
}

// showCurrent resets the option selector for the current question and
// starts its timer.
func (s *PlayScreen) showCurrent() {
	q, ok := s.state.Current()
	if !ok {
		return
	}
	s.choices = components.NewChoices(q.Options)
	s.state.Start()
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Any key leaves the error state.
	if s.errMsg != "" {
		return s, router.PopCmd
	}
	if s.state == nil {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.state.Quit()
			return s, s.finish()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.state.Phase == session.PhaseFeedback {
		if s.state.Next() {
			s.showCurrent()
			return s, nil
		}
		return s, s.finish()
	}

	if key == "esc" {
		if len(s.state.Results) == 0 {
			s.state.Quit()
			_ = s.recorder.Ended(context.Background(), s.state)
			return s, router.PopCmd
		}
		s.confirmQuit = true
		return s, nil
	}

	var picked bool
	s.choices, picked = s.choices.Update(msg)
	if picked {
		s.answer()
	}
	return s, nil
}

// answer records the picked option and switches to feedback.
func (s *PlayScreen) answer() {
	option, ok := s.choices.Picked()
	if !ok {
		return
	}
	q, _ := s.state.Current()
	res, err := s.state.Answer(option)
	if err != nil {
		return
	}
	_ = s.recorder.Answered(context.Background(), s.state, q, res)
	s.choices.Reveal(q.CorrectAnswer)
}

// finish records the end of the session and replaces this screen with
// the results.
func (s *PlayScreen) finish() tea.Cmd {
	_ = s.recorder.Ended(context.Background(), s.state)

	env, lessonIDs, mode := s.env, s.lessonIDs, s.mode
	retry := func() screen.Screen { return New(env, lessonIDs, mode) }
	return router.ReplaceCmd(results.New(s.env, s.state, retry))
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
