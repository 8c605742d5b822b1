package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/quiz"
)

var (
	// ErrNoQuestions is returned when a session would have nothing to ask.
	ErrNoQuestions = errors.New("no questions for the selected lessons")

	// ErrAlreadyAnswered is returned when the current question already has
	// a result.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrFinished is returned when answering after the last question.
	ErrFinished = errors.New("session finished")
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // Waiting for an answer
	PhaseFeedback              // Showing the result of the last answer
	PhaseDone                  // All questions answered or quit
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// State tracks one quiz run. States share nothing with each other.
type State struct {
	// ID is the UUID grouping this run's events.
	ID string

	Mode      quiz.Mode
	LessonIDs []string

	// Questions are asked in order; Results grows as they are answered.
	Questions []quiz.Question
	Results   []quiz.Result

	// Index is the position of the current question in Questions.
	Index int

	Phase Phase

	// StartTime is when the session began.
	StartTime time.Time

	// QuestionStartTime is when the current question was shown.
	QuestionStartTime time.Time

	// EndTime is set once the session reaches PhaseDone.
	EndTime time.Time

	now Clock
}

// New creates a session over questions. An empty id gets a fresh UUID and
// a nil clock uses time.Now.
func New(id string, mode quiz.Mode, lessonIDs []string, questions []quiz.Question, now Clock) (*State, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if id == "" {
		id = uuid.NewString()
	}
	if now == nil {
		now = time.Now
	}

	t := now()
	return &State{
		ID:                id,
		Mode:              mode,
		LessonIDs:         slices.Clone(lessonIDs),
		Questions:         questions,
		Results:           make([]quiz.Result, 0, len(questions)),
		Phase:             PhaseActive,
		StartTime:         t,
		QuestionStartTime: t,
		now:               now,
	}, nil
}

// Prepare resolves the pool for lessonIDs, generates questions in mode and
// wraps them in a new session.
func Prepare(catalog kanji.Catalog, gen *quiz.Generator, mode quiz.Mode, lessonIDs []string, now Clock) (*State, error) {
	pool := quiz.ResolvePool(catalog, lessonIDs...)
	questions, err := gen.Generate(pool, mode)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	return New("", mode, lessonIDs, questions, now)
}

// Start resets the question timer, e.g. once the question is on screen.
func (s *State) Start() {
	s.QuestionStartTime = s.now()
}

// Current returns the question being asked. ok is false once the session
// is done.
func (s *State) Current() (q quiz.Question, ok bool) {
	if s.Phase == PhaseDone || s.Index >= len(s.Questions) {
		return quiz.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Answer records option as the answer to the current question, timed from
// the last Start (or Next).
func (s *State) Answer(option string) (quiz.Result, error) {
	switch s.Phase {
	case PhaseDone:
		return quiz.Result{}, ErrFinished
	case PhaseFeedback:
		return quiz.Result{}, ErrAlreadyAnswered
	}
	q, ok := s.Current()
	if !ok {
		return quiz.Result{}, ErrFinished
	}

	r := quiz.NewResult(q, option, s.now().Sub(s.QuestionStartTime))
	s.Results = append(s.Results, r)
	s.Phase = PhaseFeedback
	return r, nil
}

// LastResult returns the most recent result, if any.
func (s *State) LastResult() (quiz.Result, bool) {
	if len(s.Results) == 0 {
		return quiz.Result{}, false
	}
	return s.Results[len(s.Results)-1], true
}

// Next moves to the following question and restarts its timer. It returns
// false, and ends the session, when no questions remain.
func (s *State) Next() bool {
	if s.Phase == PhaseDone {
		return false
	}
	if s.Index+1 >= len(s.Questions) {
		s.Index = len(s.Questions)
		s.finish()
		return false
	}
	s.Index++
	s.Phase = PhaseActive
	s.QuestionStartTime = s.now()
	return true
}

// Quit ends the session early. Unanswered questions are not scored.
func (s *State) Quit() {
	if s.Phase != PhaseDone {
		s.finish()
	}
}

func (s *State) finish() {
	s.Phase = PhaseDone
	s.EndTime = s.now()
}

// Done reports whether the session has ended.
func (s *State) Done() bool {
	return s.Phase == PhaseDone
}

// Progress returns the 1-based number of the current question and the
// total number of questions.
func (s *State) Progress() (current, total int) {
	total = len(s.Questions)
	current = min(s.Index+1, total)
	return current, total
}

// Correct returns how many answers so far were right.
func (s *State) Correct() int {
	n := 0
	for _, r := range s.Results {
		if r.IsCorrect {
			n++
		}
	}
	return n
}

// Elapsed returns the session duration so far, or in total once done.
func (s *State) Elapsed() time.Duration {
	end := s.EndTime
	if end.IsZero() {
		end = s.now()
	}
	return end.Sub(s.StartTime)
}

// Summary scores the answers recorded so far.
func (s *State) Summary() quiz.Summary {
	return quiz.Score(s.Results)
}

// Review pairs each answer with its question.
func (s *State) Review() []quiz.ReviewItem {
	return quiz.Review(s.Questions, s.Results)
}

// Missed returns the kanji IDs answered wrongly.
func (s *State) Missed() []string {
	return quiz.Missed(s.Questions, s.Results)
}
