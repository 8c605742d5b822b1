package session

import (
	"context"

	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/store"
)

// Recorder writes session lifecycle and answer events to the event log.
// A Recorder with a nil repo records nothing.
type Recorder struct {
	repo store.EventRepo
}

// NewRecorder returns a Recorder writing to repo.
func NewRecorder(repo store.EventRepo) *Recorder {
	return &Recorder{repo: repo}
}

// Started records the session start.
func (r *Recorder) Started(ctx context.Context, s *State) error {
	if r == nil || r.repo == nil {
		return nil
	}
	return r.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: s.ID,
		Action:    store.SessionStart,
		Mode:      string(s.Mode),
		LessonIDs: s.LessonIDs,
		Questions: len(s.Questions),
	})
}

// Answered records one answer to q.
func (r *Recorder) Answered(ctx context.Context, s *State, q quiz.Question, res quiz.Result) error {
	if r == nil || r.repo == nil {
		return nil
	}
	return r.repo.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:      s.ID,
		QuestionID:     q.ID,
		KanjiID:        q.KanjiID,
		Mode:           string(q.Mode),
		Prompt:         q.Prompt,
		CorrectAnswer:  q.CorrectAnswer,
		SelectedAnswer: res.SelectedAnswer,
		Correct:        res.IsCorrect,
		TimeMs:         res.TimeSpentMs,
	})
}

// Ended records the session end with its score.
func (r *Recorder) Ended(ctx context.Context, s *State) error {
	if r == nil || r.repo == nil {
		return nil
	}
	sum := s.Summary()
	return r.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    s.ID,
		Action:       store.SessionEnd,
		Mode:         string(s.Mode),
		LessonIDs:    s.LessonIDs,
		Questions:    len(s.Questions),
		Answered:     sum.Total,
		Correct:      sum.Correct,
		Accuracy:     sum.Accuracy,
		AvgSeconds:   sum.AverageTimeSeconds,
		DurationSecs: int(s.Elapsed().Seconds()),
	})
}
