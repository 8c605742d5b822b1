package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/store"
)

type mockEventRepo struct {
	store.EventRepo
	sessions []store.SessionSummary
	missed   []store.KanjiStat
	err      error
}

func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, opts store.QueryOpts) ([]store.SessionSummary, error) {
	return m.sessions, m.err
}

func (m *mockEventRepo) MostMissed(_ context.Context, limit int) ([]store.KanjiStat, error) {
	return m.missed, nil
}

func load(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	cat, err := kanji.Default()
	require.NoError(t, err)
	s := New(repo, cat)
	s.Update(s.Init()())
	return s
}

func TestHistory_ListAndExpand(t *testing.T) {
	repo := &mockEventRepo{
		sessions: []store.SessionSummary{
			{SessionID: "b", Mode: "mixed", LessonIDs: []string{"1", "2"}, EndedAt: time.Now(), Questions: 45, Answered: 10, Correct: 9, Accuracy: 90},
			{SessionID: "a", Mode: "kanji-to-meaning", LessonIDs: []string{"1"}, EndedAt: time.Now().Add(-time.Hour), Questions: 5, Answered: 5, Correct: 3, Accuracy: 60},
		},
		missed: []store.KanjiStat{{KanjiID: "1:2", Attempts: 4, Correct: 1}},
	}
	s := load(t, repo)

	view := s.View(100, 30)
	assert.Contains(t, view, "Mixed Quiz")
	assert.Contains(t, view, "quit early")
	assert.Contains(t, view, "Most missed")
	assert.Contains(t, view, "月")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, s.expanded[1])
	assert.Contains(t, s.View(100, 30), "5 of 5 questions")
}

func TestHistory_Empty(t *testing.T) {
	s := load(t, &mockEventRepo{})
	assert.Contains(t, s.View(80, 24), "No quizzes yet")
}

func TestHistory_Error(t *testing.T) {
	s := load(t, &mockEventRepo{err: errors.New("disk gone")})
	assert.Contains(t, s.View(80, 24), "disk gone")
}
