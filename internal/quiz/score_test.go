package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results(correct, total int, ms int64) []Result {
	rs := make([]Result, total)
	for i := range rs {
		rs[i] = Result{QuestionID: "q", IsCorrect: i < correct, TimeSpentMs: ms}
	}
	return rs
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    Summary
	}{
		{
			name:    "seven of ten",
			results: results(7, 10, 2000),
			want:    Summary{Total: 10, Correct: 7, Incorrect: 3, Accuracy: 70, AverageTimeSeconds: 2, Grade: GradeGood},
		},
		{
			name:    "empty",
			results: nil,
			want:    Summary{Grade: GradeKeepPracticing},
		},
		{
			name:    "all correct",
			results: results(3, 3, 1499),
			want:    Summary{Total: 3, Correct: 3, Accuracy: 100, AverageTimeSeconds: 1, Grade: GradeExcellent},
		},
		{
			name:    "rounds accuracy",
			results: results(2, 3, 2500),
			want:    Summary{Total: 3, Correct: 2, Incorrect: 1, Accuracy: 67, AverageTimeSeconds: 3, Grade: GradeGood},
		},
		{
			name:    "none correct",
			results: results(0, 4, 0),
			want:    Summary{Total: 4, Incorrect: 4, Grade: GradeKeepPracticing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.results))
		})
	}
}

func TestScoreIdempotent(t *testing.T) {
	rs := results(5, 8, 1234)
	first := Score(rs)
	second := Score(rs)
	assert.Equal(t, first, second)
	assert.Equal(t, results(5, 8, 1234), rs, "input must not change")
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		accuracy int
		want     Grade
	}{
		{100, GradeExcellent},
		{90, GradeExcellent},
		{89, GradeVeryGood},
		{80, GradeVeryGood},
		{79, GradeGood},
		{60, GradeGood},
		{59, GradeKeepPracticing},
		{0, GradeKeepPracticing},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.accuracy), "GradeFor(%d)", tt.accuracy)
		assert.NotEmpty(t, tt.want.Message())
	}
}

func TestNewResult(t *testing.T) {
	q := Question{ID: "q_1_kanji-to-meaning", CorrectAnswer: "sun"}

	r := NewResult(q, "sun", 1500*time.Millisecond)
	assert.True(t, r.IsCorrect)
	assert.Equal(t, int64(1500), r.TimeSpentMs)
	assert.Equal(t, q.ID, r.QuestionID)

	r = NewResult(q, "Sun", time.Second)
	assert.False(t, r.IsCorrect, "comparison is exact")
}

func TestReviewAndMissed(t *testing.T) {
	qs := []Question{
		{ID: "q1", KanjiID: "1:1", Prompt: "日", CorrectAnswer: "sun", Mode: ModeKanjiToMeaning},
		{ID: "q2", KanjiID: "1:2", Prompt: "月", CorrectAnswer: "moon", Mode: ModeKanjiToMeaning},
		{ID: "q3", KanjiID: "1:1", Prompt: "ニチ", CorrectAnswer: "日", Mode: ModeOnyomiToKanji},
	}
	rs := []Result{
		NewResult(qs[2], "月", 3*time.Second),
		NewResult(qs[1], "moon", time.Second),
		NewResult(qs[0], "fire", 2*time.Second),
		{QuestionID: "unknown", SelectedAnswer: "x"},
	}

	items := Review(qs, rs)
	require.Len(t, items, 3)
	assert.Equal(t, "q3", items[0].QuestionID)
	assert.Equal(t, "月", items[0].SelectedAnswer)
	assert.Equal(t, "日", items[0].CorrectAnswer)
	assert.False(t, items[0].IsCorrect)
	assert.InDelta(t, 3.0, items[0].Seconds, 0.001)
	assert.True(t, items[1].IsCorrect)

	assert.Equal(t, []string{"1:1"}, Missed(qs, rs))
	assert.Empty(t, Missed(qs, nil))
}
