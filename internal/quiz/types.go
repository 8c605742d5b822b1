package quiz

import "time"

// MaxOptions is the largest number of options a question offers.
const MaxOptions = 4

// Question is a generated multiple-choice question.
type Question struct {
	// ID is "q_<kanjiID>_<mode>", with "_<n>" appended in mixed mode.
	ID string `json:"id"`

	// Prompt is the given side: a character, meaning or reading.
	Prompt string `json:"prompt"`

	// CorrectAnswer is the asked-for side.
	CorrectAnswer string `json:"correct_answer"`

	// Options holds at most MaxOptions distinct values and contains
	// CorrectAnswer exactly once.
	Options []string `json:"options"`

	// Mode is the concrete mode used, even when the quiz is mixed.
	Mode Mode `json:"mode"`

	// KanjiID is the composite catalog id ("<lessonID>:<kanjiID>") of the
	// kanji the question is about.
	KanjiID string `json:"kanji_id"`
}

// Result is the learner's answer to one question.
type Result struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
	TimeSpentMs    int64  `json:"time_spent_ms"`
}

// NewResult records selected as the answer to q after elapsed.
func NewResult(q Question, selected string, elapsed time.Duration) Result {
	return Result{
		QuestionID:     q.ID,
		SelectedAnswer: selected,
		IsCorrect:      selected == q.CorrectAnswer,
		TimeSpentMs:    elapsed.Milliseconds(),
	}
}

// Summary is the scored outcome of a quiz.
type Summary struct {
	Total              int   `json:"total"`
	Correct            int   `json:"correct"`
	Incorrect          int   `json:"incorrect"`
	Accuracy           int   `json:"accuracy"`
	AverageTimeSeconds int   `json:"average_time_seconds"`
	Grade              Grade `json:"grade"`
}

// ReviewItem pairs an answer with its question for the results view.
type ReviewItem struct {
	QuestionID     string  `json:"question_id"`
	KanjiID        string  `json:"kanji_id"`
	Mode           Mode    `json:"mode"`
	Prompt         string  `json:"prompt"`
	CorrectAnswer  string  `json:"correct_answer"`
	SelectedAnswer string  `json:"selected_answer"`
	IsCorrect      bool    `json:"is_correct"`
	Seconds        float64 `json:"seconds"`
}
