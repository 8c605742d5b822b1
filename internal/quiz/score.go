package quiz

import "math"

// Grade is the feedback tier for an accuracy percentage.
type Grade string

const (
	GradeExcellent      Grade = "excellent"
	GradeVeryGood       Grade = "very-good"
	GradeGood           Grade = "good"
	GradeKeepPracticing Grade = "keep-practicing"
)

// GradeFor maps an accuracy percentage to its tier.
func GradeFor(accuracy int) Grade {
	switch {
	case accuracy >= 90:
		return GradeExcellent
	case accuracy >= 80:
		return GradeVeryGood
	case accuracy >= 60:
		return GradeGood
	default:
		return GradeKeepPracticing
	}
}

// Message is the line shown under the score.
func (g Grade) Message() string {
	switch g {
	case GradeExcellent:
		return "Excellent work!"
	case GradeVeryGood:
		return "Very well done!"
	case GradeGood:
		return "Good job, but there's room to improve."
	default:
		return "Keep practicing, you'll get there!"
	}
}

// Score reduces results to a Summary. It has no side effects; an empty
// slice scores 0% with a 0s average.
func Score(results []Result) Summary {
	s := Summary{Total: len(results)}
	var totalMs int64
	for _, r := range results {
		if r.IsCorrect {
			s.Correct++
		}
		totalMs += r.TimeSpentMs
	}
	s.Incorrect = s.Total - s.Correct

	if s.Total > 0 {
		s.Accuracy = int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
		s.AverageTimeSeconds = int(math.Round(float64(totalMs) / float64(s.Total) / 1000))
	}
	s.Grade = GradeFor(s.Accuracy)
	return s
}

// Review pairs each result with its question, in answer order. Results
// for unknown question IDs are skipped.
func Review(questions []Question, results []Result) []ReviewItem {
	byID := indexQuestions(questions)
	items := make([]ReviewItem, 0, len(results))
	for _, r := range results {
		q, ok := byID[r.QuestionID]
		if !ok {
			continue
		}
		items = append(items, ReviewItem{
			QuestionID:     q.ID,
			KanjiID:        q.KanjiID,
			Mode:           q.Mode,
			Prompt:         q.Prompt,
			CorrectAnswer:  q.CorrectAnswer,
			SelectedAnswer: r.SelectedAnswer,
			IsCorrect:      r.IsCorrect,
			Seconds:        float64(r.TimeSpentMs) / 1000,
		})
	}
	return items
}

// Missed returns the kanji IDs of wrongly answered questions,
// de-duplicated, in answer order.
func Missed(questions []Question, results []Result) []string {
	byID := indexQuestions(questions)
	seen := make(map[string]bool)
	var out []string
	for _, r := range results {
		if r.IsCorrect {
			continue
		}
		q, ok := byID[r.QuestionID]
		if !ok || seen[q.KanjiID] {
			continue
		}
		seen[q.KanjiID] = true
		out = append(out, q.KanjiID)
	}
	return out
}

func indexQuestions(questions []Question) map[string]Question {
	m := make(map[string]Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}
