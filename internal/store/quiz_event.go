package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO session_events
		(sequence, timestamp, session_id, action, mode, lesson_ids,
		 questions, answered, correct, accuracy, avg_seconds, duration_secs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		seqNum, nowMillis(), data.SessionID, data.Action, data.Mode, strings.Join(data.LessonIDs, ","),
		data.Questions, data.Answered, data.Correct, data.Accuracy, data.AvgSeconds, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO answer_events
		(sequence, timestamp, session_id, question_id, kanji_id, mode,
		 prompt, correct_answer, selected_answer, correct, time_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		seqNum, nowMillis(), data.SessionID, data.QuestionID, data.KanjiID, data.Mode,
		data.Prompt, data.CorrectAnswer, data.SelectedAnswer, data.Correct, data.TimeMs,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error) {
	where, args := opts.filter("e.", []any{SessionStart, SessionEnd})
	query := `SELECT e.sequence, e.timestamp, e.session_id, e.mode, e.lesson_ids,
			e.questions, e.answered, e.correct, e.accuracy, e.avg_seconds, e.duration_secs,
			(SELECT MIN(s.timestamp) FROM session_events s
			  WHERE s.session_id = e.session_id AND s.action = $1)
		FROM session_events e
		WHERE e.action = $2` + where + `
		ORDER BY e.sequence DESC` + opts.limit()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var (
			s       SessionSummary
			ended   int64
			lessons string
			started sql.NullInt64
		)
		if err := rows.Scan(&s.Sequence, &ended, &s.SessionID, &s.Mode, &lessons,
			&s.Questions, &s.Answered, &s.Correct, &s.Accuracy, &s.AvgSeconds, &s.DurationSecs,
			&started); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.EndedAt = fromMillis(ended)
		if started.Valid {
			s.StartedAt = fromMillis(started.Int64)
		}
		if lessons != "" {
			s.LessonIDs = strings.Split(lessons, ",")
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *eventRepo) KanjiAccuracy(ctx context.Context, kanjiID string) (float64, error) {
	var st KanjiStat
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0)
		FROM answer_events WHERE kanji_id = $1`, kanjiID,
	).Scan(&st.Attempts, &st.Correct)
	if err != nil {
		return 0, fmt.Errorf("query kanji accuracy: %w", err)
	}
	return st.Accuracy(), nil
}

func (r *eventRepo) MostMissed(ctx context.Context, limit int) ([]KanjiStat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT kanji_id, COUNT(*),
			SUM(CASE WHEN correct THEN 1 ELSE 0 END)
		FROM answer_events
		GROUP BY kanji_id
		HAVING SUM(CASE WHEN correct THEN 0 ELSE 1 END) > 0
		ORDER BY SUM(CASE WHEN correct THEN 0 ELSE 1 END) DESC, kanji_id`+QueryOpts{Limit: limit}.limit())
	if err != nil {
		return nil, fmt.Errorf("query most missed: %w", err)
	}
	defer rows.Close()

	var out []KanjiStat
	for rows.Next() {
		var st KanjiStat
		if err := rows.Scan(&st.KanjiID, &st.Attempts, &st.Correct); err != nil {
			return nil, fmt.Errorf("scan kanji stat: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
