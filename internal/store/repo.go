package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Session event actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// SessionEventData captures a quiz session starting or ending.
type SessionEventData struct {
	SessionID string
	Action    string // SessionStart or SessionEnd
	Mode      string
	LessonIDs []string

	// Questions is the number of questions generated for the session.
	Questions int

	// The remaining fields are only meaningful on SessionEnd.
	Answered     int
	Correct      int
	Accuracy     int
	AvgSeconds   int
	DurationSecs int
}

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	SessionID      string
	QuestionID     string
	KanjiID        string
	Mode           string
	Prompt         string
	CorrectAnswer  string
	SelectedAnswer string
	Correct        bool
	TimeMs         int64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummary is one finished quiz session, assembled from its end
// event and the matching start event.
type SessionSummary struct {
	SessionID    string
	Sequence     int64
	Mode         string
	LessonIDs    []string
	StartedAt    time.Time // zero if the start event is missing
	EndedAt      time.Time
	Questions    int
	Answered     int
	Correct      int
	Accuracy     int
	AvgSeconds   int
	DurationSecs int
}

// Completed reports whether every generated question was answered.
func (s SessionSummary) Completed() bool {
	return s.Questions > 0 && s.Answered >= s.Questions
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// KanjiStat is the answer history of one kanji.
type KanjiStat struct {
	KanjiID  string
	Attempts int
	Correct  int
}

// Accuracy returns Correct/Attempts, or 0 with no attempts.
func (k KanjiStat) Accuracy() float64 {
	if k.Attempts == 0 {
		return 0
	}
	return float64(k.Correct) / float64(k.Attempts)
}

// EventRepo provides append and query access to learner history.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// KanjiAccuracy returns the historical accuracy (0.0-1.0) for a kanji,
	// or 0 if it was never answered.
	KanjiAccuracy(ctx context.Context, kanjiID string) (float64, error)

	// MostMissed returns kanji ordered by wrong answers, most first.
	MostMissed(ctx context.Context, limit int) ([]KanjiStat, error)

	// Reset deletes all history.
	Reset(ctx context.Context) error
}

// Mnemonic is a stored memory hook for one kanji.
type Mnemonic struct {
	KanjiID   string
	Character string
	Keyword   string
	Story     string
	Model     string
	CreatedAt time.Time
}

// MnemonicRepo caches generated mnemonics.
type MnemonicRepo interface {
	// SaveMnemonic stores m, replacing any previous mnemonic for the kanji.
	SaveMnemonic(ctx context.Context, m *Mnemonic) error

	// GetMnemonic returns the mnemonic for a kanji, or nil if none exists.
	GetMnemonic(ctx context.Context, kanjiID string) (*Mnemonic, error)
}
