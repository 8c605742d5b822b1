package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMode is returned for a mode outside the closed set.
	ErrUnknownMode = errors.New("unknown quiz mode")

	// ErrMalformedKanji matches every *MalformedKanjiError.
	ErrMalformedKanji = errors.New("malformed kanji data")
)

// MalformedKanjiError reports a kanji that lacks the field a mode needs,
// e.g. an empty kunyomi list for kunyomi-to-kanji.
type MalformedKanjiError struct {
	KanjiID string
	Mode    Mode
	Field   Field
}

func (e *MalformedKanjiError) Error() string {
	return fmt.Sprintf("kanji %s: missing %s for mode %s", e.KanjiID, e.Field, e.Mode)
}

func (e *MalformedKanjiError) Unwrap() error { return ErrMalformedKanji }
