package play

import (
	"time"

	"github.com/abhisek/kanjiz/internal/session"
)

// quizReadyMsg is sent when the questions have been generated.
type quizReadyMsg struct {
	State *session.State
	Err   error
}

// timerTickMsg is sent every second to refresh the elapsed time.
type timerTickMsg time.Time
