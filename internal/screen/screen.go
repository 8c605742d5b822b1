package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/mnemonic"
	"github.com/abhisek/kanjiz/internal/store"
	"github.com/abhisek/kanjiz/internal/ui/layout"
)

// Screen is one page of the TUI.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider supplies the right side of the header, e.g. quiz progress.
type StatusProvider interface {
	Status() string
}

// EscHandler is implemented by screens that handle Esc themselves instead
// of letting the app pop them (e.g. to confirm quitting a quiz).
type EscHandler interface {
	HandlesEsc() bool
}

// Env carries the shared dependencies screens are built from.
type Env struct {
	Catalog kanji.Catalog

	// Events is nil when history is disabled.
	Events store.EventRepo

	// Mnemonics may be nil. Without an LLM provider it only serves
	// cached mnemonics.
	Mnemonics *mnemonic.Service

	// Seed fixes question generation when non-nil.
	Seed *uint64
}
