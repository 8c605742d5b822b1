package quiz

import (
	"fmt"
	"slices"
	"strings"
)

// Mode selects the shape of generated questions.
type Mode string

const (
	ModeKanjiToMeaning Mode = "kanji-to-meaning"
	ModeKanjiToOnyomi  Mode = "kanji-to-onyomi"
	ModeMeaningToKanji Mode = "meaning-to-kanji"
	ModeOnyomiToKanji  Mode = "onyomi-to-kanji"
	ModeKunyomiToKanji Mode = "kunyomi-to-kanji"

	// ModeMixed asks three questions per kanji, each in a randomly
	// chosen concrete mode.
	ModeMixed Mode = "mixed"
)

// concreteModes is the draw order for mixed mode. Changing it changes which
// mode a given random index maps to.
var concreteModes = []Mode{
	ModeKanjiToMeaning,
	ModeKanjiToOnyomi,
	ModeMeaningToKanji,
	ModeOnyomiToKanji,
	ModeKunyomiToKanji,
}

// ConcreteModes returns the five single-shape modes.
func ConcreteModes() []Mode {
	return slices.Clone(concreteModes)
}

// AllModes returns every mode in menu order, mixed last.
func AllModes() []Mode {
	return append(ConcreteModes(), ModeMixed)
}

// ParseMode converts a mode name to a Mode. Names are matched
// case-insensitively and underscores are accepted for dashes.
func ParseMode(s string) (Mode, error) {
	norm := Mode(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	for _, m := range AllModes() {
		if m == norm {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// IsConcrete reports whether m is one of the five single-shape modes.
func (m Mode) IsConcrete() bool {
	return slices.Contains(concreteModes, m)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeMixed || m.IsConcrete()
}

func (m Mode) String() string { return string(m) }

// Title returns the short label used in menus.
func (m Mode) Title() string {
	switch m {
	case ModeKanjiToMeaning:
		return "Kanji → Meaning"
	case ModeKanjiToOnyomi:
		return "Kanji → Onyomi"
	case ModeMeaningToKanji:
		return "Meaning → Kanji"
	case ModeOnyomiToKanji:
		return "Onyomi → Kanji"
	case ModeKunyomiToKanji:
		return "Kunyomi → Kanji"
	case ModeMixed:
		return "Mixed Quiz"
	default:
		return "Quiz"
	}
}

// Description returns a one-line explanation of the mode.
func (m Mode) Description() string {
	switch m {
	case ModeKanjiToMeaning:
		return "See the kanji and pick its meaning"
	case ModeKanjiToOnyomi:
		return "See the kanji and pick its onyomi reading"
	case ModeMeaningToKanji:
		return "See the meaning and pick the right kanji"
	case ModeOnyomiToKanji:
		return "See the onyomi reading and pick the right kanji"
	case ModeKunyomiToKanji:
		return "See the kunyomi reading and pick the right kanji"
	case ModeMixed:
		return "Random questions of every type for a full challenge"
	default:
		return "Test your knowledge"
	}
}

// PromptLabel is the question line shown above the prompt.
func (m Mode) PromptLabel() string {
	switch m {
	case ModeKanjiToMeaning:
		return "What does this kanji mean?"
	case ModeKanjiToOnyomi:
		return "What is the onyomi reading?"
	case ModeMeaningToKanji:
		return "Which kanji has this meaning?"
	case ModeOnyomiToKanji:
		return "Which kanji reads like this (onyomi)?"
	case ModeKunyomiToKanji:
		return "Which kanji reads like this (kunyomi)?"
	default:
		return ""
	}
}

// ShowsKanji reports whether the prompt of m is a kanji character.
func (m Mode) ShowsKanji() bool {
	prompt, _ := m.fields()
	return prompt == FieldCharacter
}
