package quiz

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/abhisek/kanjiz/internal/kanji"
)

// MixedPerKanji is how many questions mixed mode asks about each kanji.
const MixedPerKanji = 3

// Field names a kanji attribute used as a prompt or an answer.
type Field string

const (
	FieldCharacter Field = "character"
	FieldMeaning   Field = "meaning"
	FieldOnyomi    Field = "onyomi"
	FieldKunyomi   Field = "kunyomi"
)

// value returns the field of k a question uses. Readings use the first
// (primary) entry only.
func (f Field) value(k kanji.Kanji) string {
	switch f {
	case FieldCharacter:
		return k.Character
	case FieldMeaning:
		return k.Meaning
	case FieldOnyomi:
		return k.PrimaryOnyomi()
	case FieldKunyomi:
		return k.PrimaryKunyomi()
	}
	return ""
}

// fields returns the prompt and answer fields of a concrete mode.
func (m Mode) fields() (prompt, answer Field) {
	switch m {
	case ModeKanjiToMeaning:
		return FieldCharacter, FieldMeaning
	case ModeKanjiToOnyomi:
		return FieldCharacter, FieldOnyomi
	case ModeMeaningToKanji:
		return FieldMeaning, FieldCharacter
	case ModeOnyomiToKanji:
		return FieldOnyomi, FieldCharacter
	case ModeKunyomiToKanji:
		return FieldKunyomi, FieldCharacter
	}
	return "", ""
}

// Generator builds multiple-choice questions from a kanji pool.
// A Generator is not safe for concurrent use because its Random is not.
type Generator struct {
	rnd Random

	// SkipMalformed drops kanji that lack the field a mode needs instead
	// of failing. In mixed mode the drawn mode is re-drawn among the modes
	// the kanji supports.
	SkipMalformed bool
}

// NewGenerator returns a Generator drawing from rnd. A nil rnd uses
// DefaultRandom.
func NewGenerator(rnd Random) *Generator {
	if rnd == nil {
		rnd = DefaultRandom()
	}
	return &Generator{rnd: rnd}
}

// Generate produces the questions for pool in mode, in shuffled order.
// Concrete modes yield one question per kanji and mixed yields
// MixedPerKanji. An empty pool yields an empty list.
func (g *Generator) Generate(pool []kanji.Kanji, mode Mode) ([]Question, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	out := []Question{}
	if len(pool) == 0 {
		return out, nil
	}

	cands := collectCandidates(pool)

	for _, k := range pool {
		if mode != ModeMixed {
			q, err := g.question(k, mode, "", cands)
			if err != nil {
				if g.SkipMalformed && errors.Is(err, ErrMalformedKanji) {
					continue
				}
				return nil, err
			}
			out = append(out, q)
			continue
		}

		supported := supportedModes(k)
		if !g.SkipMalformed && len(supported) < len(concreteModes) {
			return nil, malformedFor(k, supported)
		}
		for n := 1; n <= MixedPerKanji; n++ {
			m := concreteModes[g.rnd.IntN(len(concreteModes))]
			if g.SkipMalformed && !slices.Contains(supported, m) {
				if len(supported) == 0 {
					break
				}
				m = supported[g.rnd.IntN(len(supported))]
			}
			q, err := g.question(k, m, strconv.Itoa(n), cands)
			if err != nil {
				return nil, err
			}
			out = append(out, q)
		}
	}

	g.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}

// question builds one question about k in the concrete mode m.
func (g *Generator) question(k kanji.Kanji, m Mode, ordinal string, cands candidates) (Question, error) {
	promptField, answerField := m.fields()
	prompt := promptField.value(k)
	if prompt == "" {
		return Question{}, &MalformedKanjiError{KanjiID: k.ID, Mode: m, Field: promptField}
	}
	answer := answerField.value(k)
	if answer == "" {
		return Question{}, &MalformedKanjiError{KanjiID: k.ID, Mode: m, Field: answerField}
	}

	id := "q_" + k.ID + "_" + string(m)
	if ordinal != "" {
		id += "_" + ordinal
	}

	return Question{
		ID:            id,
		Prompt:        prompt,
		CorrectAnswer: answer,
		Options:       g.options(answer, cands[answerField]),
		Mode:          m,
		KanjiID:       k.ID,
	}, nil
}

// options picks up to MaxOptions-1 distractors from values, adds the
// correct answer and shuffles the result. Values equal to correct are
// never distractors.
func (g *Generator) options(correct string, values []string) []string {
	others := make([]string, 0, len(values))
	for _, v := range values {
		if v != correct {
			others = append(others, v)
		}
	}
	g.rnd.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	if len(others) > MaxOptions-1 {
		others = others[:MaxOptions-1]
	}

	opts := make([]string, 0, len(others)+1)
	opts = append(opts, correct)
	opts = append(opts, others...)
	g.rnd.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}

// candidates maps an answer field to the distinct non-empty values the
// pool has for it, in pool order.
type candidates map[Field][]string

func collectCandidates(pool []kanji.Kanji) candidates {
	c := make(candidates, 3)
	for _, f := range []Field{FieldCharacter, FieldMeaning, FieldOnyomi} {
		seen := make(map[string]bool, len(pool))
		for _, k := range pool {
			v := f.value(k)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			c[f] = append(c[f], v)
		}
	}
	return c
}

// supportedModes lists the concrete modes k has every field for.
func supportedModes(k kanji.Kanji) []Mode {
	var out []Mode
	for _, m := range concreteModes {
		p, a := m.fields()
		if p.value(k) != "" && a.value(k) != "" {
			out = append(out, m)
		}
	}
	return out
}

// malformedFor reports the first concrete mode missing from supported and
// the field k lacks for it.
func malformedFor(k kanji.Kanji, supported []Mode) error {
	for _, m := range concreteModes {
		if slices.Contains(supported, m) {
			continue
		}
		p, a := m.fields()
		f := p
		if p.value(k) != "" {
			f = a
		}
		return &MalformedKanjiError{KanjiID: k.ID, Mode: m, Field: f}
	}
	return nil
}
