package kanji

import "slices"

// Difficulty is the difficulty tier of a kanji or lesson.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// JLPTLevel is the proficiency-level tag, N5 (easiest) through N1.
type JLPTLevel string

const (
	JLPTN5 JLPTLevel = "N5"
	JLPTN4 JLPTLevel = "N4"
	JLPTN3 JLPTLevel = "N3"
	JLPTN2 JLPTLevel = "N2"
	JLPTN1 JLPTLevel = "N1"
)

// Readings holds the ordered phonetic readings of a kanji.
// The first entry of each list is the primary reading.
type Readings struct {
	Onyomi  []string `json:"onyomi"`
	Kunyomi []string `json:"kunyomi"`
}

// Kanji is a single catalog entry. Identity is ID; two records with the
// same Character but different IDs are different entries.
//
// Kanji values handed out by a Catalog must be treated as read-only.
type Kanji struct {
	ID          string     `json:"id"`
	Character   string     `json:"character"`
	Meaning     string     `json:"meaning"`
	Readings    Readings   `json:"readings"`
	StrokeCount int        `json:"stroke_count"`
	Difficulty  Difficulty `json:"difficulty"`
	JLPTLevel   JLPTLevel  `json:"jlpt_level"`

	// Examples are compound words using this kanji, e.g. "日本".
	Examples []string `json:"examples,omitempty"`

	Radicals  []string `json:"radicals,omitempty"`
	Frequency int      `json:"frequency,omitempty"`
	Grade     int      `json:"grade,omitempty"`
}

// PrimaryOnyomi returns the first onyomi reading, or "" if there is none.
func (k Kanji) PrimaryOnyomi() string {
	if len(k.Readings.Onyomi) == 0 {
		return ""
	}
	return k.Readings.Onyomi[0]
}

// PrimaryKunyomi returns the first kunyomi reading, or "" if there is none.
func (k Kanji) PrimaryKunyomi() string {
	if len(k.Readings.Kunyomi) == 0 {
		return ""
	}
	return k.Readings.Kunyomi[0]
}

// clone returns a deep copy so catalog internals never leak to callers.
func (k Kanji) clone() Kanji {
	k.Readings.Onyomi = slices.Clone(k.Readings.Onyomi)
	k.Readings.Kunyomi = slices.Clone(k.Readings.Kunyomi)
	k.Examples = slices.Clone(k.Examples)
	k.Radicals = slices.Clone(k.Radicals)
	return k
}

// Example is an example sentence for a kanji.
type Example struct {
	Japanese   string     `json:"japanese"`
	Romaji     string     `json:"romaji"`
	English    string     `json:"english"`
	Difficulty Difficulty `json:"difficulty"`
}

// LessonInfo is the lesson metadata shown in lesson lists.
type LessonInfo struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Difficulty       Difficulty `json:"difficulty"`
	JLPTLevel        JLPTLevel  `json:"jlpt_level"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	KanjiCount       int        `json:"kanji_count"`
}

// Lesson is a lesson with its kanji and example sentences.
// Kanji IDs inside a Lesson are lesson-local; use Catalog.LessonKanji to get
// globally unique composite IDs.
type Lesson struct {
	LessonInfo
	Kanji    []Kanji              `json:"kanji"`
	Examples map[string][]Example `json:"examples,omitempty"`
}
