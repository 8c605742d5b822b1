package kanji

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// IDSeparator joins a lesson ID and a lesson-local kanji ID into a
// composite kanji ID, e.g. "2:7".
const IDSeparator = ":"

// ErrDuplicateLesson is returned when two lessons share an ID.
var ErrDuplicateLesson = errors.New("duplicate lesson id")

// Catalog is the read-only source of lessons and kanji.
type Catalog interface {
	// Lessons returns lesson metadata ordered by lesson ID.
	Lessons() []LessonInfo

	// Lesson returns the lesson with the given ID.
	Lesson(id string) (Lesson, bool)

	// LessonKanji returns the kanji of a lesson with composite IDs.
	// An unknown lesson yields an empty slice.
	LessonKanji(lessonID string) []Kanji

	// KanjiByID looks up a kanji by composite ID, falling back to a
	// lesson-local ID search across all lessons.
	KanjiByID(id string) (Kanji, bool)

	// Examples returns the example sentences for a character.
	Examples(character string) []Example

	// Search returns kanji whose character, meaning, or any reading
	// matches the query (case-insensitive).
	Search(query string) []Kanji
}

// CompositeID builds the catalog-wide ID for a lesson-local kanji ID.
func CompositeID(lessonID, kanjiID string) string {
	return lessonID + IDSeparator + kanjiID
}

// SplitID splits a composite ID. ok is false for plain IDs.
func SplitID(id string) (lessonID, kanjiID string, ok bool) {
	return strings.Cut(id, IDSeparator)
}

// MemoryCatalog is an immutable in-memory Catalog.
type MemoryCatalog struct {
	lessons []Lesson
	byID    map[string]int
}

var _ Catalog = (*MemoryCatalog)(nil)

// NewCatalog builds a catalog from the given lessons.
func NewCatalog(lessons ...Lesson) (*MemoryCatalog, error) {
	c := &MemoryCatalog{byID: make(map[string]int, len(lessons))}
	sorted := slices.Clone(lessons)
	slices.SortStableFunc(sorted, func(a, b Lesson) int {
		return compareLessonIDs(a.ID, b.ID)
	})

	for _, l := range sorted {
		if _, dup := c.byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLesson, l.ID)
		}
		l.KanjiCount = len(l.Kanji)
		c.byID[l.ID] = len(c.lessons)
		c.lessons = append(c.lessons, l)
	}
	return c, nil
}

func (c *MemoryCatalog) Lessons() []LessonInfo {
	out := make([]LessonInfo, len(c.lessons))
	for i, l := range c.lessons {
		out[i] = l.LessonInfo
	}
	return out
}

func (c *MemoryCatalog) Lesson(id string) (Lesson, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	l := c.lessons[idx]
	l.Kanji = c.LessonKanji(id)
	return l, true
}

func (c *MemoryCatalog) LessonKanji(lessonID string) []Kanji {
	idx, ok := c.byID[lessonID]
	if !ok {
		return []Kanji{}
	}
	src := c.lessons[idx].Kanji
	out := make([]Kanji, len(src))
	for i, k := range src {
		k = k.clone()
		k.ID = CompositeID(lessonID, k.ID)
		out[i] = k
	}
	return out
}

func (c *MemoryCatalog) KanjiByID(id string) (Kanji, bool) {
	if lessonID, inner, ok := SplitID(id); ok {
		if idx, found := c.byID[lessonID]; found {
			for _, k := range c.lessons[idx].Kanji {
				if k.ID == inner {
					k = k.clone()
					k.ID = id
					return k, true
				}
			}
		}
		return Kanji{}, false
	}

	for _, l := range c.lessons {
		for _, k := range l.Kanji {
			if k.ID == id {
				k = k.clone()
				k.ID = CompositeID(l.ID, k.ID)
				return k, true
			}
		}
	}
	return Kanji{}, false
}

func (c *MemoryCatalog) Examples(character string) []Example {
	for _, l := range c.lessons {
		if ex := l.Examples[character]; len(ex) > 0 {
			return slices.Clone(ex)
		}
	}
	return nil
}

func (c *MemoryCatalog) Search(query string) []Kanji {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Kanji
	for _, l := range c.lessons {
		for _, k := range l.Kanji {
			if !matches(k, q) {
				continue
			}
			k = k.clone()
			k.ID = CompositeID(l.ID, k.ID)
			out = append(out, k)
		}
	}
	return out
}

func matches(k Kanji, q string) bool {
	if k.Character == q || strings.Contains(strings.ToLower(k.Meaning), q) {
		return true
	}
	for _, r := range k.Readings.Onyomi {
		if strings.ToLower(r) == q {
			return true
		}
	}
	for _, r := range k.Readings.Kunyomi {
		// Kunyomi carry okurigana markers ("ひと.つ", "-び"); match the bare stem too.
		if r == q || strings.Trim(strings.SplitN(r, ".", 2)[0], "-") == q {
			return true
		}
	}
	return false
}

// compareLessonIDs orders numeric IDs numerically and everything else
// lexically, with numeric IDs first.
func compareLessonIDs(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na - nb
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
