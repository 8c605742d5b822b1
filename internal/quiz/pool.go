package quiz

import "github.com/abhisek/kanjiz/internal/kanji"

// ResolvePool merges the kanji of the given lessons into one pool.
// Duplicates by kanji ID keep their first occurrence; unknown lessons
// contribute nothing. The result is ordered by lesson, then by position
// within the lesson.
func ResolvePool(catalog kanji.Catalog, lessonIDs ...string) []kanji.Kanji {
	seen := make(map[string]bool)
	var pool []kanji.Kanji
	for _, id := range lessonIDs {
		for _, k := range catalog.LessonKanji(id) {
			if seen[k.ID] {
				continue
			}
			seen[k.ID] = true
			pool = append(pool, k)
		}
	}
	return pool
}
