package mnemonic

import (
	"fmt"
	"strings"

	"github.com/abhisek/kanjiz/internal/kanji"
)

const systemPrompt = `You write memory hooks for learners of Japanese kanji. Each hook is a short, concrete story that connects the visual parts of one kanji to its meaning. Keep it family friendly, avoid romaji-only puns, and never invent readings that were not given.`

func userMessage(k kanji.Kanji) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Kanji: %s\n", k.Character)
	fmt.Fprintf(&b, "Meaning: %s\n", k.Meaning)
	if on := k.Readings.Onyomi; len(on) > 0 {
		fmt.Fprintf(&b, "On'yomi: %s\n", strings.Join(on, ", "))
	}
	if kun := k.Readings.Kunyomi; len(kun) > 0 {
		fmt.Fprintf(&b, "Kun'yomi: %s\n", strings.Join(kun, ", "))
	}
	if k.StrokeCount > 0 {
		fmt.Fprintf(&b, "Strokes: %d\n", k.StrokeCount)
	}
	if len(k.Radicals) > 0 {
		fmt.Fprintf(&b, "Parts: %s\n", strings.Join(k.Radicals, " "))
	}
	if len(k.Examples) > 0 {
		fmt.Fprintf(&b, "Used in: %s\n", strings.Join(k.Examples, "、"))
	}
	b.WriteString("\nThe learner just answered a quiz question about this kanji incorrectly. Write one memory hook.")
	return b.String()
}
