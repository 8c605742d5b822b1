package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanjiz/internal/kanji"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons [id]",
	Short: "List lessons, or show the kanji of one lesson",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			infos := catalog.Lessons()
			if len(infos) == 0 {
				fmt.Fprintln(out, "No lessons found.")
				return nil
			}
			fmt.Fprintf(out, "%-4s  %-28s  %-12s  %-4s  %5s  %4s\n",
				"ID", "Title", "Difficulty", "JLPT", "Kanji", "Min")
			fmt.Fprintln(out, strings.Repeat("─", 66))
			for _, l := range infos {
				fmt.Fprintf(out, "%-4s  %-28s  %-12s  %-4s  %5d  %4d\n",
					l.ID, truncate(l.Title, 28), l.Difficulty, l.JLPTLevel, l.KanjiCount, l.EstimatedMinutes)
			}
			return nil
		}

		l, ok := catalog.Lesson(args[0])
		if !ok {
			return fmt.Errorf("lesson %q not found", args[0])
		}
		fmt.Fprintf(out, "Lesson %s: %s\n", l.ID, l.Title)
		if l.Description != "" {
			fmt.Fprintln(out, l.Description)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-8s  %-4s  %-20s  %-18s  %s\n", "ID", "", "Meaning", "Onyomi", "Kunyomi")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, k := range catalog.LessonKanji(l.ID) {
			fmt.Fprintf(out, "%-8s  %s  %-20s  %-18s  %s\n",
				k.ID, k.Character, truncate(k.Meaning, 20),
				readings(k.Readings.Onyomi), readings(k.Readings.Kunyomi))
		}
		return nil
	},
}

func readings(rs []string) string {
	if len(rs) == 0 {
		return "-"
	}
	return strings.Join(rs, ", ")
}

// kanjiLabel renders a catalog kanji as "日 (sun)", or the bare ID when the
// kanji is no longer in the catalog.
func kanjiLabel(catalog kanji.Catalog, id string) string {
	if k, ok := catalog.KanjiByID(id); ok {
		return fmt.Sprintf("%s (%s)", k.Character, k.Meaning)
	}
	return id
}
