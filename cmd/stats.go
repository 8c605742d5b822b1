package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanjiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz history and the most missed kanji",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kanjiID, _ := cmd.Flags().GetString("kanji")

		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		events := s.EventRepo()

		if kanjiID != "" {
			k, ok := catalog.KanjiByID(kanjiID)
			if !ok {
				return fmt.Errorf("kanji %q not found", kanjiID)
			}
			acc, err := events.KanjiAccuracy(ctx, k.ID)
			if err != nil {
				return fmt.Errorf("query accuracy: %w", err)
			}
			fmt.Fprintf(out, "%s  %s  accuracy %.0f%%\n", k.ID, kanjiLabel(catalog, k.ID), acc*100)
			return nil
		}

		sessions, err := events.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No quizzes taken yet.")
			return nil
		}

		fmt.Fprintln(out, "Recent Quizzes")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		fmt.Fprintf(out, "%-16s  %-18s  %-10s  %7s  %5s  %5s  %s\n",
			"Date", "Mode", "Lessons", "Score", "Acc", "Avg s", "")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, ss := range sessions {
			flag := ""
			if !ss.Completed() {
				flag = "quit"
			}
			fmt.Fprintf(out, "%-16s  %-18s  %-10s  %3d/%-3d  %4d%%  %5d  %s\n",
				ss.EndedAt.Local().Format("2006-01-02 15:04"),
				ss.Mode,
				truncate(strings.Join(ss.LessonIDs, ","), 10),
				ss.Correct, ss.Answered,
				ss.Accuracy,
				ss.AvgSeconds,
				flag,
			)
		}

		missed, err := events.MostMissed(ctx, 5)
		if err != nil {
			return fmt.Errorf("query missed kanji: %w", err)
		}
		if len(missed) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Most Missed")
			fmt.Fprintln(out, strings.Repeat("─", 44))
			for _, m := range missed {
				fmt.Fprintf(out, "%-24s  %3d/%-3d  %4.0f%%\n",
					kanjiLabel(catalog, m.KanjiID), m.Correct, m.Attempts, m.Accuracy()*100)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of quizzes to show")
	statsCmd.Flags().StringP("kanji", "k", "", "Show the answer accuracy of one kanji (e.g. 1:3)")
}
