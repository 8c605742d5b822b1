package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanjiz/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a quiz right away",
	Example: `  kanjiz quiz --lessons 1,2
  kanjiz quiz --lessons 3 --mode kanji-to-onyomi --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lessons, _ := cmd.Flags().GetStringSlice("lessons")
		if len(lessons) == 0 {
			return fmt.Errorf("--lessons is required")
		}
		modeName, _ := cmd.Flags().GetString("mode")
		mode, err := quiz.ParseMode(modeName)
		if err != nil {
			return err
		}

		start := appStart{lessons: lessons, mode: mode}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			start.seed = &seed
		}
		return runApp(cmd, start)
	},
}

func init() {
	quizCmd.Flags().StringSliceP("lessons", "l", nil, "Lesson IDs to quiz (comma separated)")
	quizCmd.Flags().StringP("mode", "m", string(quiz.ModeMixed), "Quiz mode: mixed, kanji-to-meaning, kanji-to-onyomi, meaning-to-kanji, onyomi-to-kanji, kunyomi-to-kanji")
	quizCmd.Flags().Uint64("seed", 0, "Seed for reproducible question order")
}
