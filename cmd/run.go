package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/kanjiz/internal/app"
	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/screen"
)

// appStart optionally opens a quiz as soon as the TUI starts.
type appStart struct {
	lessons []string
	mode    quiz.Mode
	seed    *uint64
}

// runApp opens the store, builds dependencies, and launches the TUI. A
// store that cannot be opened only disables history.
func runApp(cmd *cobra.Command, start appStart) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	env := screen.Env{Catalog: catalog, Seed: start.seed}

	st, err := openStore(cmd)
	if err != nil {
		warn("%v; history is off for this run", err)
		st = nil
	} else {
		defer st.Close()
		env.Events = st.EventRepo()
	}
	env.Mnemonics = newMnemonicService(cmd.Context(), st)

	return app.Run(app.Options{
		Env:          env,
		StartLessons: start.lessons,
		StartMode:    start.mode,
	})
}
