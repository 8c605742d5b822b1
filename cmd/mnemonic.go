package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanjiz/internal/mnemonic"
)

var mnemonicCmd = &cobra.Command{
	Use:   "mnemonic <kanji-id>",
	Short: "Show (or generate) the memory hook for a kanji",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		k, ok := catalog.KanjiByID(args[0])
		if !ok {
			return fmt.Errorf("kanji %q not found", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			warn("%v; mnemonics will not be cached", err)
			s = nil
		} else {
			defer s.Close()
		}

		svc := newMnemonicService(cmd.Context(), s)
		m, err := svc.Get(cmd.Context(), k)
		if errors.Is(err, mnemonic.ErrNoProvider) {
			return fmt.Errorf("no mnemonic cached for %s and no LLM provider configured", k.Character)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s\n\n", m.Character, m.Keyword)
		fmt.Fprintln(out, m.Story)
		if m.Model != "" {
			fmt.Fprintf(out, "\n(%s)\n", m.Model)
		}
		return nil
	},
}
