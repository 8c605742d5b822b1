package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/llm"
	"github.com/abhisek/kanjiz/internal/mnemonic"
	"github.com/abhisek/kanjiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kanjiz",
	Short: "Terminal kanji trainer",
	Long: `kanjiz is a terminal kanji trainer: browse lessons, look up kanji and take
multiple-choice quizzes scored on accuracy and speed.

History is kept in a local SQLite database (KANJIZ_DB) or in Postgres
(--db-driver postgres). Set one of ANTHROPIC_API_KEY, OPENAI_API_KEY,
GEMINI_API_KEY or OPENROUTER_API_KEY (or KANJIZ_LLM_PROVIDER with
KANJIZ_<PROVIDER>_API_KEY) to get AI memory hooks for missed kanji.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, appStart{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite file or Postgres URL (overrides KANJIZ_DB env var)")
	rootCmd.PersistentFlags().String("db-driver", "", "Database driver: sqlite or postgres (overrides KANJIZ_DB_DRIVER env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Directory of lesson JSON files (overrides KANJIZ_CATALOG env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mnemonicCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagOrEnv returns the named flag if set, else the environment variable.
func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}

// openStore opens the history database using --db-driver and --db (highest
// priority), then KANJIZ_DB_DRIVER and KANJIZ_DB, then the default SQLite
// path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	driver, err := store.ParseDriver(flagOrEnv(cmd, "db-driver", "KANJIZ_DB_DRIVER"))
	if err != nil {
		return nil, err
	}

	dsn, _ := cmd.Flags().GetString("db")
	switch {
	case dsn != "" && driver == store.DriverSQLite:
		if err := store.EnsureDir(dsn); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	case dsn == "" && driver == store.DriverPostgres:
		if dsn = os.Getenv("KANJIZ_DB"); dsn == "" {
			return nil, fmt.Errorf("postgres needs a connection URL in --db or KANJIZ_DB")
		}
	case dsn == "":
		if dsn, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	s, err := store.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadCatalog returns the lessons from --catalog or KANJIZ_CATALOG, or the
// built-in lessons.
func loadCatalog(cmd *cobra.Command) (kanji.Catalog, error) {
	if dir := flagOrEnv(cmd, "catalog", "KANJIZ_CATALOG"); dir != "" {
		cat, err := kanji.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", dir, err)
		}
		return cat, nil
	}
	return kanji.Default()
}

// newMnemonicService builds the mnemonic service. Without an LLM provider
// the service only serves cached mnemonics; st may be nil.
func newMnemonicService(ctx context.Context, st *store.Store) *mnemonic.Service {
	var (
		events store.EventRepo
		cache  store.MnemonicRepo
	)
	if st != nil {
		events, cache = st.EventRepo(), st.MnemonicRepo()
	}

	var provider llm.Provider
	if cfg, ok := llm.Resolve(); ok {
		p, err := llm.NewProvider(ctx, cfg, events)
		if err != nil {
			warn("LLM provider not configured: %v", err)
		} else {
			provider = p
		}
	}
	return mnemonic.NewService(provider, cache, mnemonic.DefaultConfig())
}

// warn prints a non-fatal problem to stderr.
func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
