package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanjiz/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lesson catalog and quiz generation over HTTP",
	Example: `  kanjiz serve --addr :8080
  kanjiz serve --cors-origin http://localhost:5173`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		cfg := api.DefaultConfig()
		cfg.Addr, _ = cmd.Flags().GetString("addr")
		cfg.AllowedOrigins, _ = cmd.Flags().GetStringSlice("cors-origin")
		cfg.Quiet, _ = cmd.Flags().GetBool("quiet")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.PrintErrf("kanjiz api listening on %s\n", cfg.Addr)
		return api.Serve(ctx, catalog, cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", api.DefaultConfig().Addr, "Listen address")
	serveCmd.Flags().StringSlice("cors-origin", nil, "Allowed CORS origin (repeatable)")
	serveCmd.Flags().BoolP("quiet", "q", false, "Disable the request log")
}
