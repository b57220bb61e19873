// internal/commands/serve.go
package evalgrid

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwiater/evalgrid/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd serves the rendered table over HTTP, re-reading the results on every request.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matrix over HTTP",
	Long: `Start an HTTP server that loads and aggregates the evaluation results on
every request to "/". When the results cannot be loaded the page shows an error
notice instead of the table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Config{
			Addr:    cfg.ListenAddr(),
			Input:   cfg.InputLocation(),
			Title:   cfg.Title,
			Timeout: cfg.FetchTimeout(),
			Strict:  cfg.Strict,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s/\n", cfg.InputLocation(), cfg.ListenAddr())
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address (default \"127.0.0.1:8080\")")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	rootCmd.AddCommand(serveCmd)
}
