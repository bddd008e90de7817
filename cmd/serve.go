package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/api"
)

var addrFlag string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web dashboard and JSON API",
	Long: `Serve the dashboard page and the entry endpoints over HTTP until
interrupted. Requests are logged as JSON at the configured log_level.

Example:
  worklog serve --addr 127.0.0.1:8080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}

		addr := addrFlag
		if addr == "" {
			addr = d.Config.ListenAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		defer func() { _ = appLog.Sync() }()

		// Execute closes the store once RunE returns
		if err := api.Run(ctx, addr, api.NewServer(d.Services, appLog)); err != nil {
			return fmt.Errorf("%w\nHint: Check that %s is free or pass --addr", err, addr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (default listen_addr from config)")
}
