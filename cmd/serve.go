package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Fristenkalender HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		_, svc, err := loadService()
		if err != nil {
			return err
		}
		defer svc.Close()
		return svc.Serve(ctx, nil)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
