package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hochfrequenz/fristenkalender/core/notify"
	"github.com/hochfrequenz/fristenkalender/infra/mqtt"
)

var (
	notifyDryRun bool
	notifyDate   string
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Publish reminders for upcoming Fristen via MQTT",
	RunE:  runNotify,
}

func init() {
	notifyCmd.Flags().BoolVar(&notifyDryRun, "dry-run", false, "print reminders instead of publishing")
	notifyCmd.Flags().StringVar(&notifyDate, "date", "", "reference date YYYY-MM-DD (default today)")
	rootCmd.AddCommand(notifyCmd)
}

// stdoutPublisher prints reminders as JSON lines.
type stdoutPublisher struct{ w io.Writer }

func (p stdoutPublisher) PublishReminder(_ context.Context, r notify.Reminder) error {
	return json.NewEncoder(p.w).Encode(r)
}

func runNotify(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, svc, err := loadService()
	if err != nil {
		return err
	}
	defer svc.Close()

	now := time.Now()
	if notifyDate != "" {
		if now, err = time.Parse("2006-01-02", notifyDate); err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	var pub notify.Publisher = stdoutPublisher{w: cmd.OutOrStdout()}
	if !notifyDryRun {
		if cfg.MQTT.Broker == "" {
			return fmt.Errorf("mqtt.broker is not configured; use --dry-run to print reminders")
		}
		pp, err := mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("mqtt publisher: %w", err)
		}
		defer pp.Disconnect()
		pub = pp
	}
	n, err := svc.Notifier(pub)
	if err != nil {
		return err
	}
	_, err = n.Run(ctx, now)
	return err
}
