package main

import (
	"fmt"
	"time"

	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	notifySince  time.Duration
	notifyDryRun bool
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "E-mail the staff a digest of new contact messages",
	Long: `Sends one e-mail to the notification_email setting listing the contact
messages still marked new that arrived within --since. Nothing is sent when
there are none. SMTP is configured through the smtp_* settings.

Meant to be run from cron, for example daily:
  0 8 * * * sitectl notify --since 24h`,
	RunE: runNotify,
}

func runNotify(cmd *cobra.Command, args []string) error {
	settings := services.NewSettingsService(database.DB)
	digest := services.NewContactDigest(services.NewContactService(database.DB), settings)

	res, err := digest.Run(time.Now().Add(-notifySince), notifyDryRun)
	if err != nil {
		return err
	}
	log.Info("Contact digest",
		zap.String("to", res.Recipient),
		zap.Int("count", res.Count),
		zap.Bool("sent", res.Sent))
	fmt.Printf("%d new message(s), sent: %t\n", res.Count, res.Sent)
	return nil
}

func init() {
	notifyCmd.Flags().DurationVar(&notifySince, "since", 24*time.Hour, "look-back window")
	notifyCmd.Flags().BoolVar(&notifyDryRun, "dry-run", false, "count messages without sending")
	rootCmd.AddCommand(notifyCmd)
}
