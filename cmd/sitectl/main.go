package main

import (
	"fmt"
	"os"

	"github.com/azigroup/website/internal/config"
	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Operator commands for the AZI GROUP website",
	Long: `sitectl runs maintenance tasks against the website database:
schema migration, content seeding, staff accounts, settings and backups.

It reads the same environment (and .env file) as the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		log = logger.New(cfg.LogLevel, cfg.LogPath)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		if err := database.Connect(cfg, log); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		database.Close()
		if log != nil {
			_ = log.Sync()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
