package main

import (
	"fmt"

	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/media"
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/seed"
	"github.com/azigroup/website/internal/services"
	"github.com/spf13/cobra"
)

var seedFile string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := models.AutoMigrate(database.DB); err != nil {
			return err
		}
		fmt.Println("Schema is up to date.")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load site content from a YAML fixtures file",
	Long: `Applies a fixtures file through the admin services, so every record is
validated. Companies and news are matched by slug: running the same file
twice updates rows instead of duplicating them.

Without --file the built-in fixtures (the group's subsidiaries) are used.

Example:
  sitectl seed --file fixtures.yaml`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	fixtures, err := seed.Load(seedFile)
	if err != nil {
		return err
	}
	if err := models.AutoMigrate(database.DB); err != nil {
		return err
	}

	storage := media.NewStorage(cfg.MediaRoot, cfg.MediaURL)
	seeder := seed.NewSeeder(database.DB,
		services.NewAdminService(database.DB, storage),
		services.NewSettingsService(database.DB),
		log)

	res, err := seeder.Apply(fixtures)
	if err != nil {
		return err
	}
	fmt.Printf("Seeded: %d created, %d updated.\n", res.Created, res.Updated)
	return nil
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixtures file (YAML)")
	rootCmd.AddCommand(migrateCmd, seedCmd)
}
