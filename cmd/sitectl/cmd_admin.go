package main

import (
	"fmt"

	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
	adminEmail    string
	adminFullName string
	adminForce    bool
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a staff account for the admin API",
	Long: `Creates a staff account. With --force-change the user must change the
password at first login.

Example:
  sitectl create-admin --username awa --password 's3cret!' --email awa@azigroup.ml`,
	RunE: runCreateAdmin,
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	if adminUsername == "" || adminPassword == "" {
		return fmt.Errorf("--username and --password are required")
	}
	if err := models.AutoMigrate(database.DB); err != nil {
		return err
	}
	user, err := services.NewUserService(database.DB).Create(services.NewUser{
		Username:            adminUsername,
		Password:            adminPassword,
		Email:               adminEmail,
		FullName:            adminFullName,
		ForcePasswordChange: adminForce,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created staff account %q (id %d).\n", user.Username, user.ID)
	return nil
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "login name")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "initial password")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "e-mail address")
	createAdminCmd.Flags().StringVar(&adminFullName, "full-name", "", "display name")
	createAdminCmd.Flags().BoolVar(&adminForce, "force-change", false, "require a password change at first login")
	rootCmd.AddCommand(createAdminCmd)
}
