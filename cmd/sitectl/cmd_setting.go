package main

import (
	"errors"
	"fmt"

	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/services"
	"github.com/spf13/cobra"
)

var settingDescription string

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Read or change site settings",
}

var settingGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := services.NewSettingsService(database.DB).Find(args[0])
		if errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("setting %q is not set", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Println(s.Value)
		return nil
	},
}

var settingSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Create or update a setting",
	Long: `Creates the setting or updates its value. Without --description the
stored description is kept.

Example:
  sitectl setting set contact_phone "+223 20 22 00 00"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := services.NewSettingsService(database.DB).Set(args[0], args[1], settingDescription)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", s.Key, s.Value)
		return nil
	},
}

func init() {
	settingSetCmd.Flags().StringVar(&settingDescription, "description", "", "setting description")
	settingCmd.AddCommand(settingGetCmd, settingSetCmd)
	rootCmd.AddCommand(settingCmd)
}
