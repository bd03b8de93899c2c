package cmd

import (
	"fmt"
	"recipe-box/database"
	"recipe-box/models"
	"recipe-box/services"
	"strings"

	"github.com/spf13/cobra"
)

var (
	seedEmail string
	seedName  string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample recipes for a demo user",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(seedEmail)
		if email == "" {
			return fmt.Errorf("--email is required")
		}

		return withDB(true, func(db *database.DB) error {
			owner := &models.User{
				ID:       "seed:" + email,
				GoogleID: "seed:" + email,
				Email:    email,
				Name:     seedName,
			}

			inserted, err := services.NewSeeder(database.NewRepository(db)).Seed(owner)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d sample recipes for %s\n", inserted, email)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedEmail, "email", "", "Email of the demo owner")
	seedCmd.Flags().StringVar(&seedName, "name", "Demo Cook", "Display name of the demo owner")
}
