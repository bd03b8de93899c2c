package cmd

import (
	"fmt"
	"recipe-box/config"
	"recipe-box/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and default tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(true, func(db *database.DB) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", config.AppConfig.DBPath)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
