package cmd

import (
	"fmt"
	"recipe-box/database"
	"strings"

	"github.com/spf13/cobra"
)

var checkTablesCmd = &cobra.Command{
	Use:   "check-tables",
	Short: "Report whether the recipe tables exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(false, func(db *database.DB) error {
			status, err := database.NewRepository(db).CheckTables()
			if err != nil {
				return err
			}
			for _, table := range database.RequiredTables {
				mark := "ok"
				if !status.TableStatus[table] {
					mark = "missing"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", table, mark)
			}
			if len(status.MissingTables) > 0 {
				return fmt.Errorf("missing tables: %s (run migrate)", strings.Join(status.MissingTables, ", "))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(checkTablesCmd)
}
