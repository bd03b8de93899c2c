package cmd

import (
	"fmt"
	"os"
	"recipe-box/config"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "recipe-box",
	Short: "recipe-box serves the recipe sharing API",
	Long:  "recipe-box is a recipe sharing service: browse, search and tag recipes, and sign in with Google to publish your own.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if dbPath != "" {
			config.AppConfig.DBPath = dbPath
		}
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides DB_PATH)")
}
