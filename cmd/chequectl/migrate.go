package main

import (
	"fmt"

	"chequebook/internal/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the database schema up to the latest version",
	Long: `Apply any schema versions the database has not seen yet, in order.
Already-applied versions are skipped, so the command is safe to run
repeatedly and on a fresh file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := storage.Migrate(db); err != nil {
			return err
		}
		fmt.Println("schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
