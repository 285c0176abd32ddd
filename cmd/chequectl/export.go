package main

import (
	"encoding/json"
	"fmt"
	"os"

	"chequebook/internal/backup"
	"chequebook/internal/storage"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full dataset to a snapshot file",
	Long: `Read every record of every kind and write them as one JSON snapshot.
The snapshot can be restored with "chequectl import" or through the
HTTP backup endpoint.`,
	Example: `  # Export to stdout
  chequectl export

  # Export to a file
  chequectl export -o backup.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := storage.Migrate(db); err != nil {
			return err
		}

		snap, err := backup.NewService(db).Export(cmd.Context())
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("snapshot written to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the snapshot to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
