package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"chequebook/internal/backup"
	"chequebook/internal/storage"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [snapshot-file]",
	Short: "Restore a snapshot file into the database",
	Long: `Replace the data of every record kind present in the snapshot: the
kind's existing rows are deleted and the snapshot's rows inserted, all
inside one transaction. Kinds absent from the snapshot are untouched.

A payload that is not a snapshot is rejected before anything is
deleted.`,
	Example: `  chequectl import backup.json`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var snap backup.Snapshot
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&snap); err != nil {
			return fmt.Errorf("not a valid snapshot: %w", err)
		}

		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := storage.Migrate(db); err != nil {
			return err
		}

		result, err := backup.NewService(db).Import(cmd.Context(), snap)
		if err != nil {
			return err
		}

		kinds := make([]string, 0, len(result.Restored))
		for kind := range result.Restored {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Printf("%-12s %d\n", kind, result.Restored[kind])
		}
		fmt.Printf("restored %d records across %d kinds\n", result.Total, len(kinds))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
