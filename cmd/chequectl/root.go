package main

import (
	"fmt"
	"os"

	"chequebook/internal/shared/connection"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var version = "1.0.0"

var dbPath string

var rootCmd = &cobra.Command{
	Use:     "chequectl",
	Short:   "chequectl - manage a chequebook dataset from the command line",
	Long:    `chequectl operates directly on the chequebook database file: run schema migrations, export the full dataset to a snapshot file, or restore one.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
			os.Exit(1)
		}
		zap.ReplaceGlobals(logger)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openDatabase() (*gorm.DB, error) {
	path := dbPath
	if path == "" {
		path = os.Getenv("DB_PATH")
	}
	if path == "" {
		path = "chequebook.db"
	}
	return connection.OpenSQLite(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database file (default $DB_PATH or chequebook.db)")
}
