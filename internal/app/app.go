package app

import (
	"os"
	"strconv"

	"chequebook/internal/shared/connection"
	"chequebook/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config carries the handful of knobs the app reads from the environment.
type Config struct {
	DBDriver      string // "sqlite" (default) or "postgres"
	DBPath        string // sqlite file path
	ChequeNoFloor int
}

func ConfigFromEnv() Config {
	cfg := Config{
		DBDriver:      os.Getenv("DB_DRIVER"),
		DBPath:        os.Getenv("DB_PATH"),
		ChequeNoFloor: 0,
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "chequebook.db"
	}
	if v := os.Getenv("CHEQUE_NO_FLOOR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ChequeNoFloor = n
		}
	}
	return cfg
}

// Connect opens the configured database.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.DBDriver == "postgres" {
		return connection.ConnectPostgresWithRetry(
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
			5,
		)
	}
	return connection.OpenSQLite(cfg.DBPath)
}

// BuildApp opens the database, brings the schema up to date and registers
// every module's routes on the router.
func BuildApp(router *gin.Engine) (*gorm.DB, error) {
	cfg := ConfigFromEnv()

	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	zap.L().Info("database connection established", zap.String("driver", cfg.DBDriver))

	if err := storage.Migrate(db); err != nil {
		return nil, err
	}

	registerModules(router, db, cfg)
	return db, nil
}
