package database

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresDSNFromEnv resolves the catalog database DSN. DB_DSN wins; the
// DB_* variables fill a key/value DSN otherwise.
func PostgresDSNFromEnv() string {
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getenvDefault("DB_HOST", "localhost"),
		getenvDefault("DB_USER", "postgres"),
		getenvDefault("DB_PASSWORD", "postgres"),
		getenvDefault("DB_NAME", "wardrobe"),
		getenvDefault("DB_PORT", "5432"),
		getenvDefault("DB_SSLMODE", "disable"),
	)
}

// ConnectPostgres opens the gorm connection used by the catalog and rule
// repositories.
func ConnectPostgres() (*gorm.DB, error) {
	level := logger.Warn
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = logger.Info
	}
	return gorm.Open(postgres.Open(PostgresDSNFromEnv()), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
