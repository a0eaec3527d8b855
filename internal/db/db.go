package db

import (
	"strings"

	"github.com/diewo77/go-immo/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the database selected by the DSN: postgres:// URLs (or
// lib/pq key=value lists) use the postgres driver, anything else is treated
// as a sqlite path/URI. Local development and tests run on sqlite.
func Open(dsn string) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if isPostgres(dsn) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if dsn == "" {
		dsn = "file:immo.db"
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func isPostgres(dsn string) bool {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return true
	}
	return strings.Contains(lower, "host=") && strings.Contains(lower, "dbname=")
}

// Migrate runs AutoMigrate for all local models.
// Reservations are not migrated here: they live behind the remote API.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Client{},
		&models.Immeuble{},
	)
}

// ConnectAndMigrate is the startup entry point.
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	conn, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}
