package database

import (
	"log"

	"ratewave/internal/config"
	"ratewave/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the datastore. A Postgres DSN in DATABASE_URL wins; otherwise
// the app falls back to a local SQLite file, which is how the original
// deployment ran.
func Connect(cfg *config.Config) {
	var err error

	if cfg.DatabaseURL != "" {
		DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		DB, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	log.Println("Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Rating{},
		&models.ProfileComment{},
		// Catalog tables from the original schema; seeded but not yet routed.
		&models.Artist{},
		&models.Album{},
		&models.Song{},
		&models.Playlist{},
		&models.Follow{},
		&models.Like{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Database migration completed")
}
