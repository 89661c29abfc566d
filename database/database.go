package database

import (
	"log"

	"gallery-app/internal/domain/catalog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the catalog database and migrates its schema. The
// returned handle is handed to the store at startup; nothing else
// holds on to it.
func InitDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&catalog.Painting{}); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	return db
}
