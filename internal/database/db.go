package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"reposteria/internal/models"
)

// Open opens the SQLite database at dbPath and migrates the catalog and
// recipe tables.
func Open(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Ingredient{},
		&models.Service{},
		&models.Recipe{},
	).Error; err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
