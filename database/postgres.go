package database

import (
	"productservice/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and migrates the products table.
// The returned handle is passed down to the repository instead of being
// kept as a package global.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return nil, err
	}

	zap.S().Info("Connected to Postgres")
	return db, nil
}
