package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mytheresa/product-categories/models"
)

// DSN converts a postgres:// URL into the key=value form. Strings that
// are already in key=value form are returned unchanged.
func DSN(databaseURL string) (string, error) {
	if !strings.HasPrefix(databaseURL, "postgres://") && !strings.HasPrefix(databaseURL, "postgresql://") {
		return databaseURL, nil
	}
	dsn, err := pq.ParseURL(databaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing database url: %w", err)
	}
	return dsn, nil
}

// OpenDB connects to Postgres. Only reads are issued through the
// returned handle.
func OpenDB(databaseURL string) (*gorm.DB, error) {
	dsn, err := DSN(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// LoadFromDB reads the users, categories and products tables, each
// ordered by id.
func LoadFromDB(ctx context.Context, db *gorm.DB) (models.Dataset, error) {
	var dataset models.Dataset
	tx := db.WithContext(ctx)

	if err := tx.Order("id").Find(&dataset.Users).Error; err != nil {
		return models.Dataset{}, fmt.Errorf("loading users: %w", err)
	}
	if err := tx.Order("id").Find(&dataset.Categories).Error; err != nil {
		return models.Dataset{}, fmt.Errorf("loading categories: %w", err)
	}
	if err := tx.Order("id").Find(&dataset.Products).Error; err != nil {
		return models.Dataset{}, fmt.Errorf("loading products: %w", err)
	}

	return dataset, nil
}
