package postgres

import (
	"marketplace/internal/adapters/out/postgres/accountrepo"
	"marketplace/internal/adapters/out/postgres/itemrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every aggregate table.
// Safe to run on startup; AutoMigrate only adds missing columns and indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
}
