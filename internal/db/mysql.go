package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"spendtrack/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the users table and both transaction tables.
// Incomes and expenses share one schema but are stored independently.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}); err != nil {
		return fmt.Errorf("auto-migrate users: %w", err)
	}
	for _, kind := range []model.TransactionKind{model.KindIncome, model.KindExpense} {
		if err := db.Table(kind.Table()).AutoMigrate(&model.Transaction{}); err != nil {
			return fmt.Errorf("auto-migrate %s: %w", kind.Table(), err)
		}
	}
	return nil
}
