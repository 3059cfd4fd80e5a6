package database

import (
	"testing"
	"time"

	"lifeos-finance/internal/config"
	"lifeos-finance/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, name string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:              name,
		Bank:              "Test Bank",
		AccountType:       models.AccountTypeChecking,
		Balance:           decimal.NewFromFloat(1000.00),
		SharedWithPartner: true,
		Active:            true,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCard(t *testing.T, db *DB, name string) *models.Card {
	t.Helper()

	card := &models.Card{
		Name:              name,
		Brand:             models.CardBrandVisa,
		CreditLimit:       decimal.NewFromFloat(5000.00),
		AvailableLimit:    decimal.NewFromFloat(5000.00),
		ClosingDay:        25,
		DueDay:            5,
		SharedWithPartner: true,
		Active:            true,
	}

	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}

	return card
}
