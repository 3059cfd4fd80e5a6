package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrAccountNameEmpty   = errors.New("account name is required")
)

// Account is a checking or savings account used as a transaction funding source
type Account struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name              string          `gorm:"type:varchar(100);not null" json:"name"`
	Bank              string          `gorm:"type:varchar(100)" json:"bank,omitempty"`
	AccountType       string          `gorm:"type:varchar(20);not null" json:"account_type"`
	Balance           decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"balance"`
	SharedWithPartner bool            `gorm:"not null;default:false;index" json:"shared_with_partner"`
	Active            bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.Name == "" {
		return ErrAccountNameEmpty
	}
	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	default:
		return false
	}
}
