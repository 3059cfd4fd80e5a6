package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CardBrandVisa       = "visa"
	CardBrandMastercard = "mastercard"
	CardBrandElo        = "elo"
	CardBrandAmex       = "amex"
)

var (
	ErrInvalidCardBrand  = errors.New("invalid card brand")
	ErrCardNameEmpty     = errors.New("card name is required")
	ErrInvalidClosingDay = errors.New("closing day must be between 1 and 31")
	ErrInvalidDueDay     = errors.New("due day must be between 1 and 31")
)

// Card is a credit card used as a transaction funding source. ClosingDay
// drives the invoice window a card purchase bills into.
type Card struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name              string          `gorm:"type:varchar(100);not null" json:"name"`
	Brand             string          `gorm:"type:varchar(20);not null" json:"brand"`
	CreditLimit       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"credit_limit"`
	AvailableLimit    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"available_limit"`
	ClosingDay        int             `gorm:"not null" json:"closing_day"`
	DueDay            int             `gorm:"not null" json:"due_day"`
	SharedWithPartner bool            `gorm:"not null;default:false;index" json:"shared_with_partner"`
	Active            bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Card
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// BeforeUpdate hook for Card
func (c *Card) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the card fields
func (c *Card) Validate() error {
	if c.Name == "" {
		return ErrCardNameEmpty
	}
	if !IsValidCardBrand(c.Brand) {
		return ErrInvalidCardBrand
	}
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return ErrInvalidClosingDay
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		return ErrInvalidDueDay
	}
	return nil
}

// UsedLimit returns the consumed portion of the credit limit
func (c *Card) UsedLimit() decimal.Decimal {
	return c.CreditLimit.Sub(c.AvailableLimit)
}

// TableName returns the table name for Card
func (c *Card) TableName() string {
	return "cards"
}

// IsValidCardBrand checks if the card brand is valid
func IsValidCardBrand(brand string) bool {
	switch brand {
	case CardBrandVisa, CardBrandMastercard, CardBrandElo, CardBrandAmex:
		return true
	default:
		return false
	}
}
