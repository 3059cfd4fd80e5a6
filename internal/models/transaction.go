package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionKindDebit  = "debit"
	TransactionKindCredit = "credit"

	MaxInstallmentCount = 60
)

var (
	ErrInvalidTransactionKind  = errors.New("invalid transaction kind")
	ErrInvalidAmount           = errors.New("transaction amount must be positive")
	ErrDescriptionRequired     = errors.New("transaction description is required")
	ErrInvalidCategory         = errors.New("invalid transaction category")
	ErrAmbiguousSource         = errors.New("transaction must reference exactly one of account or card")
	ErrInvalidInstallmentCount = errors.New("installment count must be between 1 and 60")
	ErrInstallmentsNeedCard    = errors.New("installment plans are only supported for card debits")
)

// Transaction is a single expense or refund. Amount is always positive; Kind
// carries the direction. A transaction is funded by exactly one account or
// one card, and Shared marks it as part of the two-party settlement pool.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Kind        string          `gorm:"type:varchar(10);not null" json:"kind"`
	OccurredOn  time.Time       `gorm:"not null;index" json:"occurred_on"`
	Category    string          `gorm:"type:varchar(30)" json:"category,omitempty"`
	AccountID   *uuid.UUID      `gorm:"type:uuid;index" json:"account_id,omitempty"`
	CardID      *uuid.UUID      `gorm:"type:uuid;index" json:"card_id,omitempty"`
	Shared      bool            `gorm:"not null;default:false;index" json:"shared"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Installments []Installment `gorm:"foreignKey:TransactionID" json:"installments,omitempty"`
}

// Installment is one slice of a card purchase paid over several months.
// DueDate determines which calendar month the slice bills into.
type Installment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	Number        int             `gorm:"not null" json:"number"`
	Count         int             `gorm:"not null" json:"count"`
	DueDate       time.Time       `gorm:"not null;index" json:"due_date"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// BeforeCreate hook for Installment
func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrDescriptionRequired
	}
	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if t.Category != "" && !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	hasAccount := t.AccountID != nil && *t.AccountID != uuid.Nil
	hasCard := t.CardID != nil && *t.CardID != uuid.Nil
	if hasAccount == hasCard {
		return ErrAmbiguousSource
	}

	if len(t.Installments) > 0 {
		if !hasCard || t.Kind != TransactionKindDebit {
			return ErrInstallmentsNeedCard
		}
		if len(t.Installments) > MaxInstallmentCount {
			return ErrInvalidInstallmentCount
		}
	}

	return nil
}

// IsDebit returns true for debit transactions
func (t *Transaction) IsDebit() bool {
	return t.Kind == TransactionKindDebit
}

// IsCredit returns true for credit transactions
func (t *Transaction) IsCredit() bool {
	return t.Kind == TransactionKindCredit
}

// HasInstallmentPlan returns true when the transaction is split into installments
func (t *Transaction) HasInstallmentPlan() bool {
	return len(t.Installments) > 0
}

// NetContribution returns the transaction's contribution to an owed pool:
// debits add, credits offset.
func (t *Transaction) NetContribution() decimal.Decimal {
	if t.IsCredit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// TableName returns the table name for Installment
func (i *Installment) TableName() string {
	return "installments"
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindDebit, TransactionKindCredit:
		return true
	default:
		return false
	}
}

// BuildInstallmentPlan splits a total into count monthly slices starting at
// firstDue. Slices are equal to the cent; the last one absorbs whatever
// rounding left over so the plan sums back to the exact total.
func BuildInstallmentPlan(total decimal.Decimal, count int, firstDue time.Time) ([]Installment, error) {
	if count < 1 || count > MaxInstallmentCount {
		return nil, ErrInvalidInstallmentCount
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	slice := total.Div(decimal.NewFromInt(int64(count))).RoundBank(2)
	last := total.Sub(slice.Mul(decimal.NewFromInt(int64(count - 1))))

	plan := make([]Installment, 0, count)
	for i := 0; i < count; i++ {
		amount := slice
		if i == count-1 {
			amount = last
		}
		plan = append(plan, Installment{
			Number:  i + 1,
			Count:   count,
			DueDate: addMonthsClamped(firstDue, i),
			Amount:  amount,
		})
	}

	return plan, nil
}

// addMonthsClamped advances by whole months, clamping the day-of-month so a
// Jan 31 start lands on Feb 28/29 instead of spilling into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}
