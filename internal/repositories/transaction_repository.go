package repositories

import (
	"errors"
	"fmt"
	"time"

	"lifeos-finance/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction together with its installment plan
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID, installments included
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Installments").First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetRecent retrieves the most recently recorded transactions
func (r *transactionRepository) GetRecent(limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Installments").
		Order("occurred_on DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// GetSharedByDateRange retrieves shared transactions within a half-open date range
func (r *transactionRepository) GetSharedByDateRange(startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Installments").
		Where("shared = ? AND occurred_on >= ? AND occurred_on < ?", true, startDate, endDate).
		Order("occurred_on ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get shared transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetSharedWithInstallmentsDue retrieves shared transactions that have at
// least one installment due within the half-open date range
func (r *transactionRepository) GetSharedWithInstallmentsDue(startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Installments").
		Joins("JOIN installments ON installments.transaction_id = transactions.id").
		Where("transactions.shared = ? AND installments.due_date >= ? AND installments.due_date < ?", true, startDate, endDate).
		Distinct("transactions.*").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions with installments due: %w", err)
	}
	return transactions, nil
}

// UpdateShared flips the shared flag of a transaction. Hooks are skipped:
// BeforeUpdate validates the full model, which a partial map update never
// carries, so updated_at is set explicitly instead.
func (r *transactionRepository) UpdateShared(id uuid.UUID, shared bool) error {
	result := r.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"shared":     shared,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update shared flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction and its installment plan
func (r *transactionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&models.Installment{}).Error; err != nil {
			return fmt.Errorf("failed to delete installments: %w", err)
		}

		result := tx.Delete(&models.Transaction{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete transaction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTransactionNotFound
		}
		return nil
	})
}
