package repositories

import (
	"errors"
	"fmt"

	"lifeos-finance/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// List retrieves all active accounts
func (r *accountRepository) List() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("active = ?", true).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ListShared retrieves active accounts flagged as shared with the partner
func (r *accountRepository) ListShared() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("active = ? AND shared_with_partner = ?", true, true).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list shared accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	result := r.db.Model(&models.Account{}).
		Where("id = ?", account.ID).
		Updates(account)

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Delete marks an account inactive
func (r *accountRepository) Delete(id uuid.UUID) error {
	result := r.db.Model(&models.Account{}).
		Where("id = ?", id).
		Update("active", false)

	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
