package repositories

import (
	"time"

	"lifeos-finance/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	List() ([]models.Account, error)
	ListShared() ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
}

// CardRepositoryInterface defines the contract for card repository operations
type CardRepositoryInterface interface {
	Create(card *models.Card) error
	GetByID(id uuid.UUID) (*models.Card, error)
	List() ([]models.Card, error)
	ListShared() ([]models.Card, error)
	Update(card *models.Card) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetRecent(limit int) ([]models.Transaction, error)

	// GetSharedByDateRange retrieves shared transactions whose purchase date
	// falls inside [startDate, endDate)
	GetSharedByDateRange(startDate, endDate time.Time) ([]models.Transaction, error)

	// GetSharedWithInstallmentsDue retrieves shared transactions carrying an
	// installment plan with at least one installment due inside
	// [startDate, endDate), with the full plan preloaded
	GetSharedWithInstallmentsDue(startDate, endDate time.Time) ([]models.Transaction, error)

	UpdateShared(id uuid.UUID, shared bool) error
	Delete(id uuid.UUID) error
}
