package services

import (
	"fmt"
	"log/slog"

	"lifeos-finance/internal/models"
	"lifeos-finance/internal/repositories"

	"github.com/google/uuid"
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	cardRepo        repositories.CardRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	cardRepo repositories.CardRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		cardRepo:        cardRepo,
		metrics:         metrics,
		logger:          slog.Default().With("service", "transaction"),
	}
}

// CreateTransaction validates the input, resolves the funding source, builds
// the installment plan when requested and persists the transaction
func (s *transactionService) CreateTransaction(input CreateTransactionInput) (*models.Transaction, error) {
	transaction := &models.Transaction{
		Description: input.Description,
		Amount:      input.Amount,
		Kind:        input.Kind,
		OccurredOn:  input.OccurredOn.UTC(),
		Category:    input.Category,
		AccountID:   input.AccountID,
		CardID:      input.CardID,
		Shared:      input.Shared,
	}

	if input.InstallmentCount > 1 {
		if input.CardID == nil || input.Kind != models.TransactionKindDebit {
			return nil, models.ErrInstallmentsNeedCard
		}
		plan, err := models.BuildInstallmentPlan(input.Amount, input.InstallmentCount, transaction.OccurredOn)
		if err != nil {
			return nil, err
		}
		transaction.Installments = plan
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.verifySource(input.AccountID, input.CardID); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("transactions_created", map[string]string{
		"kind":   transaction.Kind,
		"shared": fmt.Sprintf("%t", transaction.Shared),
	})
	s.logger.Info("transaction created",
		"id", transaction.ID,
		"amount", transaction.Amount.String(),
		"shared", transaction.Shared,
		"installments", len(transaction.Installments))

	return transaction, nil
}

// verifySource checks that the referenced account or card exists
func (s *transactionService) verifySource(accountID, cardID *uuid.UUID) error {
	if accountID != nil {
		if _, err := s.accountRepo.GetByID(*accountID); err != nil {
			return err
		}
	}
	if cardID != nil {
		if _, err := s.cardRepo.GetByID(*cardID); err != nil {
			return err
		}
	}
	return nil
}

// GetTransaction retrieves a transaction by ID
func (s *transactionService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// GetRecentTransactions retrieves the most recently recorded transactions
func (s *transactionService) GetRecentTransactions(limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.transactionRepo.GetRecent(limit)
}

// MarkShared flags a transaction as a shared expense
func (s *transactionService) MarkShared(id uuid.UUID) error {
	if err := s.transactionRepo.UpdateShared(id, true); err != nil {
		return err
	}
	s.metrics.IncrementCounter("transactions_shared", map[string]string{"action": "mark"})
	s.logger.Info("transaction marked shared", "id", id)
	return nil
}

// UnmarkShared removes the shared flag from a transaction
func (s *transactionService) UnmarkShared(id uuid.UUID) error {
	if err := s.transactionRepo.UpdateShared(id, false); err != nil {
		return err
	}
	s.metrics.IncrementCounter("transactions_shared", map[string]string{"action": "unmark"})
	s.logger.Info("transaction unmarked shared", "id", id)
	return nil
}

// BulkMarkShared flags several transactions shared, collecting per-item
// failures instead of aborting on the first one
func (s *transactionService) BulkMarkShared(ids []uuid.UUID) *models.BulkShareResult {
	result := &models.BulkShareResult{Requested: len(ids)}

	for _, id := range ids {
		if err := s.transactionRepo.UpdateShared(id, true); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id.String()[:8], err))
			continue
		}
		result.Updated++
	}

	s.metrics.IncrementCounter("transactions_shared", map[string]string{"action": "bulk_mark"})
	s.logger.Info("bulk share completed",
		"requested", result.Requested,
		"updated", result.Updated,
		"failures", len(result.Errors))

	return result
}

// DeleteTransaction removes a transaction and its installment plan
func (s *transactionService) DeleteTransaction(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("transaction deleted", "id", id)
	return nil
}
