package services

import (
	"time"

	"lifeos-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementServiceInterface exposes the shared-expense report entry points
type SettlementServiceInterface interface {
	// GetMonthlySummary aggregates the shared transactions of one month
	GetMonthlySummary(year, month int) (*models.MonthlySummary, error)

	// GetCurrentMonthSummary aggregates the running month
	GetCurrentMonthSummary() (*models.MonthlySummary, error)

	// GetComprehensiveReport combines a monthly summary with the previous
	// period comparison, top expenses and generated insights
	GetComprehensiveReport(year, month int) (*models.ComprehensiveReport, error)

	// GetAnnualSummary rolls twelve monthly aggregations into a year view
	GetAnnualSummary(year int) (*models.AnnualSummary, error)

	// GetSettlement derives the 50/50 settlement for a month
	GetSettlement(year, month int) (*models.Settlement, error)
}

// CreateTransactionInput carries the fields needed to record a transaction
type CreateTransactionInput struct {
	Description      string
	Amount           decimal.Decimal
	Kind             string
	OccurredOn       time.Time
	Category         string
	AccountID        *uuid.UUID
	CardID           *uuid.UUID
	Shared           bool
	InstallmentCount int
}

// TransactionServiceInterface defines transaction management operations
type TransactionServiceInterface interface {
	CreateTransaction(input CreateTransactionInput) (*models.Transaction, error)
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	GetRecentTransactions(limit int) ([]models.Transaction, error)
	MarkShared(id uuid.UUID) error
	UnmarkShared(id uuid.UUID) error
	BulkMarkShared(ids []uuid.UUID) *models.BulkShareResult
	DeleteTransaction(id uuid.UUID) error
}

// SampleDataGeneratorInterface generates realistic transaction data for
// development environments
type SampleDataGeneratorInterface interface {
	GenerateTransactions(accountID, cardID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction
}

// MetricsRecorderInterface abstracts the metrics backend
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
