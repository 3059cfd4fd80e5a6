package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trend classifies the period-over-period change in shared spending
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// SplitMethodEvenSplit is the only split policy currently supported
const SplitMethodEvenSplit = "50/50"

// CategoryTotal aggregates the shared transactions of one category bucket
type CategoryTotal struct {
	TransactionCount int             `json:"transaction_count"`
	Total            decimal.Decimal `json:"total"`
	IndividualShare  decimal.Decimal `json:"individual_share"`
}

// SourceTotal aggregates the shared transactions funded by one account or card
type SourceTotal struct {
	TransactionCount int             `json:"transaction_count"`
	Total            decimal.Decimal `json:"total"`
}

// WeekTotal aggregates the shared debits of one calendar week, keyed by the
// Monday that opens it
type WeekTotal struct {
	TransactionCount int             `json:"transaction_count"`
	Total            decimal.Decimal `json:"total"`
	IndividualShare  decimal.Decimal `json:"individual_share"`
}

// SourceBreakdown splits shared spending by funding instrument, keyed by the
// source's display name
type SourceBreakdown struct {
	Accounts map[string]SourceTotal `json:"accounts"`
	Cards    map[string]SourceTotal `json:"cards"`
}

// MonthlySummary is the aggregate view of one period's shared transactions
type MonthlySummary struct {
	PeriodLabel      string    `json:"period_label"`
	Year             int       `json:"year"`
	Month            int       `json:"month,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TransactionCount int       `json:"transaction_count"`

	TotalDebits      decimal.Decimal `json:"total_debits"`
	TotalCredits     decimal.Decimal `json:"total_credits"`
	NetSharedBalance decimal.Decimal `json:"net_shared_balance"`
	IndividualShare  decimal.Decimal `json:"individual_share"`

	AmountOwedByPartyA decimal.Decimal `json:"amount_owed_by_party_a"`
	AmountOwedByPartyB decimal.Decimal `json:"amount_owed_by_party_b"`

	ByCategory map[string]CategoryTotal `json:"breakdown_by_category"`
	BySource   SourceBreakdown          `json:"breakdown_by_source"`

	GeneratedAt time.Time `json:"generated_at"`
}

// PeriodComparison relates a period's shared spending to the preceding one.
// PercentChange is nil when the previous total is zero.
type PeriodComparison struct {
	PreviousLabel string           `json:"previous_label"`
	PreviousTotal decimal.Decimal  `json:"previous_total"`
	CurrentTotal  decimal.Decimal  `json:"current_total"`
	Difference    decimal.Decimal  `json:"difference"`
	PercentChange *decimal.Decimal `json:"percent_change"`
	Trend         string           `json:"trend"`
}

// TopExpense is one of the largest shared debits of a period
type TopExpense struct {
	ID              uuid.UUID       `json:"id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	IndividualShare decimal.Decimal `json:"individual_share"`
	OccurredOn      time.Time       `json:"occurred_on"`
	Category        string          `json:"category"`
}

// ComprehensiveReport wraps a monthly summary with comparison, top expenses
// and generated insight lines
type ComprehensiveReport struct {
	Summary            MonthlySummary       `json:"summary"`
	PreviousComparison PeriodComparison     `json:"previous_period_comparison"`
	TopExpenses        []TopExpense         `json:"top_expenses"`
	WeeklyDistribution map[string]WeekTotal `json:"weekly_distribution"`
	Insights           []string             `json:"insights"`
	GeneratedAt        time.Time            `json:"generated_at"`
}

// MonthReference points at a single month inside an annual summary
type MonthReference struct {
	Month       int             `json:"month"`
	PeriodLabel string          `json:"period_label"`
	TotalDebits decimal.Decimal `json:"total_debits"`
}

// AnnualSummary rolls twelve monthly summaries into a year view. The
// highest/lowest month references only consider months with at least one
// shared transaction and are nil when no month qualifies.
type AnnualSummary struct {
	Year             int             `json:"year"`
	TransactionCount int             `json:"transaction_count"`
	TotalDebits      decimal.Decimal `json:"total_debits"`
	TotalCredits     decimal.Decimal `json:"total_credits"`
	NetSharedBalance decimal.Decimal `json:"net_shared_balance"`
	IndividualShare  decimal.Decimal `json:"individual_share"`

	MonthlySummaries    []MonthlySummary `json:"monthly_summaries"`
	HighestSpendMonth   *MonthReference  `json:"month_with_highest_spend"`
	LowestSpendMonth    *MonthReference  `json:"month_with_lowest_spend"`
	AverageMonthlyTotal decimal.Decimal  `json:"average_monthly_total"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Settlement is the final computed amount each party owes for a period
type Settlement struct {
	PeriodLabel        string                   `json:"period_label"`
	TotalSharedAmount  decimal.Decimal          `json:"total_shared_amount"`
	SplitMethod        string                   `json:"split_method"`
	AmountOwedByPartyA decimal.Decimal          `json:"amount_owed_by_party_a"`
	AmountOwedByPartyB decimal.Decimal          `json:"amount_owed_by_party_b"`
	ByCategory         map[string]CategoryTotal `json:"per_category_breakdown"`
	Notes              string                   `json:"notes"`
	GeneratedAt        time.Time                `json:"generated_at"`
}

// BulkShareResult reports the outcome of marking several transactions shared
type BulkShareResult struct {
	Requested int      `json:"requested"`
	Updated   int      `json:"updated"`
	Errors    []string `json:"errors,omitempty"`
}

// Succeeded returns true when every requested transaction was updated
func (r *BulkShareResult) Succeeded() bool {
	return len(r.Errors) == 0 && r.Updated == r.Requested
}
