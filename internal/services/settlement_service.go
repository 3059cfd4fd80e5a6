package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"lifeos-finance/internal/config"
	"lifeos-finance/internal/models"
	"lifeos-finance/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// settlementService implements SettlementServiceInterface
type settlementService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	cardRepo        repositories.CardRepositoryInterface
	cfg             config.SettlementConfig
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	cardRepo repositories.CardRepositoryInterface,
	cfg config.SettlementConfig,
	metrics MetricsRecorderInterface,
) SettlementServiceInterface {
	return &settlementService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		cardRepo:        cardRepo,
		cfg:             cfg,
		metrics:         metrics,
		logger:          slog.Default().With("service", "settlement"),
	}
}

func (s *settlementService) yearBounds() YearBounds {
	return YearBounds{Min: s.cfg.MinYear, Max: s.cfg.MaxYear}
}

func (s *settlementService) trendEpsilon() decimal.Decimal {
	return decimal.NewFromFloat(s.cfg.TrendEpsilon)
}

// sourceNameIndex resolves account and card ids to display names. Unknown ids
// fall back to a truncated id so a summary never fails over a renamed source.
type sourceNameIndex struct {
	accounts map[uuid.UUID]string
	cards    map[uuid.UUID]string
}

func (idx *sourceNameIndex) AccountName(id uuid.UUID) string {
	if name, ok := idx.accounts[id]; ok {
		return name
	}
	return fmt.Sprintf("Account %s", id.String()[:8])
}

func (idx *sourceNameIndex) CardName(id uuid.UUID) string {
	if name, ok := idx.cards[id]; ok {
		return name
	}
	return fmt.Sprintf("Card %s", id.String()[:8])
}

func (s *settlementService) loadSourceNames() (*sourceNameIndex, error) {
	accounts, err := s.accountRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for summary: %w", err)
	}
	cards, err := s.cardRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load cards for summary: %w", err)
	}

	idx := &sourceNameIndex{
		accounts: make(map[uuid.UUID]string, len(accounts)),
		cards:    make(map[uuid.UUID]string, len(cards)),
	}
	for _, account := range accounts {
		idx.accounts[account.ID] = account.Name
	}
	for _, card := range cards {
		idx.cards[card.ID] = card.Name
	}
	return idx, nil
}

// buildMonth aggregates one month and returns the summary together with the
// effective transactions it was computed from
func (s *settlementService) buildMonth(year, month int) (*models.MonthlySummary, []models.Transaction, error) {
	start, end, err := MonthlyRange(year, month, s.yearBounds())
	if err != nil {
		return nil, nil, err
	}

	direct, err := s.transactionRepo.GetSharedByDateRange(start, end)
	if err != nil {
		return nil, nil, err
	}
	planned, err := s.transactionRepo.GetSharedWithInstallmentsDue(start, end)
	if err != nil {
		return nil, nil, err
	}

	names, err := s.loadSourceNames()
	if err != nil {
		return nil, nil, err
	}

	effective := effectivePeriodTransactions(direct, planned, start, end)
	summary := aggregatePeriod(year, month, MonthLabel(year, month), start, end, effective, names)

	return &summary, effective, nil
}

// GetMonthlySummary aggregates the shared transactions of one month
func (s *settlementService) GetMonthlySummary(year, month int) (*models.MonthlySummary, error) {
	startTime := time.Now()

	summary, _, err := s.buildMonth(year, month)
	if err != nil {
		s.recordReport("monthly_summary", "error", startTime)
		return nil, err
	}

	s.logger.Info("monthly summary generated",
		"period", summary.PeriodLabel,
		"transactions", summary.TransactionCount,
		"net_balance", summary.NetSharedBalance.String())
	s.recordReport("monthly_summary", "success", startTime)

	return summary, nil
}

// GetCurrentMonthSummary aggregates the running month
func (s *settlementService) GetCurrentMonthSummary() (*models.MonthlySummary, error) {
	now := time.Now().UTC()
	return s.GetMonthlySummary(now.Year(), int(now.Month()))
}

// GetComprehensiveReport combines a monthly summary with the previous period
// comparison, top expenses and generated insights
func (s *settlementService) GetComprehensiveReport(year, month int) (*models.ComprehensiveReport, error) {
	startTime := time.Now()

	summary, effective, err := s.buildMonth(year, month)
	if err != nil {
		s.recordReport("comprehensive_report", "error", startTime)
		return nil, err
	}

	prevYear, prevMonth := PreviousMonth(year, month)
	previousTotal := decimal.Zero
	if s.yearBounds().Contains(prevYear) {
		previous, _, err := s.buildMonth(prevYear, prevMonth)
		if err != nil {
			s.recordReport("comprehensive_report", "error", startTime)
			return nil, err
		}
		previousTotal = previous.TotalDebits
	}

	comparison := comparePeriods(MonthLabel(prevYear, prevMonth), previousTotal, summary.TotalDebits, s.trendEpsilon())

	report := &models.ComprehensiveReport{
		Summary:            *summary,
		PreviousComparison: comparison,
		TopExpenses:        topExpenses(effective, s.cfg.TopExpenses),
		WeeklyDistribution: weeklyDistribution(effective),
		Insights:           s.buildInsights(summary, comparison),
		GeneratedAt:        time.Now().UTC(),
	}

	s.logger.Info("comprehensive report generated",
		"period", summary.PeriodLabel,
		"trend", comparison.Trend,
		"top_expenses", len(report.TopExpenses))
	s.recordReport("comprehensive_report", "success", startTime)

	return report, nil
}

// GetAnnualSummary rolls twelve monthly aggregations into a year view
func (s *settlementService) GetAnnualSummary(year int) (*models.AnnualSummary, error) {
	startTime := time.Now()

	if _, _, err := AnnualRange(year, s.yearBounds()); err != nil {
		s.recordReport("annual_summary", "error", startTime)
		return nil, err
	}

	annual := &models.AnnualSummary{
		Year:             year,
		TotalDebits:      decimal.Zero,
		TotalCredits:     decimal.Zero,
		MonthlySummaries: make([]models.MonthlySummary, 0, 12),
		GeneratedAt:      time.Now().UTC(),
	}

	for month := 1; month <= 12; month++ {
		summary, _, err := s.buildMonth(year, month)
		if err != nil {
			s.recordReport("annual_summary", "error", startTime)
			return nil, err
		}

		annual.MonthlySummaries = append(annual.MonthlySummaries, *summary)
		annual.TransactionCount += summary.TransactionCount
		annual.TotalDebits = annual.TotalDebits.Add(summary.TotalDebits)
		annual.TotalCredits = annual.TotalCredits.Add(summary.TotalCredits)

		// Months with no shared activity never qualify as extremes
		if summary.TransactionCount == 0 {
			continue
		}
		ref := models.MonthReference{
			Month:       month,
			PeriodLabel: summary.PeriodLabel,
			TotalDebits: summary.TotalDebits,
		}
		if annual.HighestSpendMonth == nil || ref.TotalDebits.GreaterThan(annual.HighestSpendMonth.TotalDebits) {
			highest := ref
			annual.HighestSpendMonth = &highest
		}
		if annual.LowestSpendMonth == nil || ref.TotalDebits.LessThan(annual.LowestSpendMonth.TotalDebits) {
			lowest := ref
			annual.LowestSpendMonth = &lowest
		}
	}

	annual.NetSharedBalance = annual.TotalDebits.Sub(annual.TotalCredits)
	annual.IndividualShare = annual.NetSharedBalance.Div(two).RoundBank(2)
	annual.AverageMonthlyTotal = annual.TotalDebits.Div(decimal.NewFromInt(12)).RoundBank(2)

	s.logger.Info("annual summary generated",
		"year", year,
		"transactions", annual.TransactionCount,
		"total_debits", annual.TotalDebits.String())
	s.recordReport("annual_summary", "success", startTime)

	return annual, nil
}

// GetSettlement derives the 50/50 settlement for a month
func (s *settlementService) GetSettlement(year, month int) (*models.Settlement, error) {
	startTime := time.Now()

	summary, _, err := s.buildMonth(year, month)
	if err != nil {
		s.recordReport("settlement", "error", startTime)
		return nil, err
	}

	settlement := &models.Settlement{
		PeriodLabel:        summary.PeriodLabel,
		TotalSharedAmount:  summary.NetSharedBalance,
		SplitMethod:        models.SplitMethodEvenSplit,
		AmountOwedByPartyA: summary.IndividualShare,
		AmountOwedByPartyB: summary.IndividualShare,
		ByCategory:         summary.ByCategory,
		Notes: fmt.Sprintf("Each party owes %s for period %s under the %s split.",
			summary.IndividualShare.StringFixed(2), summary.PeriodLabel, models.SplitMethodEvenSplit),
		GeneratedAt: time.Now().UTC(),
	}

	amount, _ := settlement.AmountOwedByPartyA.Float64()
	s.metrics.RecordGauge("settlement_amount", amount, map[string]string{"period": summary.PeriodLabel})

	s.logger.Info("settlement generated",
		"period", summary.PeriodLabel,
		"amount_per_party", summary.IndividualShare.String())
	s.recordReport("settlement", "success", startTime)

	return settlement, nil
}

// topExpenses returns the n largest shared debits of the period, sorted by
// amount descending
func topExpenses(transactions []models.Transaction, n int) []models.TopExpense {
	debits := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.IsDebit() {
			debits = append(debits, txn)
		}
	}

	sort.SliceStable(debits, func(i, j int) bool {
		return debits[i].Amount.GreaterThan(debits[j].Amount)
	})
	if n > 0 && len(debits) > n {
		debits = debits[:n]
	}

	expenses := make([]models.TopExpense, 0, len(debits))
	for _, txn := range debits {
		expenses = append(expenses, models.TopExpense{
			ID:              txn.ID,
			Description:     txn.Description,
			Amount:          txn.Amount.RoundBank(2),
			IndividualShare: txn.Amount.Div(two).RoundBank(2),
			OccurredOn:      txn.OccurredOn,
			Category:        models.BucketForCategory(txn.Category),
		})
	}
	return expenses
}

// buildInsights produces the human-readable observation lines of a
// comprehensive report
func (s *settlementService) buildInsights(summary *models.MonthlySummary, comparison models.PeriodComparison) []string {
	insights := make([]string, 0, 5)

	if summary.TransactionCount == 0 {
		insights = append(insights, fmt.Sprintf("No shared expenses recorded for %s.", summary.PeriodLabel))
		return insights
	}

	if bucket, total, ok := dominantCategory(summary.ByCategory); ok && summary.TotalDebits.IsPositive() {
		percentage := total.Div(summary.TotalDebits).Mul(oneHundred).RoundBank(1)
		insights = append(insights, fmt.Sprintf("%s accounts for %s%% of shared spending (%s).",
			bucket, percentage.String(), total.StringFixed(2)))
	}

	insights = append(insights, fmt.Sprintf("Each party owes %s for this period.",
		summary.IndividualShare.StringFixed(2)))

	average := summary.NetSharedBalance.Div(decimal.NewFromInt(int64(summary.TransactionCount))).RoundBank(2)
	insights = append(insights, fmt.Sprintf("Average shared expense: %s across %d transactions.",
		average.StringFixed(2), summary.TransactionCount))

	if s.cfg.MonthlyBudget > 0 {
		budget := decimal.NewFromFloat(s.cfg.MonthlyBudget)
		usage := summary.TotalDebits.Div(budget).Mul(oneHundred).RoundBank(1)
		insights = append(insights, fmt.Sprintf("Shared spending used %s%% of the %s monthly budget.",
			usage.String(), budget.StringFixed(2)))
	}

	if comparison.PercentChange != nil {
		change := *comparison.PercentChange
		switch {
		case change.GreaterThan(decimal.NewFromInt(10)):
			insights = append(insights, fmt.Sprintf("Spending rose %s%% compared to %s.",
				change.String(), comparison.PreviousLabel))
		case change.LessThan(decimal.NewFromInt(-10)):
			insights = append(insights, fmt.Sprintf("Spending dropped %s%% compared to %s.",
				change.Abs().String(), comparison.PreviousLabel))
		default:
			insights = append(insights, fmt.Sprintf("Spending is in line with %s (%s%% change).",
				comparison.PreviousLabel, change.String()))
		}
	}

	return insights
}

// dominantCategory finds the bucket with the highest total
func dominantCategory(byCategory map[string]models.CategoryTotal) (string, decimal.Decimal, bool) {
	var (
		bestBucket string
		bestTotal  decimal.Decimal
		found      bool
	)
	for bucket, group := range byCategory {
		if !found || group.Total.GreaterThan(bestTotal) ||
			(group.Total.Equal(bestTotal) && bucket < bestBucket) {
			bestBucket = bucket
			bestTotal = group.Total
			found = true
		}
	}
	return bestBucket, bestTotal, found
}

func (s *settlementService) recordReport(reportType, status string, startTime time.Time) {
	s.metrics.IncrementCounter("reports_generated", map[string]string{
		"report_type": reportType,
		"status":      status,
	})
	s.metrics.RecordProcessingTime("report_generation", time.Since(startTime))
}
