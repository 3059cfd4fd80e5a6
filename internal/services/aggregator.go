package services

import (
	"fmt"
	"time"

	"lifeos-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// SourceNames resolves funding-instrument ids to display names for the
// source breakdown
type SourceNames interface {
	AccountName(id uuid.UUID) string
	CardName(id uuid.UUID) string
}

// effectivePeriodTransactions selects the shared spending that bills into
// [start, end). Transactions without an installment plan contribute their full
// amount when they occurred inside the window. Transactions with a plan
// contribute one synthetic entry per installment due inside the window, so a
// purchase split over six months shows up in six monthly summaries.
func effectivePeriodTransactions(direct, planned []models.Transaction, start, end time.Time) []models.Transaction {
	effective := make([]models.Transaction, 0, len(direct)+len(planned))

	for i := range direct {
		txn := &direct[i]
		if !txn.Shared || txn.HasInstallmentPlan() {
			continue
		}
		if withinRange(txn.OccurredOn, start, end) {
			effective = append(effective, *txn)
		}
	}

	for i := range planned {
		txn := &planned[i]
		if !txn.Shared {
			continue
		}
		for _, inst := range txn.Installments {
			if !withinRange(inst.DueDate, start, end) {
				continue
			}
			slice := *txn
			slice.Amount = inst.Amount
			slice.OccurredOn = inst.DueDate
			slice.Description = fmt.Sprintf("%s (%d/%d)", txn.Description, inst.Number, inst.Count)
			slice.Installments = nil
			effective = append(effective, slice)
		}
	}

	return effective
}

// weeklyDistribution buckets a period's shared debits by calendar week.
// Keys are the Monday opening each week in YYYY-MM-DD form; credits are
// left out, matching the spending-focused weekly view.
func weeklyDistribution(transactions []models.Transaction) map[string]models.WeekTotal {
	weeks := make(map[string]models.WeekTotal)

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsDebit() {
			continue
		}

		day := txn.OccurredOn.UTC()
		// Weekday() is Sunday-based, shift so Monday opens the week
		offset := (int(day.Weekday()) + 6) % 7
		monday := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, -offset)
		key := monday.Format("2006-01-02")

		week := weeks[key]
		week.TransactionCount++
		week.Total = week.Total.Add(txn.Amount)
		weeks[key] = week
	}

	for key, week := range weeks {
		week.Total = week.Total.RoundBank(2)
		week.IndividualShare = week.Total.Div(two).RoundBank(2)
		weeks[key] = week
	}

	return weeks
}

// aggregatePeriod computes a period's summary from its effective shared
// transactions. All arithmetic is exact decimal; half-even rounding to two
// places happens once, here, when the displayable fields are materialized.
func aggregatePeriod(year, month int, label string, start, end time.Time, transactions []models.Transaction, names SourceNames) models.MonthlySummary {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	byCategory := make(map[string]models.CategoryTotal)
	byAccount := make(map[string]models.SourceTotal)
	byCard := make(map[string]models.SourceTotal)

	for i := range transactions {
		txn := &transactions[i]

		if txn.IsDebit() {
			totalDebits = totalDebits.Add(txn.Amount)
		} else {
			totalCredits = totalCredits.Add(txn.Amount)
		}

		bucket := models.BucketForCategory(txn.Category)
		group := byCategory[bucket]
		group.TransactionCount++
		group.Total = group.Total.Add(txn.NetContribution())
		byCategory[bucket] = group

		switch {
		case txn.AccountID != nil:
			name := names.AccountName(*txn.AccountID)
			entry := byAccount[name]
			entry.TransactionCount++
			entry.Total = entry.Total.Add(txn.NetContribution())
			byAccount[name] = entry
		case txn.CardID != nil:
			name := names.CardName(*txn.CardID)
			entry := byCard[name]
			entry.TransactionCount++
			entry.Total = entry.Total.Add(txn.NetContribution())
			byCard[name] = entry
		}
	}

	for bucket, group := range byCategory {
		group.Total = group.Total.RoundBank(2)
		group.IndividualShare = group.Total.Div(two).RoundBank(2)
		byCategory[bucket] = group
	}
	for name, entry := range byAccount {
		entry.Total = entry.Total.RoundBank(2)
		byAccount[name] = entry
	}
	for name, entry := range byCard {
		entry.Total = entry.Total.RoundBank(2)
		byCard[name] = entry
	}

	net := totalDebits.Sub(totalCredits)
	individualShare := net.Div(two).RoundBank(2)

	return models.MonthlySummary{
		PeriodLabel:      label,
		Year:             year,
		Month:            month,
		StartDate:        start,
		EndDate:          end,
		TransactionCount: len(transactions),

		TotalDebits:      totalDebits.RoundBank(2),
		TotalCredits:     totalCredits.RoundBank(2),
		NetSharedBalance: net.RoundBank(2),
		IndividualShare:  individualShare,

		AmountOwedByPartyA: individualShare,
		AmountOwedByPartyB: individualShare,

		ByCategory: byCategory,
		BySource: models.SourceBreakdown{
			Accounts: byAccount,
			Cards:    byCard,
		},

		GeneratedAt: time.Now().UTC(),
	}
}
