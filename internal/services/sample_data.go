package services

import (
	"log/slog"
	"time"

	"lifeos-finance/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// expenseProfile shapes the generated transactions of one category
type expenseProfile struct {
	category string
	minPrice float64
	maxPrice float64
	weight   float64
}

var expenseProfiles = []expenseProfile{
	{models.CategoryFood, 15, 350, 6},
	{models.CategoryTransport, 8, 120, 4},
	{models.CategoryHousing, 400, 2500, 1},
	{models.CategoryHealth, 30, 600, 2},
	{models.CategoryLeisure, 20, 400, 3},
	{models.CategoryShopping, 25, 800, 3},
	{models.CategoryEducation, 50, 900, 1},
}

// sampleDataGenerator produces realistic transaction data for development
// environments
type sampleDataGenerator struct {
	faker  *gofakeit.Faker
	logger *slog.Logger
}

// NewSampleDataGenerator creates a generator with a fixed seed so repeated
// runs seed the same data set
func NewSampleDataGenerator(seed uint64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		faker:  gofakeit.New(seed),
		logger: slog.Default().With("service", "sample_data"),
	}
}

// GenerateTransactions fabricates count transactions spread over
// [startDate, endDate), mixing account and card spending with the occasional
// credit and installment purchase
func (g *sampleDataGenerator) GenerateTransactions(accountID, cardID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		profile := g.pickProfile()
		amount := decimal.NewFromFloat(g.faker.Price(profile.minPrice, profile.maxPrice)).RoundBank(2)
		occurred := g.faker.DateRange(startDate, endDate.Add(-time.Second)).UTC()

		transaction := &models.Transaction{
			Description: g.faker.ProductName(),
			Amount:      amount,
			Kind:        models.TransactionKindDebit,
			OccurredOn:  occurred,
			Category:    profile.category,
			Shared:      g.faker.Float64Range(0, 1) < 0.7,
		}

		// Roughly 1 in 12 entries is a refund
		if g.faker.IntRange(1, 12) == 1 {
			transaction.Kind = models.TransactionKindCredit
			transaction.Description = "Refund: " + transaction.Description
		}

		if g.faker.Bool() {
			id := accountID
			transaction.AccountID = &id
		} else {
			id := cardID
			transaction.CardID = &id

			// Occasional installment purchase on the card
			if transaction.Kind == models.TransactionKindDebit && g.faker.IntRange(1, 10) == 1 {
				installments := g.faker.IntRange(2, 12)
				plan, err := models.BuildInstallmentPlan(amount, installments, occurred)
				if err == nil {
					transaction.Installments = plan
				}
			}
		}

		transactions = append(transactions, transaction)
	}

	g.logger.Info("sample transactions generated", "count", len(transactions))
	return transactions
}

func (g *sampleDataGenerator) pickProfile() expenseProfile {
	totalWeight := 0.0
	for _, profile := range expenseProfiles {
		totalWeight += profile.weight
	}

	pick := g.faker.Float64Range(0, totalWeight)
	for _, profile := range expenseProfiles {
		if pick < profile.weight {
			return profile
		}
		pick -= profile.weight
	}
	return expenseProfiles[0]
}
