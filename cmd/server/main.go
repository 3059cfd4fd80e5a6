package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"lifeos-finance/internal/config"
	"lifeos-finance/internal/database"
	"lifeos-finance/internal/handlers"
	"lifeos-finance/internal/middleware"
	"lifeos-finance/internal/models"
	"lifeos-finance/internal/repositories"
	"lifeos-finance/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	accountRepo := repositories.NewAccountRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	metrics := services.NewPrometheusMetrics()

	settlementService := services.NewSettlementService(transactionRepo, accountRepo, cardRepo, cfg.Settlement, metrics)
	transactionService := services.NewTransactionService(transactionRepo, accountRepo, cardRepo, metrics)

	if cfg.IsDevelopment() && os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := seedSampleData(accountRepo, cardRepo, transactionRepo); err != nil {
			log.Printf("Warning: sample data seeding failed: %v", err)
		}
	}

	reportHandler := handlers.NewReportHandler(settlementService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	reports := api.Group("/reports")
	reports.GET("/summary/current", reportHandler.GetCurrentMonthSummary)
	reports.GET("/summary/:year/:month", reportHandler.GetMonthlySummary)
	reports.GET("/comprehensive/:year/:month", reportHandler.GetComprehensiveReport)
	reports.GET("/annual/:year", reportHandler.GetAnnualSummary)
	reports.GET("/settlement/:year/:month", reportHandler.GetSettlement)

	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListRecentTransactions)
	transactions.POST("/bulk-share", transactionHandler.BulkMarkShared)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.POST("/:id/share", transactionHandler.MarkShared)
	transactions.POST("/:id/unshare", transactionHandler.UnmarkShared)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s (env: %s)", address, cfg.Server.Environment)

	if err := e.Start(address); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// seedSampleData populates an empty development database with one shared
// account, one shared card and six months of generated transactions
func seedSampleData(
	accountRepo repositories.AccountRepositoryInterface,
	cardRepo repositories.CardRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) error {
	existing, err := transactionRepo.GetRecent(1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("Sample data seeding skipped, database already has transactions")
		return nil
	}

	account := &models.Account{
		Name:              "Joint Checking",
		Bank:              "Nubank",
		AccountType:       models.AccountTypeChecking,
		Balance:           decimal.NewFromFloat(3500.00),
		SharedWithPartner: true,
		Active:            true,
	}
	if err := accountRepo.Create(account); err != nil {
		return err
	}

	card := &models.Card{
		Name:              "Household Card",
		Brand:             models.CardBrandVisa,
		CreditLimit:       decimal.NewFromFloat(8000.00),
		AvailableLimit:    decimal.NewFromFloat(8000.00),
		ClosingDay:        25,
		DueDay:            5,
		SharedWithPartner: true,
		Active:            true,
	}
	if err := cardRepo.Create(card); err != nil {
		return err
	}

	generator := services.NewSampleDataGenerator(uint64(time.Now().UnixNano()))
	end := time.Now().UTC()
	start := end.AddDate(0, -6, 0)

	generated := generator.GenerateTransactions(account.ID, card.ID, start, end, 180)
	transactions := make([]models.Transaction, 0, len(generated))
	for _, transaction := range generated {
		transactions = append(transactions, *transaction)
	}

	if err := transactionRepo.CreateBatch(transactions); err != nil {
		return err
	}

	log.Printf("Seeded %d sample transactions across account %q and card %q",
		len(transactions), account.Name, card.Name)
	return nil
}
