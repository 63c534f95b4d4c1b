package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/nearbuy/marketplace/internal/api"
	v1 "github.com/nearbuy/marketplace/internal/api/v1"
	"github.com/nearbuy/marketplace/internal/config"
	"github.com/nearbuy/marketplace/internal/middleware"
	"github.com/nearbuy/marketplace/internal/repository"
	"github.com/nearbuy/marketplace/internal/seed"
	"github.com/nearbuy/marketplace/internal/service"
	"github.com/nearbuy/marketplace/pkg/summarizer"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewFiberApp,
			NewReporter,

			repository.NewUserRepository,
			repository.NewProductRepository,
			repository.NewTransactionRepository,

			service.NewCatalogService,
			service.NewTransactionService,
			service.NewChatService,
			service.NewTransactionWorkflowService,
			service.NewSummaryService,

			v1.NewHandler,
		),
		fx.Invoke(loadSeedData, startServer),
	).Run()
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

// NewReporter builds the Gemini-backed summary reporter. The API key is an
// ambient credential; a missing key surfaces on the first summary call.
func NewReporter(cfg *config.Config) service.Reporter {
	return summarizer.NewGemini(summarizer.Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  cfg.Summary.Model,
	})
}

func loadSeedData(users repository.UserRepository, products repository.ProductRepository,
	transactions repository.TransactionRepository, logger *zap.Logger) error {

	for _, user := range seed.Users() {
		if err := users.Create(user); err != nil {
			return err
		}
	}

	for _, product := range seed.Products() {
		product := product
		if err := products.Create(&product); err != nil {
			return err
		}
	}

	for _, txn := range seed.Transactions() {
		txn := txn
		if err := transactions.Create(&txn); err != nil {
			return err
		}
	}

	logger.Info("Seed data loaded",
		zap.Int("users", len(seed.Users())),
		zap.Int("products", len(seed.Products())),
		zap.Int("transactions", len(seed.Transactions())))

	return nil
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger,
	lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting API server", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
