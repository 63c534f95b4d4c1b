package service

import (
	"context"

	"github.com/nearbuy/marketplace/internal/constants"
	"github.com/nearbuy/marketplace/internal/model"
	"github.com/nearbuy/marketplace/internal/repository"
	"go.uber.org/zap"
)

// Reporter turns the full marketplace data set into a natural-language
// summary. The returned text is opaque to the rest of the system.
type Reporter interface {
	Summarize(ctx context.Context, transactions []model.Transaction, products []model.Product) (string, error)
}

type SummaryService interface {
	GenerateAdminSummary(ctx context.Context) (string, error)
}

type summary struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	reporter     Reporter
	logger       *zap.Logger
}

func NewSummaryService(transactions repository.TransactionRepository,
	products repository.ProductRepository, reporter Reporter, logger *zap.Logger) SummaryService {
	return &summary{transactions: transactions, products: products, reporter: reporter, logger: logger}
}

// GenerateAdminSummary makes a single blocking reporter call with no retry.
// Failures are surfaced to the admin view, never swallowed.
func (s *summary) GenerateAdminSummary(ctx context.Context) (string, error) {
	transactions := s.transactions.All()
	products := s.products.All()

	text, err := s.reporter.Summarize(ctx, transactions, products)
	if err != nil {
		s.logger.Error("Summary generation failed",
			zap.Int("transactions", len(transactions)),
			zap.Int("products", len(products)),
			zap.Error(err))
		return "", NewServiceError(constants.ErrCodeSummaryFailed, err)
	}

	if text == "" {
		s.logger.Warn("Summary reporter returned no content")
		return "", NewServiceError(constants.ErrCodeSummaryFailed, ErrEmptySummary)
	}

	s.logger.Info("Summary generated",
		zap.Int("transactions", len(transactions)),
		zap.Int("products", len(products)),
		zap.Int("length", len(text)))

	return text, nil
}
