package mocks

import (
	"context"

	"github.com/nearbuy/marketplace/internal/model"
	"github.com/stretchr/testify/mock"
)

type Reporter struct {
	mock.Mock
}

func (m *Reporter) Summarize(ctx context.Context, transactions []model.Transaction, products []model.Product) (string, error) {
	args := m.Called(ctx, transactions, products)
	return args.String(0), args.Error(1)
}
