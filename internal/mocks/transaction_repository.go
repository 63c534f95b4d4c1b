package mocks

import (
	"github.com/nearbuy/marketplace/internal/model"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(transaction *model.Transaction) error {
	args := m.Called(transaction)
	return args.Error(0)
}

func (m *TransactionRepository) GetByID(id int64) (model.Transaction, error) {
	args := m.Called(id)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionRepository) FindByProductAndBuyer(productID int64, buyerID string) (model.Transaction, error) {
	args := m.Called(productID, buyerID)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionRepository) Replace(transaction model.Transaction) error {
	args := m.Called(transaction)
	return args.Error(0)
}

func (m *TransactionRepository) All() []model.Transaction {
	args := m.Called()
	return args.Get(0).([]model.Transaction)
}

func (m *TransactionRepository) ListByUser(userID string) []model.Transaction {
	args := m.Called(userID)
	return args.Get(0).([]model.Transaction)
}
