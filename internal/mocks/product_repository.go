package mocks

import (
	"github.com/nearbuy/marketplace/internal/model"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepository) GetByID(id int64) (model.Product, error) {
	args := m.Called(id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductRepository) Search(query string) []model.Product {
	args := m.Called(query)
	return args.Get(0).([]model.Product)
}

func (m *ProductRepository) All() []model.Product {
	args := m.Called()
	return args.Get(0).([]model.Product)
}

func (m *ProductRepository) ListBySeller(sellerID string) []model.Product {
	args := m.Called(sellerID)
	return args.Get(0).([]model.Product)
}
