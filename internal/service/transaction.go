package service

import (
	"context"
	"errors"
	"time"

	"github.com/nearbuy/marketplace/internal/constants"
	"github.com/nearbuy/marketplace/internal/model"
	"github.com/nearbuy/marketplace/internal/repository"
	"go.uber.org/zap"
)

type TransactionService interface {
	ContactSeller(ctx context.Context, cmd ContactSellerCommand) (model.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (model.Transaction, error)
	ListForUser(ctx context.Context, userID string) ([]model.Transaction, error)
}

type transaction struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	users        repository.UserRepository
	logger       *zap.Logger
}

func NewTransactionService(transactions repository.TransactionRepository,
	products repository.ProductRepository, users repository.UserRepository,
	logger *zap.Logger) TransactionService {
	return &transaction{transactions: transactions, products: products, users: users, logger: logger}
}

// ContactSeller finds or creates the one transaction for a (product, buyer)
// pair. Repeated calls return the existing transaction unchanged, so a
// double-tapped contact button never duplicates a thread. A new transaction
// starts Pending with a single event, the seller snapshotted from the
// product, and an empty message log.
func (t *transaction) ContactSeller(ctx context.Context, cmd ContactSellerCommand) (model.Transaction, error) {
	product, err := t.products.GetByID(cmd.ProductID)
	if err != nil {
		t.logger.Warn("Contact seller for unknown product", zap.Int64("productID", cmd.ProductID))
		return model.Transaction{}, NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	buyer, err := t.users.GetByID(cmd.BuyerID)
	if err != nil {
		return model.Transaction{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	existing, err := t.transactions.FindByProductAndBuyer(product.ID, buyer.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrTransactionNotFound) {
		return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	txn := model.Transaction{
		Product:  product,
		Buyer:    buyer,
		Seller:   product.Seller,
		Status:   model.StatusPending,
		Messages: []model.ChatMessage{},
		Events: []model.TransactionEvent{
			{Status: model.StatusPending, Date: time.Now()},
		},
	}

	if err := t.transactions.Create(&txn); err != nil {
		t.logger.Error("Failed to create transaction", zap.Error(err))
		return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	t.logger.Info("Transaction created",
		zap.Int64("transactionID", txn.ID),
		zap.Int64("productID", product.ID),
		zap.String("buyerID", buyer.ID),
		zap.String("sellerID", txn.Seller.ID))

	return txn, nil
}

func (t *transaction) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	txn, err := t.transactions.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return model.Transaction{}, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}
		return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
	}
	return txn, nil
}

func (t *transaction) ListForUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	if _, err := t.users.GetByID(userID); err != nil {
		return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
	}
	return t.transactions.ListByUser(userID), nil
}
