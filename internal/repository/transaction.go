package repository

import (
	"errors"
	"sync"

	"github.com/nearbuy/marketplace/internal/model"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")

type TransactionRepository interface {
	Create(transaction *model.Transaction) error
	GetByID(id int64) (model.Transaction, error)
	FindByProductAndBuyer(productID int64, buyerID string) (model.Transaction, error)
	Replace(transaction model.Transaction) error
	All() []model.Transaction
	ListByUser(userID string) []model.Transaction
}

// Transactions holds transaction snapshots in memory. The store performs no
// validation on Replace; producing a consistent next snapshot is the
// caller's contract.
type Transactions struct {
	mu           sync.RWMutex
	transactions []model.Transaction
}

func NewTransactionRepository() TransactionRepository {
	return &Transactions{}
}

func (t *Transactions) Create(transaction *model.Transaction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	transaction.ID = int64(len(t.transactions)) + 1
	t.transactions = append(t.transactions, *transaction)
	return nil
}

func (t *Transactions) GetByID(id int64) (model.Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, txn := range t.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return model.Transaction{}, ErrTransactionNotFound
}

func (t *Transactions) FindByProductAndBuyer(productID int64, buyerID string) (model.Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, txn := range t.transactions {
		if txn.Product.ID == productID && txn.Buyer.ID == buyerID {
			return txn, nil
		}
	}
	return model.Transaction{}, ErrTransactionNotFound
}

// Replace swaps the stored snapshot wholesale by id.
func (t *Transactions) Replace(transaction model.Transaction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, txn := range t.transactions {
		if txn.ID == transaction.ID {
			t.transactions[i] = transaction
			return nil
		}
	}
	return ErrTransactionNotFound
}

func (t *Transactions) All() []model.Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()

	all := make([]model.Transaction, len(t.transactions))
	copy(all, t.transactions)
	return all
}

// ListByUser returns transactions where the user is either party.
func (t *Transactions) ListByUser(userID string) []model.Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var results []model.Transaction
	for _, txn := range t.transactions {
		if txn.Buyer.ID == userID || txn.Seller.ID == userID {
			results = append(results, txn)
		}
	}
	return results
}
