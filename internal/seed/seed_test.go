package seed_test

import (
	"testing"

	"github.com/nearbuy/marketplace/internal/model"
	"github.com/nearbuy/marketplace/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData_Invariants(t *testing.T) {
	transactions := seed.Transactions()
	require.NotEmpty(t, transactions)

	for _, txn := range transactions {
		t.Run(txn.Product.Title, func(t *testing.T) {
			require.NotEmpty(t, txn.Events)
			last := txn.Events[len(txn.Events)-1]
			assert.Equal(t, txn.Status, last.Status, "last event matches current status")

			assert.Equal(t, txn.Product.Seller.ID, txn.Seller.ID, "seller snapshotted from product")

			for i, message := range txn.Messages {
				assert.Equal(t, i+1, message.ID, "message ids sequential and 1-based")
				if message.Type == model.MessageTypeOffer {
					assert.NotNil(t, message.OfferAmount, "offer messages carry an amount")
				}
			}

			for i := 1; i < len(txn.Events); i++ {
				assert.False(t, txn.Events[i].Date.Before(txn.Events[i-1].Date),
					"event dates are non-decreasing")
			}
		})
	}
}

func TestSeedData_Shapes(t *testing.T) {
	assert.Len(t, seed.Users(), 4)
	assert.Len(t, seed.Products(), 4)
	assert.Len(t, seed.Transactions(), 2)
}
