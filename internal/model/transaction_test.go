package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nearbuy/marketplace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    model.TransactionStatus
		to      model.TransactionStatus
		allowed bool
	}{
		{model.StatusPending, model.StatusOfferMade, true},
		{model.StatusPending, model.StatusOfferAccepted, false},
		{model.StatusOfferMade, model.StatusOfferMade, true},
		{model.StatusOfferMade, model.StatusOfferAccepted, true},
		{model.StatusOfferAccepted, model.StatusPaymentProcessing, true},
		{model.StatusPaymentProcessing, model.StatusItemShipped, true},
		{model.StatusItemShipped, model.StatusCompleted, true},
		{model.StatusItemShipped, model.StatusPending, false},
		{model.StatusCompleted, model.StatusCancelled, false},
		{model.StatusCancelled, model.StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}

	t.Run("cancel is reachable from every non-terminal state", func(t *testing.T) {
		nonTerminal := []model.TransactionStatus{
			model.StatusPending, model.StatusOfferMade, model.StatusOfferAccepted,
			model.StatusPaymentProcessing, model.StatusItemShipped,
		}
		for _, s := range nonTerminal {
			assert.True(t, s.CanTransitionTo(model.StatusCancelled), "%s", s)
		}
	})
}

func TestTransactionStatus_Terminal(t *testing.T) {
	assert.True(t, model.StatusCompleted.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
	assert.False(t, model.StatusPending.Terminal())
	assert.False(t, model.StatusItemShipped.Terminal())
}

// A serialized transaction must reload with identical status, event order
// and message order.
func TestTransaction_JSONRoundTrip(t *testing.T) {
	offer := 420.0
	now := time.Now()

	original := model.Transaction{
		ID:      1,
		Product: model.Product{ID: 1, Title: "Vintage Leather Sofa", Condition: model.ConditionUsedGood},
		Buyer:   model.User{ID: "user1", Name: "Alex Johnson"},
		Seller:  model.User{ID: "user2", Name: "Maria Garcia"},
		Status:  model.StatusOfferMade,
		Messages: []model.ChatMessage{
			{ID: 1, Text: "Is the price negotiable?", Type: model.MessageTypeText, Timestamp: "10:30 AM"},
			{ID: 2, Text: "I'd like to offer $420", Type: model.MessageTypeOffer, Timestamp: "10:40 AM", OfferAmount: &offer},
		},
		OfferPrice: &offer,
		Events: []model.TransactionEvent{
			{Status: model.StatusPending, Date: now.Add(-24 * time.Hour)},
			{Status: model.StatusOfferMade, Date: now},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var reloaded model.Transaction
	require.NoError(t, json.Unmarshal(data, &reloaded))

	assert.Equal(t, original.Status, reloaded.Status)
	require.NotNil(t, reloaded.OfferPrice)
	assert.Equal(t, *original.OfferPrice, *reloaded.OfferPrice)

	require.Len(t, reloaded.Messages, len(original.Messages))
	for i := range original.Messages {
		assert.Equal(t, original.Messages[i].ID, reloaded.Messages[i].ID)
		assert.Equal(t, original.Messages[i].Type, reloaded.Messages[i].Type)
	}

	require.Len(t, reloaded.Events, len(original.Events))
	for i := range original.Events {
		assert.Equal(t, original.Events[i].Status, reloaded.Events[i].Status)
		assert.True(t, original.Events[i].Date.Equal(reloaded.Events[i].Date))
	}
}
