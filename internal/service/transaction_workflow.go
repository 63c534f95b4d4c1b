package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nearbuy/marketplace/internal/constants"
	"github.com/nearbuy/marketplace/internal/model"
	"github.com/nearbuy/marketplace/internal/repository"
	"go.uber.org/zap"
)

// TransactionWorkflowService drives the negotiation half of the transaction
// lifecycle. Pending and Offer Made accept new offers; Offer Made accepts a
// seller's acceptance. The states past Offer Accepted (payment, shipping,
// completion) and Cancelled have no triggering action here: they exist in
// the transition table and in seed data only.
type TransactionWorkflowService interface {
	MakeOffer(ctx context.Context, cmd MakeOfferCommand) (model.Transaction, error)
	AcceptOffer(ctx context.Context, cmd AcceptOfferCommand) (model.Transaction, error)
}

type transactionWorkflow struct {
	transactions repository.TransactionRepository
	users        repository.UserRepository
	chat         ChatService
	logger       *zap.Logger
}

func NewTransactionWorkflowService(transactions repository.TransactionRepository,
	users repository.UserRepository, chat ChatService, logger *zap.Logger) TransactionWorkflowService {
	return &transactionWorkflow{transactions: transactions, users: users, chat: chat, logger: logger}
}

// MakeOffer records a buyer's offer: one offer message, status Offer Made,
// offer price updated, one event. Counter offers are allowed while the
// previous offer is still open. Offer amounts are deliberately unvalidated;
// any numeric value is accepted.
func (w *transactionWorkflow) MakeOffer(ctx context.Context, cmd MakeOfferCommand) (model.Transaction, error) {
	txn, actor, err := w.load(cmd.TransactionID, cmd.ActorID)
	if err != nil {
		return model.Transaction{}, err
	}

	if actor.ID != txn.Buyer.ID {
		w.logger.Warn("Offer from non-buyer rejected",
			zap.Int64("transactionID", txn.ID),
			zap.String("actorID", actor.ID))
		return model.Transaction{}, NewServiceError(constants.ErrCodeInvalidTransition, ErrInvalidTransition)
	}

	if txn.Status != model.StatusPending && txn.Status != model.StatusOfferMade {
		w.logger.Warn("Offer rejected in current state",
			zap.Int64("transactionID", txn.ID),
			zap.String("status", string(txn.Status)))
		return model.Transaction{}, NewServiceError(constants.ErrCodeInvalidTransition, ErrInvalidTransition)
	}

	amount := cmd.Amount
	draft := MessageDraft{
		Text:        fmt.Sprintf("Made an offer of $%.2f", amount),
		Type:        model.MessageTypeOffer,
		OfferAmount: &amount,
	}

	updated := w.chat.Append(txn, actor, draft)
	updated.Status = model.StatusOfferMade
	updated.OfferPrice = &amount
	updated.Events = appendEvent(updated.Events, model.StatusOfferMade)

	if err := w.transactions.Replace(updated); err != nil {
		w.logger.Error("Failed to persist offer",
			zap.Int64("transactionID", txn.ID),
			zap.Error(err))
		return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	w.logger.Info("Offer made",
		zap.Int64("transactionID", txn.ID),
		zap.String("buyerID", actor.ID),
		zap.Float64("amount", amount))

	return updated, nil
}

// AcceptOffer is the seller's acceptance of the open offer: one system
// message, status Offer Accepted, one event. Only the seller may accept and
// only while an offer is open.
func (w *transactionWorkflow) AcceptOffer(ctx context.Context, cmd AcceptOfferCommand) (model.Transaction, error) {
	txn, actor, err := w.load(cmd.TransactionID, cmd.ActorID)
	if err != nil {
		return model.Transaction{}, err
	}

	if actor.ID != txn.Seller.ID {
		w.logger.Warn("Accept from non-seller rejected",
			zap.Int64("transactionID", txn.ID),
			zap.String("actorID", actor.ID))
		return model.Transaction{}, NewServiceError(constants.ErrCodeInvalidTransition, ErrInvalidTransition)
	}

	if txn.Status != model.StatusOfferMade {
		w.logger.Warn("Accept rejected in current state",
			zap.Int64("transactionID", txn.ID),
			zap.String("status", string(txn.Status)))
		return model.Transaction{}, NewServiceError(constants.ErrCodeInvalidTransition, ErrInvalidTransition)
	}

	var offerPrice float64
	if txn.OfferPrice != nil {
		offerPrice = *txn.OfferPrice
	}

	draft := MessageDraft{
		Text: fmt.Sprintf("Accepted offer for $%.2f", offerPrice),
		Type: model.MessageTypeSystem,
	}

	updated := w.chat.Append(txn, actor, draft)
	updated.Status = model.StatusOfferAccepted
	updated.Events = appendEvent(updated.Events, model.StatusOfferAccepted)

	if err := w.transactions.Replace(updated); err != nil {
		w.logger.Error("Failed to persist acceptance",
			zap.Int64("transactionID", txn.ID),
			zap.Error(err))
		return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	w.logger.Info("Offer accepted",
		zap.Int64("transactionID", txn.ID),
		zap.String("sellerID", actor.ID),
		zap.Float64("amount", offerPrice))

	return updated, nil
}

func (w *transactionWorkflow) load(transactionID int64, actorID string) (model.Transaction, model.User, error) {
	txn, err := w.transactions.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return model.Transaction{}, model.User{}, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}
		return model.Transaction{}, model.User{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	actor, err := w.users.GetByID(actorID)
	if err != nil {
		return model.Transaction{}, model.User{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	return txn, actor, nil
}

// appendEvent clones the event log before appending so earlier snapshots
// stay untouched.
func appendEvent(events []model.TransactionEvent, status model.TransactionStatus) []model.TransactionEvent {
	next := make([]model.TransactionEvent, len(events), len(events)+1)
	copy(next, events)
	return append(next, model.TransactionEvent{Status: status, Date: time.Now()})
}
