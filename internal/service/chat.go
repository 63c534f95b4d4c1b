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

// timestampLayout is the locale-short clock time shown next to each chat
// message.
const timestampLayout = "3:04 PM"

type ChatService interface {
	// Append builds the next transaction snapshot with the message attached.
	// Pure: the input transaction is not modified.
	Append(txn model.Transaction, sender model.User, draft MessageDraft) model.Transaction
	SendText(ctx context.Context, cmd SendMessageCommand) (model.Transaction, error)
}

type chat struct {
	transactions repository.TransactionRepository
	users        repository.UserRepository
	logger       *zap.Logger
}

func NewChatService(transactions repository.TransactionRepository,
	users repository.UserRepository, logger *zap.Logger) ChatService {
	return &chat{transactions: transactions, users: users, logger: logger}
}

// Append assigns the next per-transaction message id (sequential, 1-based,
// gap-free because messages are never deleted) and stamps the current time.
func (c *chat) Append(txn model.Transaction, sender model.User, draft MessageDraft) model.Transaction {
	message := model.ChatMessage{
		ID:          len(txn.Messages) + 1,
		Sender:      sender,
		Text:        draft.Text,
		Timestamp:   time.Now().Format(timestampLayout),
		Type:        draft.Type,
		OfferAmount: draft.OfferAmount,
	}

	messages := make([]model.ChatMessage, len(txn.Messages), len(txn.Messages)+1)
	copy(messages, txn.Messages)
	txn.Messages = append(messages, message)
	return txn
}

// SendText appends a plain text message from either party and persists the
// new snapshot.
func (c *chat) SendText(ctx context.Context, cmd SendMessageCommand) (model.Transaction, error) {
	txn, err := c.transactions.GetByID(cmd.TransactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return model.Transaction{}, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}
		return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	sender, err := c.users.GetByID(cmd.SenderID)
	if err != nil {
		return model.Transaction{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	if sender.ID != txn.Buyer.ID && sender.ID != txn.Seller.ID {
		c.logger.Warn("Message from non-party rejected",
			zap.Int64("transactionID", txn.ID),
			zap.String("senderID", sender.ID))
		return model.Transaction{}, NewServiceError(constants.ErrCodeNotTransactionParty, ErrNotTransactionParty)
	}

	updated := c.Append(txn, sender, MessageDraft{Text: cmd.Text, Type: model.MessageTypeText})

	if err := c.transactions.Replace(updated); err != nil {
		c.logger.Error("Failed to persist message",
			zap.Int64("transactionID", txn.ID),
			zap.Error(err))
		return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return updated, nil
}
