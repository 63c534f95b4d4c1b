package service

import "github.com/nearbuy/marketplace/internal/model"

type PublishListingCommand struct {
	SellerID    string
	Title       string
	Description string
	Price       float64
	Condition   model.Condition
	ImageURL    string
	Category    string
}

type ContactSellerCommand struct {
	ProductID int64
	BuyerID   string
}

type SendMessageCommand struct {
	TransactionID int64
	SenderID      string
	Text          string
}

type MakeOfferCommand struct {
	TransactionID int64
	ActorID       string
	Amount        float64
}

type AcceptOfferCommand struct {
	TransactionID int64
	ActorID       string
}

// MessageDraft is the caller-supplied part of a chat message; id, sender
// and timestamp are assigned at append time.
type MessageDraft struct {
	Text        string
	Type        model.MessageType
	OfferAmount *float64
}
