package model

import "time"

type TransactionStatus string

const (
	StatusPending           TransactionStatus = "Pending"
	StatusOfferMade         TransactionStatus = "Offer Made"
	StatusOfferAccepted     TransactionStatus = "Offer Accepted"
	StatusPaymentProcessing TransactionStatus = "Payment Processing"
	StatusItemShipped       TransactionStatus = "Item Shipped"
	StatusCompleted         TransactionStatus = "Completed"
	StatusCancelled         TransactionStatus = "Cancelled"
)

// statusTransitions models the full lifecycle. Only the offer transitions
// are reachable through implemented actions; the states past Offer Accepted
// exist in seed data but no operation advances into them yet, and Cancelled
// has no triggering action either.
var statusTransitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:           {StatusOfferMade, StatusCancelled},
	StatusOfferMade:         {StatusOfferMade, StatusOfferAccepted, StatusCancelled},
	StatusOfferAccepted:     {StatusPaymentProcessing, StatusCancelled},
	StatusPaymentProcessing: {StatusItemShipped, StatusCancelled},
	StatusItemShipped:       {StatusCompleted, StatusCancelled},
	StatusCompleted:         {},
	StatusCancelled:         {},
}

func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// TransactionEvent records one status change. The event log is append-only
// and its last entry always matches the transaction's current status.
type TransactionEvent struct {
	Status TransactionStatus `json:"status"`
	Date   time.Time         `json:"date"`
}

// Transaction binds one buyer, one seller and one product. Seller is
// snapshotted from the product at creation time. Exactly one transaction
// exists per (product, buyer) pair.
type Transaction struct {
	ID         int64              `json:"id"`
	Product    Product            `json:"product"`
	Buyer      User               `json:"buyer"`
	Seller     User               `json:"seller"`
	Status     TransactionStatus  `json:"status"`
	Messages   []ChatMessage      `json:"messages"`
	OfferPrice *float64           `json:"offerPrice,omitempty"`
	Events     []TransactionEvent `json:"events"`
}
