package model

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeOffer  MessageType = "offer"
	MessageTypeSystem MessageType = "system"
	// MessageTypeVideo is legal data but never produced by any workflow.
	MessageTypeVideo MessageType = "video"
)

// ChatMessage is one entry in a transaction's append-only message log.
// IDs are sequential per transaction starting at 1. Timestamp is the
// locale-short clock time the message was appended.
type ChatMessage struct {
	ID          int         `json:"id"`
	Sender      User        `json:"sender"`
	Text        string      `json:"text"`
	Timestamp   string      `json:"timestamp"`
	Type        MessageType `json:"type"`
	OfferAmount *float64    `json:"offerAmount,omitempty"`
	VideoURL    string      `json:"videoUrl,omitempty"`
}
