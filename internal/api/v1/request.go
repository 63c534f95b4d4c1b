package v1

type PublishProductRequest struct {
	SellerID    string  `json:"sellerId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Condition   string  `json:"condition"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
}

type ContactSellerRequest struct {
	ProductID int64  `json:"productId"`
	BuyerID   string `json:"buyerId"`
}

type SendMessageRequest struct {
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
}

type MakeOfferRequest struct {
	ActorID string  `json:"actorId"`
	Amount  float64 `json:"amount"`
}

type AcceptOfferRequest struct {
	ActorID string `json:"actorId"`
}
