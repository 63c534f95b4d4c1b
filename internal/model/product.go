package model

type Condition string

const (
	ConditionNew         Condition = "New"
	ConditionUsedLikeNew Condition = "Used - Like New"
	ConditionUsedGood    Condition = "Used - Good"
	ConditionUsedFair    Condition = "Used - Fair"
)

// Product is a listing. It is never mutated after publication; transactions
// hold their own value snapshot of it.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Condition   Condition `json:"condition"`
	ImageURL    string    `json:"imageUrl"`
	Seller      User      `json:"seller"`
	Category    string    `json:"category"`
}
