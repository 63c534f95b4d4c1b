// Package seed holds the static mock data the service starts with. All
// state lives in memory, so every restart begins from exactly this data.
package seed

import (
	"time"

	"github.com/nearbuy/marketplace/internal/model"
)

var (
	buyerAlex = model.User{
		ID:        "user1",
		Name:      "Alex Johnson",
		AvatarURL: "https://i.pravatar.cc/150?u=alexjohnson",
	}
	sellerMaria = model.User{
		ID:        "user2",
		Name:      "Maria Garcia",
		AvatarURL: "https://i.pravatar.cc/150?u=mariagarcia",
	}
	sellerChen = model.User{
		ID:        "user3",
		Name:      "Chen Wei",
		AvatarURL: "https://i.pravatar.cc/150?u=chenwei",
	}
	admin = model.User{
		ID:        "admin",
		Name:      "System",
		AvatarURL: "/system.png",
	}
)

func Users() []model.User {
	return []model.User{buyerAlex, sellerMaria, sellerChen, admin}
}

func Products() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Title:       "Vintage Leather Sofa",
			Description: "A beautiful vintage leather sofa, well-maintained with minor wear. Perfect for a classic living room setup. Non-smoking home.",
			Price:       450.00,
			Condition:   model.ConditionUsedGood,
			ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?q=80&w=800",
			Seller:      sellerMaria,
			Category:    "Home Goods",
		},
		{
			ID:          2,
			Title:       "High-Performance Blender",
			Description: "Barely used high-performance blender. Great for smoothies, soups, and more. Comes with all original accessories and box.",
			Price:       95.00,
			Condition:   model.ConditionUsedLikeNew,
			ImageURL:    "https://images.unsplash.com/photo-1594434438319-2d1421379513?q=80&w=800",
			Seller:      sellerChen,
			Category:    "Home Goods",
		},
		{
			ID:          3,
			Title:       "Retro Gaming Console",
			Description: "Classic retro gaming console with two controllers and 5 built-in games. A collector's item in perfect working condition.",
			Price:       150.00,
			Condition:   model.ConditionUsedGood,
			ImageURL:    "https://images.unsplash.com/photo-1593113646773-4b161e3b15d2?q=80&w=800",
			Seller:      sellerMaria,
			Category:    "Electronics",
		},
		{
			ID:          4,
			Title:       "Designer Denim Jacket",
			Description: "A stylish designer denim jacket, size medium. Worn only a few times. No stains or tears.",
			Price:       80.00,
			Condition:   model.ConditionUsedLikeNew,
			ImageURL:    "https://images.unsplash.com/photo-1591047139829-d91620649736?q=80&w=800",
			Seller:      sellerChen,
			Category:    "Fashion",
		},
	}
}

// Transactions returns one mid-negotiation thread and one fully completed
// sale, with event dates materialized relative to now.
func Transactions() []model.Transaction {
	products := Products()
	now := time.Now()

	sofaOffer := 420.0
	consoleOffer := 150.0

	return []model.Transaction{
		{
			ID:         1,
			Product:    products[0],
			Buyer:      buyerAlex,
			Seller:     products[0].Seller,
			Status:     model.StatusOfferMade,
			OfferPrice: &sofaOffer,
			Events: []model.TransactionEvent{
				{Status: model.StatusPending, Date: now.Add(-24 * time.Hour)},
				{Status: model.StatusOfferMade, Date: now},
			},
			Messages: []model.ChatMessage{
				{
					ID:        1,
					Sender:    buyerAlex,
					Text:      "Hi, I'm interested in the sofa. Is the price negotiable?",
					Timestamp: "10:30 AM",
					Type:      model.MessageTypeText,
				},
				{
					ID:        2,
					Sender:    sellerMaria,
					Text:      "Hi Alex, thanks for your interest. I can be a little flexible. What did you have in mind?",
					Timestamp: "10:35 AM",
					Type:      model.MessageTypeText,
				},
				{
					ID:          3,
					Sender:      buyerAlex,
					Text:        "I'd like to offer $420",
					Timestamp:   "10:40 AM",
					Type:        model.MessageTypeOffer,
					OfferAmount: &sofaOffer,
				},
			},
		},
		{
			ID:         2,
			Product:    products[2],
			Buyer:      buyerAlex,
			Seller:     products[2].Seller,
			Status:     model.StatusCompleted,
			OfferPrice: &consoleOffer,
			Events: []model.TransactionEvent{
				{Status: model.StatusPending, Date: now.Add(-5 * 24 * time.Hour)},
				{Status: model.StatusOfferMade, Date: now.Add(-5 * 24 * time.Hour)},
				{Status: model.StatusOfferAccepted, Date: now.Add(-4 * 24 * time.Hour)},
				{Status: model.StatusPaymentProcessing, Date: now.Add(-4 * 24 * time.Hour)},
				{Status: model.StatusItemShipped, Date: now.Add(-3 * 24 * time.Hour)},
				{Status: model.StatusCompleted, Date: now.Add(-24 * time.Hour)},
			},
			Messages: []model.ChatMessage{
				{
					ID:          1,
					Sender:      buyerAlex,
					Text:        "Offering full price for the console!",
					Timestamp:   "Yesterday",
					Type:        model.MessageTypeOffer,
					OfferAmount: &consoleOffer,
				},
				{
					ID:        2,
					Sender:    products[2].Seller,
					Text:      "Offer for $150 accepted. Awaiting payment.",
					Timestamp: "Yesterday",
					Type:      model.MessageTypeSystem,
				},
				{
					ID:        3,
					Sender:    admin,
					Text:      "Payment of $150 is processing. Seller can now ship the item.",
					Timestamp: "Yesterday",
					Type:      model.MessageTypeSystem,
				},
				{
					ID:        4,
					Sender:    admin,
					Text:      "Buyer has confirmed receipt. Transaction completed.",
					Timestamp: "Today",
					Type:      model.MessageTypeSystem,
				},
			},
		},
	}
}
