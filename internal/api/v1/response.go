package v1

import "github.com/nearbuy/marketplace/internal/model"

type ProductsResponse struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

type TransactionsResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Total        int                 `json:"total"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type ShareLinkResponse struct {
	URL string `json:"url"`
}
