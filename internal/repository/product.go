package repository

import (
	"errors"
	"strings"
	"sync"

	"github.com/nearbuy/marketplace/internal/model"
)

var ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")

type ProductRepository interface {
	Create(product *model.Product) error
	GetByID(id int64) (model.Product, error)
	Search(query string) []model.Product
	All() []model.Product
	ListBySeller(sellerID string) []model.Product
}

// Catalog holds listings in memory. Listings are never deleted, which keeps
// the count-based id assignment collision-free.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
}

func NewProductRepository() ProductRepository {
	return &Catalog{}
}

// Create assigns the next id and prepends, so the newest listing renders
// first.
func (c *Catalog) Create(product *model.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	product.ID = int64(len(c.products)) + 1
	c.products = append([]model.Product{*product}, c.products...)
	return nil
}

func (c *Catalog) GetByID(id int64) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

// Search matches the query case-insensitively against title, description
// and category, preserving stored order. An empty query returns everything.
func (c *Catalog) Search(query string) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(query)
	results := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			results = append(results, p)
		}
	}
	return results
}

func (c *Catalog) All() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]model.Product, len(c.products))
	copy(all, c.products)
	return all
}

func (c *Catalog) ListBySeller(sellerID string) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var results []model.Product
	for _, p := range c.products {
		if p.Seller.ID == sellerID {
			results = append(results, p)
		}
	}
	return results
}
