package service

import (
	"context"
	"errors"

	"github.com/nearbuy/marketplace/internal/constants"
	"github.com/nearbuy/marketplace/internal/model"
	"github.com/nearbuy/marketplace/internal/repository"
	"go.uber.org/zap"
)

type CatalogService interface {
	PublishListing(ctx context.Context, cmd PublishListingCommand) (model.Product, error)
	SearchListings(ctx context.Context, query string) []model.Product
	GetListing(ctx context.Context, id int64) (model.Product, error)
	ListingsBySeller(ctx context.Context, sellerID string) ([]model.Product, error)
}

type catalog struct {
	products repository.ProductRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

func NewCatalogService(products repository.ProductRepository, users repository.UserRepository,
	logger *zap.Logger) CatalogService {
	return &catalog{products: products, users: users, logger: logger}
}

// PublishListing attaches the acting user as seller and stores the listing.
// No further validation: the listing form is trusted and duplicate titles
// are allowed.
func (c *catalog) PublishListing(ctx context.Context, cmd PublishListingCommand) (model.Product, error) {
	seller, err := c.users.GetByID(cmd.SellerID)
	if err != nil {
		c.logger.Warn("Unknown seller on publish", zap.String("sellerID", cmd.SellerID))
		return model.Product{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	product := model.Product{
		Title:       cmd.Title,
		Description: cmd.Description,
		Price:       cmd.Price,
		Condition:   cmd.Condition,
		ImageURL:    cmd.ImageURL,
		Seller:      seller,
		Category:    cmd.Category,
	}

	if err := c.products.Create(&product); err != nil {
		c.logger.Error("Failed to store listing", zap.Error(err))
		return model.Product{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	c.logger.Info("Listing published",
		zap.Int64("productID", product.ID),
		zap.String("sellerID", seller.ID),
		zap.String("category", product.Category))

	return product, nil
}

func (c *catalog) SearchListings(ctx context.Context, query string) []model.Product {
	return c.products.Search(query)
}

func (c *catalog) GetListing(ctx context.Context, id int64) (model.Product, error) {
	product, err := c.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.Product{}, NewServiceError(constants.ErrCodeProductNotFound, err)
		}
		return model.Product{}, NewServiceError(constants.ErrCodeInternalError, err)
	}
	return product, nil
}

func (c *catalog) ListingsBySeller(ctx context.Context, sellerID string) ([]model.Product, error) {
	if _, err := c.users.GetByID(sellerID); err != nil {
		return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
	}
	return c.products.ListBySeller(sellerID), nil
}
