package service_test

import (
	"context"
	"testing"

	"github.com/nearbuy/marketplace/internal/constants"
	"github.com/nearbuy/marketplace/internal/mocks"
	"github.com/nearbuy/marketplace/internal/model"
	"github.com/nearbuy/marketplace/internal/repository"
	"github.com/nearbuy/marketplace/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalog_PublishListing(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	cmd := service.PublishListingCommand{
		SellerID:    "user2",
		Title:       "Mountain Bike",
		Description: "Hardly ridden, small frame.",
		Price:       220,
		Condition:   model.ConditionUsedLikeNew,
		Category:    "Sports",
	}

	t.Run("attaches the acting user as seller", func(t *testing.T) {
		mockProducts := &mocks.ProductRepository{}
		mockUsers := &mocks.UserRepository{}

		svc := service.NewCatalogService(mockProducts, mockUsers, logger)

		seller := model.User{ID: "user2", Name: "Maria Garcia"}
		mockUsers.On("GetByID", "user2").Return(seller, nil)
		mockProducts.On("Create", mock.MatchedBy(func(p *model.Product) bool {
			return p.Title == cmd.Title &&
				p.Price == cmd.Price &&
				p.Condition == cmd.Condition &&
				p.Seller.ID == seller.ID
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*model.Product).ID = 5
		}).Return(nil)

		product, err := svc.PublishListing(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(5), product.ID)
		assert.Equal(t, seller, product.Seller)

		mockProducts.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("fails for unknown seller", func(t *testing.T) {
		mockProducts := &mocks.ProductRepository{}
		mockUsers := &mocks.UserRepository{}

		svc := service.NewCatalogService(mockProducts, mockUsers, logger)

		mockUsers.On("GetByID", "ghost").Return(model.User{}, repository.ErrUserNotFound)

		badCmd := cmd
		badCmd.SellerID = "ghost"
		_, err := svc.PublishListing(ctx, badCmd)

		require.Error(t, err)
		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErr.Code)

		mockProducts.AssertNotCalled(t, "Create")
	})

	t.Run("allows duplicate titles", func(t *testing.T) {
		f := newFixture(t)

		for i := 0; i < 2; i++ {
			_, err := f.catalog.PublishListing(ctx, service.PublishListingCommand{
				SellerID: "sellerM", Title: "Vintage Leather Sofa", Price: 450, Category: "Home Goods",
			})
			require.NoError(t, err)
		}

		assert.Len(t, f.products.All(), 3)
	})
}

func TestCatalog_GetListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	product, err := f.catalog.GetListing(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Vintage Leather Sofa", product.Title)

	_, err = f.catalog.GetListing(ctx, 42)
	require.Error(t, err)

	var serviceErr service.Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, constants.ErrCodeProductNotFound, serviceErr.Code)
}
