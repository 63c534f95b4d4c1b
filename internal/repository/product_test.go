package repository_test

import (
	"testing"

	"github.com/nearbuy/marketplace/internal/model"
	"github.com/nearbuy/marketplace/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) repository.ProductRepository {
	t.Helper()

	repo := repository.NewProductRepository()
	listings := []model.Product{
		{Title: "Vintage Leather Sofa", Description: "well-maintained with minor wear", Category: "Home Goods"},
		{Title: "High-Performance Blender", Description: "great for smoothies", Category: "Home Goods"},
		{Title: "Retro Gaming Console", Description: "a collector's item", Category: "Electronics"},
		{Title: "Designer Denim Jacket", Description: "size medium", Category: "Fashion"},
	}

	for i := range listings {
		require.NoError(t, repo.Create(&listings[i]))
	}

	return repo
}

func TestCatalog_Create(t *testing.T) {
	repo := repository.NewProductRepository()

	first := model.Product{Title: "Old Lamp"}
	second := model.Product{Title: "New Lamp"}

	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "New Lamp", all[0].Title, "newest listing comes first")
	assert.Equal(t, "Old Lamp", all[1].Title)
}

func TestCatalog_Search(t *testing.T) {
	repo := seedCatalog(t)

	t.Run("matches title case-insensitively", func(t *testing.T) {
		results := repo.Search("BLENDER")
		require.Len(t, results, 1)
		assert.Equal(t, "High-Performance Blender", results[0].Title)
	})

	t.Run("matches description", func(t *testing.T) {
		results := repo.Search("smoothies")
		require.Len(t, results, 1)
		assert.Equal(t, "High-Performance Blender", results[0].Title)
	})

	t.Run("matches category", func(t *testing.T) {
		results := repo.Search("home goods")
		require.Len(t, results, 2)
	})

	t.Run("preserves stored order", func(t *testing.T) {
		results := repo.Search("e")
		all := repo.All()
		require.Len(t, results, len(all))
		for i := range all {
			assert.Equal(t, all[i].ID, results[i].ID)
		}
	})

	t.Run("empty query returns all products", func(t *testing.T) {
		assert.Len(t, repo.Search(""), 4)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, repo.Search("submarine"))
	})
}

func TestCatalog_GetByID(t *testing.T) {
	repo := seedCatalog(t)

	product, err := repo.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Retro Gaming Console", product.Title)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalog_ListBySeller(t *testing.T) {
	repo := repository.NewProductRepository()

	maria := model.User{ID: "user2", Name: "Maria Garcia"}
	chen := model.User{ID: "user3", Name: "Chen Wei"}

	for _, p := range []model.Product{
		{Title: "Sofa", Seller: maria},
		{Title: "Blender", Seller: chen},
		{Title: "Console", Seller: maria},
	} {
		p := p
		require.NoError(t, repo.Create(&p))
	}

	mine := repo.ListBySeller("user2")
	require.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "user2", p.Seller.ID)
	}

	assert.Empty(t, repo.ListBySeller("user1"))
}
