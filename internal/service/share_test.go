package service_test

import (
	"testing"

	"github.com/nearbuy/marketplace/internal/constants"
	"github.com/nearbuy/marketplace/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShareLink(t *testing.T) {
	t.Run("strips query and fragment", func(t *testing.T) {
		link, err := service.BuildShareLink("https://market.example.com/products/3?q=sofa&page=2#reviews")
		require.NoError(t, err)
		assert.Equal(t, "https://market.example.com/products/3", link)
	})

	t.Run("leaves clean addresses alone", func(t *testing.T) {
		link, err := service.BuildShareLink("https://market.example.com/products/3")
		require.NoError(t, err)
		assert.Equal(t, "https://market.example.com/products/3", link)
	})

	t.Run("rejects relative or broken addresses", func(t *testing.T) {
		for _, raw := range []string{"", "/products/3", "::not-a-url"} {
			_, err := service.BuildShareLink(raw)
			require.Error(t, err, raw)

			var serviceErr service.Error
			require.ErrorAs(t, err, &serviceErr)
			assert.Equal(t, constants.ErrCodeInvalidShareLink, serviceErr.Code)
		}
	})
}
