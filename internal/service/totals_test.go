package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webstore-labs/product-store/internal/models"
)

func TestTotalItemCountEmpty(t *testing.T) {
	require.Equal(t, 0, TotalItemCount(nil))
	require.Equal(t, 0, TotalItemCount([]models.CartItem{}))
}

func TestTotalItemCount(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 2},
		{Quantity: 3},
	}
	require.Equal(t, 5, TotalItemCount(items))
}

func TestTotalPriceEmpty(t *testing.T) {
	require.Equal(t, 0.0, TotalPrice(nil))
}

func TestTotalPrice(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 2, Product: models.Product{Price: 10.00}},
		{Quantity: 1, Product: models.Product{Price: 5.50}},
	}
	require.Equal(t, 25.50, TotalPrice(items))
}

func TestTotalPriceExactDecimals(t *testing.T) {
	// 3 * 0.10 is 0.30000000000000004 in plain float math.
	items := []models.CartItem{
		{Quantity: 3, Product: models.Product{Price: 0.10}},
	}
	require.Equal(t, 0.30, TotalPrice(items))
}
