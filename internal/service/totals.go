package service

import (
	"github.com/shopspring/decimal"

	"github.com/webstore-labs/product-store/internal/models"
)

func TotalItemCount(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price*quantity over the joined product prices. Prices are
// live: a product price change moves the total of every line referencing it.
func TotalPrice(items []models.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2).InexactFloat64()
}
