package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/webstore-labs/product-store/internal/models"
	"github.com/webstore-labs/product-store/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx, cartID)
}

// AddToCart merges quantity into an existing line for the product, or creates
// a new line. A cart holds at most one line per product.
func (s *CartService) AddToCart(ctx context.Context, cartID string, productID uint, quantity int) (*models.CartItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product_id is required: %w", ErrValidation)
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}

	item := models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := s.Repo.AddToCart(ctx, &item)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("cart line for product %d: %w", productID, ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity replaces the line's quantity. A quantity below one is
// rejected; removal is its own operation.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID string, lineID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}

	item, err := s.Repo.UpdateCartItem(ctx, cartID, lineID, quantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart item %d: %w", lineID, ErrNotFound)
	}
	return item, err
}

func (s *CartService) RemoveFromCart(ctx context.Context, cartID string, lineID uint) error {
	err := s.Repo.DeleteCartItem(ctx, cartID, lineID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart item %d: %w", lineID, ErrNotFound)
	}
	return err
}

func (s *CartService) ClearCart(ctx context.Context, cartID string) error {
	return s.Repo.ClearCart(ctx, cartID)
}
