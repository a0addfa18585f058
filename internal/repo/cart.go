package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/webstore-labs/product-store/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart merges into an existing line or creates one, as a single
// transaction. The increment runs first so two concurrent adds for the same
// product cannot both take the insert path; the unique index on
// (cart_id, product_id) backstops the remaining create/create race.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Product{}, item.ProductID).Error; err != nil {
			return err
		}

		res := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Omit the association so the cart never writes catalog rows.
			if err := tx.Omit("Product").Create(item).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Product").
			Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
			First(item).Error
	})
}

func (r *GormRepo) UpdateCartItem(ctx context.Context, cartID string, lineID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND cart_id = ?", lineID, cartID).First(&item).Error; err != nil {
			return err
		}

		if err := tx.Model(&item).Update("quantity", quantity).Error; err != nil {
			return err
		}

		return tx.Preload("Product").First(&item, item.ID).Error
	}); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, cartID string, lineID uint) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND cart_id = ?", lineID, cartID).
		Delete(&models.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ClearCart(ctx context.Context, cartID string) error {
	return r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
