package repo

import (
	"gorm.io/gorm"

	"github.com/webstore-labs/product-store/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.CartItem{})
}
