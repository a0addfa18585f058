package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/webstore-labs/product-store/internal/models"
	"github.com/webstore-labs/product-store/internal/repo"
	"github.com/webstore-labs/product-store/internal/transport"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestServices(t *testing.T) (*CatalogService, *CartService, *gorm.DB) {
	db := initTestDB(t)
	r := &repo.GormRepo{DB: db}
	return &CatalogService{Repo: r}, &CartService{Repo: r}, db
}

func productReq(name string, price float64, image string) transport.ProductRequest {
	return transport.ProductRequest{Name: name, Price: &price, Image: image}
}
