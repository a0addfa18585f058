package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/webstore-labs/product-store/internal/models"
	"github.com/webstore-labs/product-store/internal/repo"
	"github.com/webstore-labs/product-store/internal/search"
	"github.com/webstore-labs/product-store/internal/transport"
	"github.com/webstore-labs/product-store/pkg/logging"
)

type CatalogService struct {
	Repo   *repo.GormRepo
	Search *search.Client
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return product, err
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	name, price, image, err := validateProduct(req)
	if err != nil {
		return nil, err
	}

	prod := models.Product{
		Name:  name,
		Price: price,
		Image: image,
	}
	created, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		return nil, err
	}

	s.index(ctx, created)
	return created, nil
}

// UpdateProduct is full-replace: all three fields are required, same as create.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	name, price, image, err := validateProduct(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateProduct(ctx, id, name, price, image)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	s.index(ctx, updated)
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}

	if s.Search != nil {
		if err := s.Search.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search deindex failed", "product_id", id, "error", err)
		}
	}
	return nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if s.Search == nil {
		return 0, nil, fmt.Errorf("search is not configured")
	}
	return s.Search.Search(ctx, query, from, size)
}

// index updates the search document best-effort; catalog writes never fail
// because the index is behind.
func (s *CatalogService) index(ctx context.Context, prod *models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Warn("search index failed", "product_id", prod.ID, "error", err)
	}
}

func validateProduct(req transport.ProductRequest) (name string, price float64, image string, err error) {
	name = strings.TrimSpace(req.Name)
	image = strings.TrimSpace(req.Image)

	if name == "" {
		return "", 0, "", fmt.Errorf("name is required: %w", ErrValidation)
	}
	if image == "" {
		return "", 0, "", fmt.Errorf("image is required: %w", ErrValidation)
	}
	if req.Price == nil {
		return "", 0, "", fmt.Errorf("price is required: %w", ErrValidation)
	}
	if *req.Price < 0 {
		return "", 0, "", fmt.Errorf("price must be non-negative: %w", ErrValidation)
	}

	// Prices carry two fractional digits.
	price = decimal.NewFromFloat(*req.Price).Round(2).InexactFloat64()
	return name, price, image, nil
}
