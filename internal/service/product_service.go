package service

import (
	"context"
	"fmt"

	"shophub/internal/model"
	"shophub/internal/repository"
)

// ProductService handles catalog operations.
type ProductService interface {
	ListProducts(ctx context.Context, search, category string) ([]model.ProductView, error)
	GetProduct(ctx context.Context, id string) (*model.ProductView, error)
	CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (*model.Product, error)
}

type productService struct {
	repo      repository.ProductRepository
	validator *ProductValidator
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{
		repo:      repo,
		validator: NewProductValidator(),
	}
}

// ListProducts returns the filtered catalog, newest first, with every
// record normalized into the canonical display shape. The full result set
// is returned in one response; there is no pagination.
func (s *productService) ListProducts(ctx context.Context, search, category string) ([]model.ProductView, error) {
	products, err := s.repo.List(ctx, repository.ListFilter{Search: search, Category: category})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	views := make([]model.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, p.View())
	}
	return views, nil
}

// GetProduct returns a single normalized product.
func (s *productService) GetProduct(ctx context.Context, id string) (*model.ProductView, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := product.View()
	return &view, nil
}

// CreateProduct validates and persists a new product.
func (s *productService) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	product, err := s.validator.ValidateCreate(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct merges the patch onto the stored record, re-validates the
// merged record with the create rule set, and persists it. Concurrent
// updates resolve last-write-wins.
func (s *productService) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := s.validator.ValidateUpdate(*existing, patch)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, &merged)
}

// DeleteProduct physically removes a product and returns the removed record.
func (s *productService) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.repo.Delete(ctx, id)
}
