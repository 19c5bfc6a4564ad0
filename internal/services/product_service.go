package services

import (
	"context"

	"medingen/internal/apperror"
	"medingen/internal/models"
	"medingen/internal/repositories"

	"github.com/pkg/errors"
)

// DefaultPerPage is the page size used by listings unless stated otherwise.
const DefaultPerPage = 20

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns one page of products matching filter in insertion order.
func (s *ProductService) ListProducts(ctx context.Context, filter repositories.ProductFilter, page repositories.PageRequest) (*repositories.Page[models.Product], error) {
	return s.repo.List(ctx, filter, page)
}

// GetProduct retrieves a product with its salts, reviews and descriptions.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, notFound(err, "Product not found")
	}
	return product, nil
}

// DeleteProduct deletes a product together with its salts, reviews and descriptions.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "Product not found")
	}
	return nil
}

// notFound turns the repository not-found sentinel into an application error.
func notFound(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
