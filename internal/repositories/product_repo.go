package repositories

import (
	"context"

	"medingen/internal/models"
)

// ProductFilter holds the optional product listing filters. Zero values mean
// "not set"; all set filters must match.
type ProductFilter struct {
	// Search matches name, generic name or brand.
	Search      string
	Brand       string
	Category    string
	GenericName string
	ExcludeID   string
	MinPrice    *float64
	MaxPrice    *float64
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter, page PageRequest) (*Page[models.Product], error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetWithRelations(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}
