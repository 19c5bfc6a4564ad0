package repositories

import (
	"context"

	"medingen/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SaltRepository defines the interface for salt data access.
type SaltRepository interface {
	List(ctx context.Context, productID string, page PageRequest) (*Page[models.Salt], error)
	GetByID(ctx context.Context, id string) (*models.Salt, error)
	Create(ctx context.Context, salt *models.Salt) error
}

// GORMSaltRepository is a GORM implementation of SaltRepository.
type GORMSaltRepository struct {
	db *gorm.DB
}

// NewGORMSaltRepository creates a new instance of GORMSaltRepository.
func NewGORMSaltRepository(db *gorm.DB) *GORMSaltRepository {
	return &GORMSaltRepository{db: db}
}

// List returns one page of salts, optionally restricted to a product.
func (r *GORMSaltRepository) List(ctx context.Context, productID string, page PageRequest) (*Page[models.Salt], error) {
	query := r.db.Model(&models.Salt{})
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	result, err := findPage[models.Salt](ctx, query, page, "created_at ASC, id ASC")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list salts")
	}
	return result, nil
}

// GetByID retrieves a single salt.
func (r *GORMSaltRepository) GetByID(ctx context.Context, id string) (*models.Salt, error) {
	var salt models.Salt
	if err := r.db.WithContext(ctx).First(&salt, "id = ?", id).Error; err != nil {
		return nil, translate(err, "salt with ID %s", id)
	}
	return &salt, nil
}

// Create inserts a salt.
func (r *GORMSaltRepository) Create(ctx context.Context, salt *models.Salt) error {
	if err := r.db.WithContext(ctx).Create(salt).Error; err != nil {
		return translate(err, "failed to create salt %s", salt.SaltName)
	}
	return nil
}
