package repositories

import (
	"context"

	"medingen/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DescriptionFilter narrows a description listing. Empty fields are ignored.
type DescriptionFilter struct {
	ProductID string
	Type      string
}

// DescriptionRepository defines the interface for description data access.
type DescriptionRepository interface {
	List(ctx context.Context, filter DescriptionFilter, page PageRequest) (*Page[models.Description], error)
	GetByID(ctx context.Context, id string) (*models.Description, error)
	Create(ctx context.Context, description *models.Description) error
}

// GORMDescriptionRepository is a GORM implementation of DescriptionRepository.
type GORMDescriptionRepository struct {
	db *gorm.DB
}

// NewGORMDescriptionRepository creates a new instance of GORMDescriptionRepository.
func NewGORMDescriptionRepository(db *gorm.DB) *GORMDescriptionRepository {
	return &GORMDescriptionRepository{db: db}
}

// List returns one page of descriptions matching filter.
func (r *GORMDescriptionRepository) List(ctx context.Context, filter DescriptionFilter, page PageRequest) (*Page[models.Description], error) {
	query := r.db.Model(&models.Description{})
	if filter.ProductID != "" {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	result, err := findPage[models.Description](ctx, query, page, "created_at ASC, id ASC")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list descriptions")
	}
	return result, nil
}

// GetByID retrieves a single description.
func (r *GORMDescriptionRepository) GetByID(ctx context.Context, id string) (*models.Description, error) {
	var description models.Description
	if err := r.db.WithContext(ctx).First(&description, "id = ?", id).Error; err != nil {
		return nil, translate(err, "description with ID %s", id)
	}
	return &description, nil
}

// Create inserts a description.
func (r *GORMDescriptionRepository) Create(ctx context.Context, description *models.Description) error {
	if err := r.db.WithContext(ctx).Create(description).Error; err != nil {
		return translate(err, "failed to create description %s", description.Title)
	}
	return nil
}
