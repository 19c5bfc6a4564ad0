package repositories

import (
	"context"

	"medingen/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List returns one page of products matching filter, in insertion order.
func (r *GORMProductRepository) List(ctx context.Context, filter ProductFilter, page PageRequest) (*Page[models.Product], error) {
	query := r.db.Model(&models.Product{})

	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where("(LOWER(name) LIKE LOWER(?) OR LOWER(generic_name) LIKE LOWER(?) OR LOWER(brand) LIKE LOWER(?))", like, like, like)
	}
	if filter.Brand != "" {
		query = query.Where("LOWER(brand) LIKE LOWER(?)", containsPattern(filter.Brand))
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) LIKE LOWER(?)", containsPattern(filter.Category))
	}
	if filter.GenericName != "" {
		query = query.Where("LOWER(generic_name) LIKE LOWER(?)", containsPattern(filter.GenericName))
	}
	if filter.ExcludeID != "" {
		query = query.Where("id <> ?", filter.ExcludeID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	result, err := findPage[models.Product](ctx, query, page, "created_at ASC, id ASC")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	return result, nil
}

// GetByID retrieves a single product without its relations.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err, "product with ID %s", id)
	}
	return &product, nil
}

// GetWithRelations retrieves a product with its salts, reviews and descriptions.
func (r *GORMProductRepository) GetWithRelations(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Salts", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Descriptions", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "product with ID %s", id)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Omit("Salts", "Reviews", "Descriptions").Create(product).Error; err != nil {
		return translate(err, "failed to create product %s", product.Name)
	}
	return nil
}

// Delete removes a product together with its salts, reviews and descriptions.
// Children are deleted explicitly so no orphans remain even where the database
// does not enforce foreign keys.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.Salt{}, &models.Review{}, &models.Description{}} {
			if err := tx.Where("product_id = ?", id).Delete(child).Error; err != nil {
				return errors.Wrapf(err, "failed to delete children of product %s", id)
			}
		}

		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return errors.Wrapf(res.Error, "failed to delete product %s", id)
		}
		if res.RowsAffected == 0 {
			return errors.Wrapf(ErrNotFound, "product with ID %s", id)
		}
		return nil
	})
}

// containsPattern leaves case folding to the database so the column and the
// pattern are lowered by the same rules.
func containsPattern(s string) string {
	return "%" + s + "%"
}
