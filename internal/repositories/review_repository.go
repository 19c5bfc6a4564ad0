package repositories

import (
	"context"

	"medingen/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RatingCount is the number of reviews carrying one rating value.
type RatingCount struct {
	Rating int
	Count  int64
}

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	List(ctx context.Context, productID string, page PageRequest) (*Page[models.Review], error)
	GetByID(ctx context.Context, id string) (*models.Review, error)
	CountByRating(ctx context.Context, productID string) ([]RatingCount, error)
	Create(ctx context.Context, review *models.Review) error
}

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// List returns one page of reviews, newest first.
func (r *GORMReviewRepository) List(ctx context.Context, productID string, page PageRequest) (*Page[models.Review], error) {
	query := r.db.Model(&models.Review{})
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	result, err := findPage[models.Review](ctx, query, page, "created_at DESC, id DESC")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}
	return result, nil
}

// GetByID retrieves a single review.
func (r *GORMReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, translate(err, "review with ID %s", id)
	}
	return &review, nil
}

// CountByRating groups a product's reviews by rating.
func (r *GORMReviewRepository) CountByRating(ctx context.Context, productID string) ([]RatingCount, error) {
	var counts []RatingCount
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("rating, COUNT(rating) AS count").
		Where("product_id = ?", productID).
		Group("rating").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count ratings for product %s", productID)
	}
	return counts, nil
}

// Create inserts a review.
func (r *GORMReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return translate(err, "failed to create review by %s", review.UserName)
	}
	return nil
}
