package services

import (
	"context"

	"medingen/internal/models"
	"medingen/internal/repositories"
)

// ReviewsPerPage is the default page size of review listings.
const ReviewsPerPage = 10

// ReviewStats summarizes the reviews of one product.
type ReviewStats struct {
	ProductID     string
	TotalReviews  int64
	AverageRating float64
	// Distribution always holds the ratings 1 through 5.
	Distribution map[int]int64
}

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	reviews  repositories.ReviewRepository
	products repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews repositories.ReviewRepository, products repositories.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// ListReviews returns one page of reviews, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, productID string, page repositories.PageRequest) (*repositories.Page[models.Review], error) {
	return s.reviews.List(ctx, productID, page)
}

// GetReview retrieves a single review.
func (s *ReviewService) GetReview(ctx context.Context, id string) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Review not found")
	}
	return review, nil
}

// Stats counts a product's reviews per rating. Ratings outside 1..5 count toward
// the total but have no bucket. The average is the product's stored rating.
func (s *ReviewService) Stats(ctx context.Context, productID string) (*ReviewStats, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, notFound(err, "Product not found")
	}

	counts, err := s.reviews.CountByRating(ctx, productID)
	if err != nil {
		return nil, err
	}

	stats := &ReviewStats{
		ProductID:     product.ID,
		AverageRating: product.AvgRating,
		Distribution:  map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	for _, c := range counts {
		stats.TotalReviews += c.Count
		if _, ok := stats.Distribution[c.Rating]; ok {
			stats.Distribution[c.Rating] = c.Count
		}
	}
	return stats, nil
}
