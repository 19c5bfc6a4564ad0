package handlers

import (
	"medingen/internal/models"
	"medingen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers the review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviews := router.Group("/reviews")
	reviews.Get("/", h.HandleList)
	reviews.Get("/stats/:product_id", h.HandleStats)
	reviews.Get("/:id", h.HandleGet)
}

// HandleList lists reviews newest first, optionally for one product_id.
func (h *ReviewHandler) HandleList(c *fiber.Ctx) error {
	page, err := h.reviewService.ListReviews(c.UserContext(), c.Query("product_id"), pageRequest(c, services.ReviewsPerPage))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(pageEnvelope("reviews", page, models.NewReviewViews))
}

// HandleGet returns one review.
func (h *ReviewHandler) HandleGet(c *fiber.Ctx) error {
	review, err := h.reviewService.GetReview(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"review": models.NewReviewView(review)})
}

// HandleStats returns the rating distribution of a product.
func (h *ReviewHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.reviewService.Stats(c.UserContext(), c.Params("product_id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"product_id":          stats.ProductID,
		"total_reviews":       stats.TotalReviews,
		"average_rating":      stats.AverageRating,
		"rating_distribution": stats.Distribution,
	})
}
