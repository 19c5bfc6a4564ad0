package handlers

import (
	"medingen/internal/models"
	"medingen/internal/repositories"
	"medingen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DescriptionHandler handles HTTP requests for product descriptions.
type DescriptionHandler struct {
	descriptionService *services.DescriptionService
}

// NewDescriptionHandler creates a new DescriptionHandler.
func NewDescriptionHandler(descriptionService *services.DescriptionService) *DescriptionHandler {
	return &DescriptionHandler{descriptionService: descriptionService}
}

// RegisterRoutes registers the description routes.
func (h *DescriptionHandler) RegisterRoutes(router fiber.Router) {
	descriptions := router.Group("/descriptions")
	descriptions.Get("/", h.HandleList)
	descriptions.Get("/:id", h.HandleGet)
}

// HandleList lists descriptions, optionally filtered by product_id and type.
func (h *DescriptionHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.DescriptionFilter{
		ProductID: c.Query("product_id"),
		Type:      c.Query("type"),
	}

	page, err := h.descriptionService.ListDescriptions(c.UserContext(), filter, pageRequest(c, services.DefaultPerPage))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(pageEnvelope("descriptions", page, models.NewDescriptionViews))
}

// HandleGet returns one description.
func (h *DescriptionHandler) HandleGet(c *fiber.Ctx) error {
	description, err := h.descriptionService.GetDescription(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"description": models.NewDescriptionView(description)})
}
