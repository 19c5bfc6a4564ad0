package handlers

import (
	"medingen/internal/models"
	"medingen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SaltHandler handles HTTP requests for salts.
type SaltHandler struct {
	saltService *services.SaltService
}

// NewSaltHandler creates a new SaltHandler.
func NewSaltHandler(saltService *services.SaltService) *SaltHandler {
	return &SaltHandler{saltService: saltService}
}

// RegisterRoutes registers the salt routes.
func (h *SaltHandler) RegisterRoutes(router fiber.Router) {
	salts := router.Group("/salts")
	salts.Get("/", h.HandleList)
	salts.Get("/:id", h.HandleGet)
}

// HandleList lists salts, optionally for one product_id.
func (h *SaltHandler) HandleList(c *fiber.Ctx) error {
	page, err := h.saltService.ListSalts(c.UserContext(), c.Query("product_id"), pageRequest(c, services.DefaultPerPage))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(pageEnvelope("salts", page, models.NewSaltViews))
}

// HandleGet returns one salt.
func (h *SaltHandler) HandleGet(c *fiber.Ctx) error {
	salt, err := h.saltService.GetSalt(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"salt": models.NewSaltView(salt)})
}
