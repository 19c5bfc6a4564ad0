package handlers

import (
	"medingen/internal/apperror"
	"medingen/internal/models"
	"medingen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ConfigHandler serves the dynamic app configuration. Its responses carry a
// success flag.
type ConfigHandler struct {
	configService *services.ConfigService
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(configService *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// RegisterRoutes registers the config routes.
func (h *ConfigHandler) RegisterRoutes(router fiber.Router) {
	config := router.Group("/config")
	config.Get("/", h.HandleGetAll)
	config.Get("/by-category/:category", h.HandleGetByCategory)
	config.Get("/:key", h.HandleGet)
}

// HandleGetAll returns every setting as key to value.
func (h *ConfigHandler) HandleGetAll(c *fiber.Ctx) error {
	values, err := h.configService.GetAll(c.UserContext())
	if err != nil {
		return configError(c, err)
	}

	return c.JSON(fiber.Map{"config": values, "success": true})
}

// HandleGet returns the full record of one setting.
func (h *ConfigHandler) HandleGet(c *fiber.Ctx) error {
	config, err := h.configService.GetOne(c.UserContext(), c.Params("key"))
	if err != nil {
		return configError(c, err)
	}

	return c.JSON(fiber.Map{"config": models.NewAppConfigView(config), "success": true})
}

// HandleGetByCategory returns the settings under "<category>.".
func (h *ConfigHandler) HandleGetByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	values, err := h.configService.GetByCategory(c.UserContext(), category)
	if err != nil {
		return configError(c, err)
	}

	return c.JSON(fiber.Map{"config": values, "category": category, "success": true})
}

func configError(c *fiber.Ctx, err error) error {
	status, message := apperror.StatusOf(err)
	return c.Status(status).JSON(fiber.Map{"error": message, "success": false})
}
