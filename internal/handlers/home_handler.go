package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HomeHandler serves the discovery document and the health check.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// RegisterRoutes registers the root routes.
func (h *HomeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/health", h.HandleHealth)
}

// HandleHome lists the API entry points.
func (h *HomeHandler) HandleHome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Medingen Backend API",
		"status":  "running",
		"endpoints": fiber.Map{
			"login":        "/api/login",
			"register":     "/api/register",
			"me":           "/api/me",
			"products":     "/api/products",
			"reviews":      "/api/reviews",
			"salts":        "/api/salts",
			"descriptions": "/api/descriptions",
			"config":       "/api/config",
		},
	})
}

// HandleHealth reports that the process is serving requests.
func (h *HomeHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
