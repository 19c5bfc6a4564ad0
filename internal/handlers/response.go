package handlers

import (
	"math"
	"strconv"

	"medingen/internal/apperror"
	"medingen/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// respondError writes err as {"error": message} with the status of its kind.
func respondError(c *fiber.Ctx, err error) error {
	status, message := apperror.StatusOf(err)
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// pageRequest reads page and per_page. Missing or non-integer values use the defaults.
func pageRequest(c *fiber.Ctx, defaultPerPage int) repositories.PageRequest {
	return repositories.NewPageRequest(c.QueryInt("page", 1), c.QueryInt("per_page", defaultPerPage), defaultPerPage)
}

// pageEnvelope renders a page as {name: items, total, pages, current_page, per_page, has_next, has_prev}.
func pageEnvelope[T, V any](name string, page *repositories.Page[T], view func([]T) []V) fiber.Map {
	return fiber.Map{
		name:           view(page.Items),
		"total":        page.Total,
		"pages":        page.Pages(),
		"current_page": page.Page,
		"per_page":     page.PerPage,
		"has_next":     page.HasNext(),
		"has_prev":     page.HasPrev(),
	}
}

// queryFloat returns the query value as a number, or nil when it is missing or
// not a finite number.
func queryFloat(c *fiber.Ctx, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
