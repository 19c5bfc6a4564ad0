package handlers

import (
	"medingen/internal/models"
	"medingen/internal/repositories"
	"medingen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Get("/:id", h.HandleGet)
}

// HandleList lists products with optional search, brand, category,
// generic_name, exclude_id, min_price and max_price filters.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Search:      c.Query("search"),
		Brand:       c.Query("brand"),
		Category:    c.Query("category"),
		GenericName: c.Query("generic_name"),
		ExcludeID:   c.Query("exclude_id"),
		MinPrice:    queryFloat(c, "min_price"),
		MaxPrice:    queryFloat(c, "max_price"),
	}

	page, err := h.productService.ListProducts(c.UserContext(), filter, pageRequest(c, services.DefaultPerPage))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(pageEnvelope("products", page, models.NewProductViews))
}

// HandleGet returns one product with its salts, reviews and descriptions.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.productService.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"product": models.NewProductDetailView(product)})
}
