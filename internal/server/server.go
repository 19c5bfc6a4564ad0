// Package server assembles the Fiber application.
package server

import (
	"errors"
	"strings"

	"medingen/internal/config"
	"medingen/internal/handlers"
	"medingen/internal/middleware"
	"medingen/internal/services"
	"medingen/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// Services are the application services the routes are backed by.
type Services struct {
	Auth         *services.AuthService
	Products     *services.ProductService
	Reviews      *services.ReviewService
	Salts        *services.SaltService
	Descriptions *services.DescriptionService
	Config       *services.ConfigService
}

// Options tune the HTTP surface.
type Options struct {
	AppName string
	// CORSOrigins falls back to config.DefaultCORSOrigins when empty.
	CORSOrigins    []string
	ProtectedPaths []string
	// Metrics is optional; when nil no /metrics endpoint is served.
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// New builds the app with its middleware chain and every route registered.
func New(svc Services, opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
	}
	app.Use(recover.New())
	// An empty list would make the cors middleware allow every origin.
	origins := strings.Join(opts.CORSOrigins, ",")
	if strings.Trim(origins, ", ") == "" {
		origins = config.DefaultCORSOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if len(opts.ProtectedPaths) > 0 {
		app.Use(middleware.ProtectPaths(opts.ProtectedPaths, middleware.AuthRequired(svc.Auth)))
	}

	if opts.Metrics != nil {
		app.Get("/metrics", opts.Metrics.Handler())
	}
	handlers.NewHomeHandler().RegisterRoutes(app)

	api := app.Group("/api")
	handlers.NewAuthHandler(svc.Auth).RegisterRoutes(api)
	handlers.NewProductHandler(svc.Products).RegisterRoutes(api)
	handlers.NewReviewHandler(svc.Reviews).RegisterRoutes(api)
	handlers.NewSaltHandler(svc.Salts).RegisterRoutes(api)
	handlers.NewDescriptionHandler(svc.Descriptions).RegisterRoutes(api)
	handlers.NewConfigHandler(svc.Config).RegisterRoutes(api)

	return app
}

// errorHandler renders errors that escape the handlers, such as unknown routes
// and recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
