package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"medingen/internal/config"
	"medingen/internal/database"
	"medingen/internal/repositories"
	"medingen/internal/server"
	"medingen/internal/services"
	"medingen/pkg/logger"
	"medingen/pkg/metrics"
	"medingen/pkg/rabbitmq"

	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	// --- Database ---
	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	if cfg.Database.Seed {
		if err := database.Seed(context.Background(), db, log); err != nil {
			return err
		}
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Exchange: cfg.RabbitMQ.Exchange})
		if err != nil {
			// Events are best effort; the API works without a broker.
			log.Warn("RabbitMQ unavailable, events disabled", zap.Error(err))
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	saltRepo := repositories.NewGORMSaltRepository(db)
	descriptionRepo := repositories.NewGORMDescriptionRepository(db)
	configRepo := repositories.NewGORMAppConfigRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWT, cfg.BcryptCost, publisher, log)

	app := server.New(server.Services{
		Auth:         authService,
		Products:     services.NewProductService(productRepo),
		Reviews:      services.NewReviewService(reviewRepo, productRepo),
		Salts:        services.NewSaltService(saltRepo),
		Descriptions: services.NewDescriptionService(descriptionRepo),
		Config:       services.NewConfigService(configRepo),
	}, server.Options{
		AppName:        cfg.ServiceName,
		CORSOrigins:    cfg.CORSOrigins,
		ProtectedPaths: cfg.ProtectedPaths,
		Metrics:        metrics.New("medingen"),
		Logger:         log,
	})

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.AppPort), zap.String("env", cfg.AppEnv))
		serverErr <- app.Listen(cfg.AppPort)
	}()

	// Wait for interrupt signal to gracefully shut down the server
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("error during Fiber shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
	return nil
}
