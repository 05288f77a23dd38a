package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/backend"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/catalog"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/config"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/coordinator"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/handlers"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/routes"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/storage"
)

func main() {
	// Load .env file for local development
	config.LoadEnv()
	config.InitLogger()

	settings, err := config.Load()
	if err != nil {
		config.Logger.Fatalf("❌ Configuration error: %v", err)
	}

	// Initialize storage
	config.Logger.Info("⚠️  Using in-memory session storage (sessions reset on restart)")
	store := storage.NewMemorySessionStore()

	// Backend client and exercise catalog
	client := backend.New(settings.BackendURL, settings.BackendToken)
	seed := config.SeedExercises(settings.CatalogSeedFile)
	cache := catalog.New(client, seed)

	// Warm the catalog before serving traffic; the seed stays in place if
	// the backend is not reachable yet.
	if err := cache.Refresh(context.Background()); err != nil {
		config.Logger.Warn("⚠️  Serving seed catalog until the backend comes up")
	}
	cache.Run(config.CatalogRefreshInterval)

	// Wire the coordinator and handlers
	coord := coordinator.New(store, client, cache)
	commandHandler := handlers.NewCommandHandler(coord)
	healthHandler := handlers.NewHealthHandler("1.0.0", store, cache, settings.BackendURL)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Lifting Bot v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Setup routes
	routes.SetupRoutes(app, settings, commandHandler, healthHandler)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		config.Logger.Info("🛑 Gracefully shutting down...")
		config.Logger.Info("⏹️  Stopping catalog refresh...")
		cache.Stop()
		config.Logger.Info("⏹️  Shutting down server...")
		_ = app.Shutdown()
	}()

	// Start server
	config.Logger.Info("========================================")
	config.Logger.Infof("🚀 Lifting Bot starting on port %s", settings.Port)
	config.Logger.Infof("🌍 Environment: %s", settings.Environment)
	config.Logger.Infof("🏋️  Backend: %s", settings.BackendURL)
	config.Logger.Infof("📚 Catalog: %d exercises loaded", cache.Size())
	config.Logger.Info("========================================")

	config.Logger.Fatal(app.Listen(":" + settings.Port))
}
