package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/config"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/handlers"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, settings *config.Settings, commands *handlers.CommandHandler, health *handlers.HealthHandler) {

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Lifting Bot!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":  "/health",
				"webhook": "/webhook/events",
				"test":    "/test/events",
			},
		})
	})

	// Health check
	app.Get("/health", health.Check)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	// Platform webhook - ENVIRONMENT-AWARE VALIDATION
	if settings.SkipWebhookValidation() {
		// Development: skip validation for ngrok
		webhooks.Post("/events", commands.HandleEvent)
		config.Logger.Warn("⚠️  Webhook signature validation DISABLED for development")
	} else {
		// Production: validate webhook signature
		webhooks.Post("/events", middleware.ValidateSignature(settings.SigningSecret), commands.HandleEvent)
	}

	// ========== TEST ROUTES (Development Only) ==========
	if settings.Environment == "development" {
		app.Post("/test/events", commands.HandleTestEvent)
	}
}
