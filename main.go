package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"whatsapp-lead-bot/config"
	"whatsapp-lead-bot/handlers"
	"whatsapp-lead-bot/services"
	"whatsapp-lead-bot/webhooks"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize clients
	ai := services.NewAIClient(cfg.OpenAIAPIKey)
	sender := services.NewWhatsAppClient(cfg.WhatsAppAPIURL, cfg.AccessToken, cfg.PhoneNumberID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	leads, err := services.NewLeadStore(ctx, cfg.GoogleCredentials, cfg.SheetsID)
	if err != nil {
		slog.Error("Failed to initialize Google Sheets client", "error", err)
		// Continue anyway - leads degrade to log-only
		leads = &services.LeadStore{}
	}

	processor := handlers.NewProcessor(ai, sender, leads)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Register webhook routes
	webhooks.RegisterRoutes(app, cfg, processor)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"webhook":   "Ready",
		})
	})

	// Start server
	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
