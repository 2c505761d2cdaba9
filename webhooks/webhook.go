package webhooks

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"whatsapp-lead-bot/config"
	"whatsapp-lead-bot/models"
)

// MessageProcessor runs the pipeline for one extracted message
type MessageProcessor interface {
	HandleMessage(msg models.IncomingMessage)
}

func RegisterRoutes(app *fiber.App, cfg *config.Config, processor MessageProcessor) {
	webhook := app.Group("/webhook")

	// Webhook verification endpoint
	webhook.Get("/", verifyWebhook(cfg))

	// Webhook event handler
	webhook.Post("/", handleWebhookEvent(processor))
}

// verifyWebhook handles the Cloud API subscription handshake
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "" || token == "" {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		if mode == "subscribe" && token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "mode", mode)
		return c.SendStatus(fiber.StatusForbidden)
	}
}

// handleWebhookEvent accepts incoming webhook deliveries
func handleWebhookEvent(processor MessageProcessor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WebhookEvent
		if err := c.BodyParser(&body); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		// Payloads without the top-level marker are not ours
		if body.Object == "" {
			return c.SendStatus(fiber.StatusNotFound)
		}

		// Acknowledge immediately; at-least-once delivery means processing
		// outcome must not influence the response
		go processDelivery(body, processor)

		return c.SendString("EVENT_RECEIVED")
	}
}

// processDelivery extracts messages from a delivery and runs the pipeline for
// each. Only the first entry and first change carry messages.
func processDelivery(body WebhookEvent, processor MessageProcessor) {
	if len(body.Entry) == 0 || len(body.Entry[0].Changes) == 0 {
		return
	}

	value := body.Entry[0].Changes[0].Value

	for _, message := range value.Messages {
		text := ""
		if message.Text != nil {
			text = message.Text.Body
		}

		senderName := message.From
		if len(value.Contacts) > 0 && value.Contacts[0].Profile.Name != "" {
			senderName = value.Contacts[0].Profile.Name
		}

		slog.Info("Message received",
			"sender", senderName,
			"phone", message.From,
			"messageID", message.ID,
		)

		processor.HandleMessage(models.IncomingMessage{
			From:       message.From,
			Text:       text,
			MessageID:  message.ID,
			SenderName: senderName,
		})
	}
}
