package handlers

import (
	"context"
	"log/slog"
	"time"

	"whatsapp-lead-bot/models"
	"whatsapp-lead-bot/services"
)

// AIClient produces a reply for a customer message
type AIClient interface {
	Reply(ctx context.Context, userMessage string, language models.Language, senderName string) (string, error)
}

// MessageSender delivers a text message to a phone number
type MessageSender interface {
	SendText(ctx context.Context, to, body string) error
}

// LeadRecorder persists a qualified lead
type LeadRecorder interface {
	Record(ctx context.Context, lead models.Lead) error
}

// Processor runs the per-message pipeline: language detection, AI reply, lead
// scoring, reply delivery and conditional lead recording. Failures are logged
// at each step and never propagate past this layer.
type Processor struct {
	AI     AIClient
	Sender MessageSender
	Leads  LeadRecorder
}

func NewProcessor(ai AIClient, sender MessageSender, leads LeadRecorder) *Processor {
	return &Processor{AI: ai, Sender: sender, Leads: leads}
}

// HandleMessage processes one incoming message end to end
func (p *Processor) HandleMessage(msg models.IncomingMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	slog.Info("Handling message",
		"sender", msg.SenderName,
		"phone", msg.From,
		"messageID", msg.MessageID,
		"message", msg.Text,
	)

	// 1. Detect language
	language := services.DetectLanguage(msg.Text)
	slog.Info("Detected language", "language", language, "messageID", msg.MessageID)

	// 2. Get AI reply, substituting the fallback on any failure
	reply, err := p.AI.Reply(ctx, msg.Text, language, msg.SenderName)
	if err != nil {
		slog.Error("AI reply failed, using fallback", "error", err, "messageID", msg.MessageID)
		reply = services.FallbackReply
	}

	// 3. Score the lead
	score := services.ScoreLead(msg.Text)
	slog.Info("Lead scored", "score", score, "messageID", msg.MessageID)

	// 4. Send the reply; a failed send does not stop the pipeline
	if err := p.Sender.SendText(ctx, msg.From, reply); err != nil {
		slog.Error("Failed to send reply", "error", err, "phone", msg.From, "messageID", msg.MessageID)
	}

	// 5. Record the lead when it qualifies
	if score >= services.QualifyThreshold {
		lead := models.Lead{
			Timestamp:  time.Now().UTC(),
			SenderName: msg.SenderName,
			Phone:      msg.From,
			Message:    msg.Text,
			Reply:      reply,
			Score:      score,
			Language:   language,
		}
		if err := p.Leads.Record(ctx, lead); err != nil {
			slog.Error("Failed to record lead", "error", err, "phone", msg.From, "messageID", msg.MessageID)
		}
	}
}
