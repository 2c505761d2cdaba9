package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// WhatsAppClient sends messages through the WhatsApp Cloud API
type WhatsAppClient struct {
	apiURL        string
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
}

// textMessage is the Cloud API send payload for a plain text message
type textMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

func NewWhatsAppClient(apiURL, accessToken, phoneNumberID string) *WhatsAppClient {
	return &WhatsAppClient{
		apiURL:        apiURL,
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SendText sends one text message to a recipient phone number
func (w *WhatsAppClient) SendText(ctx context.Context, to, body string) error {
	url := fmt.Sprintf("%s/%s/messages", w.apiURL, w.phoneNumberID)

	payload := textMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.accessToken)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		slog.Error("Failed to send WhatsApp message", "status", resp.StatusCode, "body", string(respBody))
		return fmt.Errorf("failed to send message: %s", resp.Status)
	}

	slog.Info("Message sent", "to", to)
	return nil
}
