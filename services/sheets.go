package services

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"whatsapp-lead-bot/models"
)

const leadRange = "Leads!A:G"

// LeadStore appends qualified leads to a Google Sheet. When credentials or the
// sheet id are absent the store is unconfigured and logs leads instead of
// persisting them.
type LeadStore struct {
	svc     *sheets.Service
	sheetID string
}

// NewLeadStore builds the store from a service-account credentials JSON blob.
// Empty credentials or sheet id yield an unconfigured store, not an error.
func NewLeadStore(ctx context.Context, credentialsJSON, sheetID string) (*LeadStore, error) {
	if credentialsJSON == "" || sheetID == "" {
		slog.Info("Google Sheets not configured, leads will be logged only")
		return &LeadStore{}, nil
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, err
	}

	return &LeadStore{svc: svc, sheetID: sheetID}, nil
}

// Configured reports whether the store has a live Sheets client
func (s *LeadStore) Configured() bool {
	return s.svc != nil
}

// Record appends one lead row. Appends are not deduplicated: recording the
// same lead twice produces two rows.
func (s *LeadStore) Record(ctx context.Context, lead models.Lead) error {
	if !s.Configured() {
		slog.Info("Lead logged (store not configured)",
			"name", lead.SenderName,
			"phone", lead.Phone,
			"score", lead.Score,
			"language", lead.Language,
		)
		return nil
	}

	row := []interface{}{
		lead.Timestamp.Format(time.RFC3339),
		lead.SenderName,
		lead.Phone,
		lead.Message,
		lead.Reply,
		lead.Score,
		string(lead.Language),
	}

	_, err := s.svc.Spreadsheets.Values.Append(s.sheetID, leadRange, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return err
	}

	slog.Info("Lead saved to Google Sheets", "name", lead.SenderName, "score", lead.Score)
	return nil
}
