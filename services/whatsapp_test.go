package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendText(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL, "test-token", "55500042")
	if err := client.SendText(context.Background(), "911234567890", "hello"); err != nil {
		t.Fatalf("SendText returned error: %v", err)
	}

	if gotPath != "/55500042/messages" {
		t.Errorf("path = %q, want /55500042/messages", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPayload["messaging_product"] != "whatsapp" {
		t.Errorf("messaging_product = %v", gotPayload["messaging_product"])
	}
	if gotPayload["recipient_type"] != "individual" {
		t.Errorf("recipient_type = %v", gotPayload["recipient_type"])
	}
	if gotPayload["to"] != "911234567890" {
		t.Errorf("to = %v", gotPayload["to"])
	}
	text, _ := gotPayload["text"].(map[string]interface{})
	if text["body"] != "hello" {
		t.Errorf("text.body = %v", text["body"])
	}
}

func TestSendTextErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL, "bad-token", "55500042")
	if err := client.SendText(context.Background(), "911234567890", "hello"); err == nil {
		t.Fatal("SendText returned nil error for a 401 response")
	}
}
