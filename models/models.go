package models

import "time"

// Language is a detected message language tag
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangKannada Language = "kn"
	LangTamil   Language = "ta"
	LangTelugu  Language = "te"
)

// IncomingMessage represents one text message extracted from a webhook delivery
type IncomingMessage struct {
	From       string `json:"from"` // sender phone number
	Text       string `json:"text"`
	MessageID  string `json:"message_id"`
	SenderName string `json:"sender_name"` // falls back to the phone number
}

// Lead represents a qualified customer interaction to be persisted
type Lead struct {
	Timestamp  time.Time `json:"timestamp"`
	SenderName string    `json:"sender_name"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	Reply      string    `json:"reply"`
	Score      int       `json:"score"`
	Language   Language  `json:"language"`
}
