package services

import "whatsapp-lead-bot/models"

// scriptRange is an inclusive Unicode code point range for one script
type scriptRange struct {
	lo, hi rune
	lang   models.Language
}

// Checked in fixed priority order: a message mixing scripts resolves to the
// first matching range, not the dominant one.
var scriptRanges = []scriptRange{
	{0x0900, 0x097F, models.LangHindi},   // Devanagari
	{0x0C80, 0x0CFF, models.LangKannada}, // Kannada
	{0x0B80, 0x0BFF, models.LangTamil},   // Tamil
	{0x0C00, 0x0C7F, models.LangTelugu},  // Telugu
}

// DetectLanguage returns the language tag for a message based on the scripts
// it contains, defaulting to English
func DetectLanguage(text string) models.Language {
	for _, sr := range scriptRanges {
		for _, r := range text {
			if r >= sr.lo && r <= sr.hi {
				return sr.lang
			}
		}
	}
	return models.LangEnglish
}
