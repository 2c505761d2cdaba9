package services

import "testing"

func TestScoreLeadBase(t *testing.T) {
	if got := ScoreLead(""); got != 10 {
		t.Errorf("empty message score = %d, want 10", got)
	}
	if got := ScoreLead("hello there"); got != 10 {
		t.Errorf("keyword-free message score = %d, want 10", got)
	}
}

func TestScoreLeadKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
	}{
		{"single product keyword", "tell me about agrotech", 30},
		{"price bonus", "what is the price", 25},
		{"price and cost count once", "price and cost", 25},
		{"delivery bonus", "delivery options?", 20},
		{"bulk bonus", "wholesale enquiry", 30},
		{"case insensitive", "AGROTECH PRICE", 45},
		{"hindi keyword", "खेत की जानकारी", 25},
		{"bulk price product inquiry", "bulk order price for agrotech", 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreLead(tt.message); got != tt.want {
				t.Errorf("ScoreLead(%q) = %d, want %d", tt.message, got, tt.want)
			}
		})
	}
}

func TestScoreLeadMonotonic(t *testing.T) {
	messages := []string{
		"hello",
		"hello agrotech",
		"hello agrotech mulch",
		"hello agrotech mulch price",
		"hello agrotech mulch price bulk",
	}

	prev := 0
	for _, m := range messages {
		got := ScoreLead(m)
		if got < prev {
			t.Errorf("ScoreLead(%q) = %d, less than previous %d", m, got, prev)
		}
		prev = got
	}
}

func TestScoreLeadClamped(t *testing.T) {
	everything := "agrotech hometech aquatech indutech packtech weed mulch farm agriculture crop price delivery bulk"
	if got := ScoreLead(everything); got != 100 {
		t.Errorf("ScoreLead(all keywords) = %d, want 100", got)
	}
}
