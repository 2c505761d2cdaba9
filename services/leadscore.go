package services

import "strings"

const (
	baseScore        = 10
	maxScore         = 100
	QualifyThreshold = 50
)

// productKeywords maps product and intent keywords (English plus regional
// script variants) to their score contribution
var productKeywords = map[string]int{
	"agrotech": 20, "hometech": 20, "aquatech": 20,
	"indutech": 20, "packtech": 20, "weed": 15, "mulch": 15,
	"farm": 10, "agriculture": 15, "crop": 15,
	"விவசாய": 15, "खेत": 15, "ಕೃಷಿ": 15, "కృషి": 15,
}

// ScoreLead computes a heuristic lead score in [10,100] for a message.
// Keyword matches are independent and additive; the score is clamped at 100.
func ScoreLead(message string) int {
	score := baseScore
	messageLower := strings.ToLower(message)

	for keyword, points := range productKeywords {
		if strings.Contains(messageLower, keyword) {
			score += points
		}
	}

	// Bonus points for specific buying signals
	if strings.Contains(messageLower, "price") || strings.Contains(messageLower, "cost") {
		score += 15
	}
	if strings.Contains(messageLower, "delivery") || strings.Contains(messageLower, "shipping") {
		score += 10
	}
	if strings.Contains(messageLower, "bulk") || strings.Contains(messageLower, "wholesale") {
		score += 20
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
