package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"whatsapp-lead-bot/models"
)

// FallbackReply is sent to the customer whenever the completion call fails
const FallbackReply = "Thank you for your interest! Please share more details about your needs, and we'll help you find the perfect solution."

// systemPrompts holds the per-language sales assistant instructions.
// Unknown tags fall back to the English entry.
var systemPrompts = map[models.Language]string{
	models.LangEnglish: `You are a helpful sales assistant for Priyadarshini Filaments. You help customers with agricultural products including Agrotech, Hometech, Aquatech, Indutech, and Packtech. Be professional, conversational, and helpful. Ask about their needs and provide relevant product information. Keep responses concise (under 160 characters for WhatsApp).`,
	models.LangHindi:   `आप Priyadarshini Filaments के लिए एक सहायक विक्रय प्रतिनिधि हैं। कृपया पेशेदार और मैत्रीपूर्ण रहें। उनके उत्पाद की रुचि और कृषि आवश्यकताओं के बारे में पूछें। संक्षिप्त उत्तर दें।`,
	models.LangKannada: `ನೀವು Priyadarshini Filaments ಗಾಗಿ ಸಹಾಯಕ ಮಾರಾಟ ಪ್ರತಿನಿಧಿ. ವೃತ್ತಿಪರ ಮತ್ತು ಸಹಾಯಕವಾಗಿ ಇರಿ. ಸಂಕ್ಷಿಪ್ತ ಉತ್ತರ ನೀಡಿ।`,
	models.LangTamil:   `நீங்கள் Priyadarshini Filaments க்கான உதவிக் கொடுக்கும் விற்பனை பிரதிநிதி. தொழிலாக மற்றும் உரையாடல் நிலையில் இருக்கவும். சுருக்கமான பதில் கொடுக்கவும்।`,
	models.LangTelugu:  `మీరు Priyadarshini Filaments కోసం సహాయక విక్రయ ప్రతినిధి. నిపుణమైన మరియు సంభాషణ కలిగిఉండండి. సంక్షిప్త సమాధానం ఇవ్వండి।`,
}

// AIClient wraps the OpenAI chat completion API
type AIClient struct {
	client *openai.Client
}

// NewAIClient creates a completion client with a bounded HTTP timeout
func NewAIClient(apiKey string) *AIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{
		Timeout: 45 * time.Second,
	}
	return &AIClient{client: openai.NewClientWithConfig(cfg)}
}

// Reply requests a single stateless completion for a customer message. The
// max-token cap keeps replies within WhatsApp's practical message length.
func (a *AIClient) Reply(ctx context.Context, userMessage string, language models.Language, senderName string) (string, error) {
	systemPrompt, ok := systemPrompts[language]
	if !ok {
		systemPrompt = systemPrompts[models.LangEnglish]
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Customer name: %s\nMessage: %s", senderName, userMessage),
			},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response content from OpenAI")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	slog.Info("AI reply generated",
		"language", language,
		"promptTokens", resp.Usage.PromptTokens,
		"completionTokens", resp.Usage.CompletionTokens,
	)
	return reply, nil
}
