package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/interview-fever/internal/models"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	groqBaseURL = "https://api.groq.com/openai/v1"
)

// ChatModel sends one conversation to a hosted model and returns its reply.
type ChatModel interface {
	Complete(ctx context.Context, systemPrompt string, history []models.ConversationTurn) (string, error)
	Model() string
}

type ChatModelConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
}

// DefaultModel returns the model used when none is configured for provider.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGemini:
		return "gemini-2.5-flash"
	default:
		return "llama3-8b-8192"
	}
}

func NewChatModel(ctx context.Context, cfg ChatModelConfig, logger *zap.Logger) (ChatModel, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderGroq
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%s api key is required", provider)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel(provider)
	}

	switch provider {
	case ProviderGroq:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = groqBaseURL
		}
		return NewOpenAIChatModel(cfg.APIKey, baseURL, model, cfg.Temperature, logger), nil
	case ProviderOpenAI:
		return NewOpenAIChatModel(cfg.APIKey, cfg.BaseURL, model, cfg.Temperature, logger), nil
	case ProviderGemini:
		return NewGeminiChatModel(ctx, cfg.APIKey, model, cfg.Temperature, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
