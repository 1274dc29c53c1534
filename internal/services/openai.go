package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"alfredoptarigan/interview-fever/internal/models"
)

// openAIChatModel talks to any OpenAI-compatible chat completions endpoint,
// Groq included.
type openAIChatModel struct {
	client      openai.Client
	model       string
	temperature float64
	logger      *zap.Logger
}

func NewOpenAIChatModel(apiKey, baseURL, model string, temperature float64, logger *zap.Logger) ChatModel {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &openAIChatModel{
		client:      openai.NewClient(opts...),
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Complete implements ChatModel.
func (o *openAIChatModel) Complete(ctx context.Context, systemPrompt string, history []models.ConversationTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, turn := range history {
		if turn.Role == models.RoleAssistant {
			messages = append(messages, openai.AssistantMessage(turn.Content))
			continue
		}
		messages = append(messages, openai.UserMessage(turn.Content))
	}

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    messages,
		Temperature: openai.Float(o.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no choices in chat completion")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		o.logger.Warn("chat completion returned no text",
			zap.String("finish_reason", completion.Choices[0].FinishReason))
		return "", errors.New("chat completion returned empty response")
	}

	return text, nil
}

func (o *openAIChatModel) Model() string {
	return o.model
}
