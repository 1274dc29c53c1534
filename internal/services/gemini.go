package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/interview-fever/internal/models"
)

type geminiChatModel struct {
	client      *genai.Client
	modelName   string
	temperature float64
	logger      *zap.Logger
}

func NewGeminiChatModel(ctx context.Context, apiKey, model string, temperature float64, logger *zap.Logger) (ChatModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiChatModel{
		client:      client,
		modelName:   model,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// Complete implements ChatModel.
func (g *geminiChatModel) Complete(ctx context.Context, systemPrompt string, history []models.ConversationTurn) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}

	temperature := float32(g.temperature)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}
	if resp == nil {
		return "", errors.New("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.logger.Warn("gemini returned no text", zap.Int("candidates", len(resp.Candidates)))
		return "", errors.New("gemini api returned empty response")
	}

	return text, nil
}

func (g *geminiChatModel) Model() string {
	return g.modelName
}
