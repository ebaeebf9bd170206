package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned when no Gemini API key was supplied at
// startup. This is a deployment condition, not a per-document problem, and
// callers surface it with a distinct message.
var ErrNotConfigured = errors.New("gemini API not configured")

const notConfiguredMessage = "Gemini API not configured. Please set GEMINI_API_KEY environment variable."

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService builds the Gemini client once at the composition root.
// An empty API key yields an explicit unconfigured variant instead of a nil
// client checked at call sites.
func NewGeminiService(apiKey string) (GeminiService, error) {
	if apiKey == "" {
		return &unconfiguredGeminiService{}, nil
	}

	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

type unconfiguredGeminiService struct{}

// GenerateText implements GeminiService.
func (g *unconfiguredGeminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return "", ErrNotConfigured
}
