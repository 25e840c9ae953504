package quizgen

import (
	"context"
	"fmt"
	"time"

	"github.com/tunequiz/tunequiz/internal/config"
	"google.golang.org/genai"
)

// Provider abstracts the text-generation backend.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	geminiModel       = "gemini-2.0-flash"
	generationTimeout = 30 * time.Second
	generationRetries = 1
)

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	temperature := float32(0.7)
	genConfig := &genai.GenerateContentConfig{Temperature: &temperature}

	var lastErr error
	for attempt := 0; attempt <= generationRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, generationTimeout)
		result, err := p.client.Models.GenerateContent(callCtx, geminiModel, genai.Text(prompt), genConfig)
		cancel()
		if err != nil {
			log.WithError(err).Warnf("Gemini call failed (attempt %d)", attempt+1)
			lastErr = err
			continue
		}
		return result.Text(), nil
	}

	return "", fmt.Errorf("text generation failed: %w", lastErr)
}
