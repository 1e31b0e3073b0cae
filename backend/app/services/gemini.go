package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"
)

// GeminiGenerator produces summaries with the Gemini API. The client is created
// on first use so a missing key only fails summary requests.
type GeminiGenerator struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiGenerator(baseURL, model, apiKey string, timeout time.Duration) *GeminiGenerator {
	return &GeminiGenerator{BaseURL: baseURL, Model: model, APIKey: apiKey, Timeout: timeout}
}

func (g *GeminiGenerator) genaiClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	if g.APIKey == "" {
		return nil, errors.New("gemini: api key not configured")
	}
	cfg := &genai.ClientConfig{APIKey: g.APIKey, Backend: genai.BackendGeminiAPI}
	if g.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	g.client = client
	return client, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := g.genaiClient(ctx)
	if err != nil {
		return "", err
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}
	resp, err := client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}
