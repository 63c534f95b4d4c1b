package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nearbuy/marketplace/internal/model"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

var ErrEmptyResponse = errors.New("model returned no content")

// Config carries the ambient Gemini credential and model selection. An
// empty APIKey is passed through as-is and surfaces as a client error on
// the first call, not at startup.
type Config struct {
	APIKey string
	Model  string `mapstructure:"model"`
}

// Gemini generates admin summaries with the Google GenAI API. The client
// is created per call; there is no retry, timeout enforcement or
// streaming.
type Gemini struct {
	cfg Config
}

func NewGemini(cfg Config) *Gemini {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &Gemini{cfg: cfg}
}

func (g *Gemini) Summarize(ctx context.Context, transactions []model.Transaction, products []model.Product) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: g.cfg.APIKey})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	prompt, err := buildPrompt(transactions, products)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func buildPrompt(transactions []model.Transaction, products []model.Product) (string, error) {
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize transactions: %w", err)
	}

	return fmt.Sprintf(`You are an expert data analyst for an online marketplace.
Analyze the following marketplace data and provide a concise summary with actionable insights.

Data:
- Total Products: %d
- Transaction Data: %s

Please provide the following:
1. A brief overview of the marketplace activity.
2. Identify the best-selling product categories based on completed transactions.
3. Highlight any transactions that seem unusual or might require admin review (e.g., quick cancellations, multiple failed offers).
4. Suggest one improvement for the marketplace based on the data.
`, len(products), data), nil
}
