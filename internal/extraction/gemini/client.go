package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LevonKG/Smart-Expense-App/internal/expense"
	"github.com/LevonKG/Smart-Expense-App/internal/extraction"
	"google.golang.org/genai"
)

type Config struct {
	APIKey string
	Model  string
}

// Client implements extraction.ModelClient against the Gemini API. The
// response is constrained to the expense triple schema, so a healthy model
// can only answer with `{amount, category, description}` JSON.
type Client struct {
	cfg    Config
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger,
	}
}

func (c *Client) ExtractFields(ctx context.Context, text string) (extraction.Result, []byte, error) {
	if c.cfg.APIKey == "" {
		return extraction.Result{}, nil, extraction.ErrMissingCredential
	}

	start := time.Now()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return extraction.Result{}, nil, fmt.Errorf("create genai client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	}

	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(buildPrompt(text)), config)
	if err != nil {
		return extraction.Result{}, nil, fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return extraction.Result{}, nil, fmt.Errorf("empty response from model")
	}

	// The schema constraint should make fences impossible, but the model
	// occasionally ignores instructions; strip them before parsing.
	clean := cleanModelJSON(rawText)

	var fields extraction.Result
	if err := json.Unmarshal([]byte(clean), &fields); err != nil {
		return extraction.Result{}, []byte(clean), fmt.Errorf("unmarshal model response: %w\nraw response: %s", err, rawText)
	}

	c.logger.Debug("model call completed",
		"model", c.cfg.Model,
		"elapsed_ms", time.Since(start).Milliseconds(),
		"raw_len", len(rawText))

	return fields, []byte(clean), nil
}

// responseSchema mirrors BuildResultJSONSchema in the genai type system:
// an object with amount/category/description, all required.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"amount":      {Type: genai.TypeNumber},
			"category":    {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
		},
		Required: []string{"amount", "category", "description"},
	}
}

func buildPrompt(text string) string {
	return fmt.Sprintf(`Analyze this expense: %q

Instructions:
1. Extract amount (number), category (string) and description (string).
2. Suggested categories: %s.
3. If the currency is not clear, assume it is the local currency.
`, text, strings.Join(expense.SuggestedCategories, ", "))
}

// cleanModelJSON strips Markdown fences and any junk around the JSON
// object when the model ignores the structured-output instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
