package classifier

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// LLM classifies health statements with Claude instead of a trained model
type LLM struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewLLM creates a new LLM-based classifier.
// Returns nil if ANTHROPIC_API_KEY is not set.
func NewLLM() *LLM {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &LLM{client: client, model: anthropic.ModelClaude3_5Haiku20241022}
}

// Classify asks the model for a single label and returns it unchecked, so
// an out-of-range answer reaches the caller as-is.
func (c *LLM) Classify(ctx context.Context, text string) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("LLM classifier not initialized (missing ANTHROPIC_API_KEY)")
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 5,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(healthPrompt(text))),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("Claude API error: %w", err)
	}

	var responseText string
	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	return parseLabel(responseText)
}

func healthPrompt(text string) string {
	return fmt.Sprintf(`Someone was asked "How are you feeling today?" and answered:

%s

Reply with a single digit: 0 if they sound healthy, 1 if they sound unhealthy.
Return ONLY the digit, no other text.`, text)
}

func parseLabel(s string) (int, error) {
	s = strings.TrimSpace(s)
	label, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse Claude response %q: %w", s, err)
	}
	return label, nil
}
