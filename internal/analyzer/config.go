package analyzer

import "time"

type Config struct {
	APIKey     string
	Model      string
	MaxTokens  int64
	Timeout    time.Duration
	MaxRetries int
	// BaseURL overrides the Anthropic API endpoint when set.
	BaseURL string
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:     apiKey,
		Model:      "claude-opus-4-6",
		MaxTokens:  2048,
		Timeout:    60 * time.Second,
		MaxRetries: 3,
	}
}
