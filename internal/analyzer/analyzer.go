package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/invopop/jsonschema"
	"github.com/rs/zerolog/log"
)

type Suggestions struct {
	Summary         string   `json:"summary" jsonschema:"description=Short narrative of what changed and the most likely reasons"`
	LikelyCauses    []string `json:"likelyCauses" jsonschema:"description=Plausible causes of the flagged changes"`
	Recommendations []string `json:"recommendations" jsonschema:"description=Practical optimization ideas"`
	Timestamp       string   `json:"timestamp" jsonschema:"description=ISO 8601 timestamp of the analysis"`
}

// Summarize sends prompt to the model and returns its structured
// suggestions. Transient API failures are retried with backoff by the
// client, bounded by cfg.MaxRetries and the overall cfg.Timeout.
func Summarize(ctx context.Context, prompt string, cfg Config) (*Suggestions, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	outputSchema := generateSchema(&Suggestions{})

	started := time.Now()
	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cfg.Model),
		MaxTokens:   cfg.MaxTokens,
		Temperature: anthropic.Float(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		OutputConfig: anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{
				Schema: outputSchema,
			},
		},
	})
	if err != nil {
		return nil, &ExternalServiceError{Op: "request", Err: err}
	}

	log.Info().
		Str("model", cfg.Model).
		Dur("elapsed", time.Since(started)).
		Msg("Summary received")

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, &ExternalServiceError{Op: "response", Err: errors.New("no text content in anthropic response")}
	}

	var result Suggestions
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		return nil, &ExternalServiceError{Op: "response", Err: err}
	}

	if result.Timestamp == "" {
		result.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	return &result, nil
}

// Outcome is delivered by SummarizeAsync once the model answers or fails.
type Outcome struct {
	Suggestions *Suggestions
	Err         error
}

// SummarizeAsync runs Summarize in the background so callers can present
// the comparison before the narrative is ready. The channel yields one
// Outcome and is then closed.
func SummarizeAsync(ctx context.Context, prompt string, cfg Config) <-chan Outcome {
	out := make(chan Outcome, 1)

	go func() {
		defer close(out)
		s, err := Summarize(ctx, prompt, cfg)
		out <- Outcome{Suggestions: s, Err: err}
	}()

	return out
}

func generateSchema(v any) map[string]any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := r.Reflect(v)
	b, _ := json.Marshal(s)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}
