package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"vmfit/internal/observability/metrics"
	"vmfit/internal/resilience/circuitbreaker"
	"vmfit/internal/resilience/retry"
)

// defaultOpenAIModel is used when GENAI_MODEL is not set.
const defaultOpenAIModel = openai.GPT4oMini

// OpenAI implements Generator using OpenAI's chat completion API.
// It is the alternate adapter behind the same structured-generation contract
// as the Claude implementation.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         Config
}

// NewOpenAI creates an OpenAI generator from the given configuration.
func NewOpenAI(cfg Config) *OpenAI {
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}

	slog.Info("initialized openai generator",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &OpenAI{
		client:         openai.NewClient(cfg.APIKey),
		circuitBreaker: circuitbreaker.New(circuitbreaker.GenerationAPIConfig("openai-api")),
		config:         cfg,
	}
}

// Name identifies this provider in logs and metrics.
func (o *OpenAI) Name() string { return "openai" }

// Generate renders one structured completion and validates it against the
// request's output schema. See Claude.Generate for the error contract.
func (o *OpenAI) Generate(ctx context.Context, req Request) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	result, err := o.circuitBreaker.Execute(func() (interface{}, error) {
		return o.doGenerate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(json.RawMessage), nil
}

func (o *OpenAI) doGenerate(ctx context.Context, req Request) (json.RawMessage, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = o.config.MaxTokens
	}

	prompt := WithSchema(req.Prompt, req.OutputSchema)

	slog.InfoContext(ctx, "starting structured generation",
		slog.String("provider", "openai"),
		slog.String("flow", req.Flow),
		slog.Int("prompt_length", len(prompt)))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.RecordGeneration("openai", req.Flow, false, duration)
		slog.ErrorContext(ctx, "generation failed",
			slog.String("flow", req.Flow),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))

		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("openai api: %w", retry.ErrRateLimited)
		}
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		metrics.RecordGeneration("openai", req.Flow, false, duration)
		return nil, ErrEmptyResponse
	}

	doc, err := parseStructured(resp.Choices[0].Message.Content, req.OutputSchema)
	if err != nil {
		metrics.RecordGeneration("openai", req.Flow, false, duration)
		return nil, err
	}

	metrics.RecordGeneration("openai", req.Flow, true, duration)
	slog.InfoContext(ctx, "structured generation completed",
		slog.String("flow", req.Flow),
		slog.Int("response_bytes", len(doc)),
		slog.Duration("duration", duration))

	return doc, nil
}
