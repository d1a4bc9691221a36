package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"vmfit/internal/observability/metrics"
	"vmfit/internal/resilience/circuitbreaker"
	"vmfit/internal/resilience/retry"
)

// defaultClaudeModel is used when GENAI_MODEL is not set.
const defaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

// Claude implements Generator using Anthropic's Claude API.
// A circuit breaker protects the upstream; retries are composed by callers.
type Claude struct {
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         Config
}

// NewClaude creates a Claude generator from the given configuration.
func NewClaude(cfg Config) *Claude {
	if cfg.Model == "" {
		cfg.Model = defaultClaudeModel
	}

	slog.Info("initialized claude generator",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &Claude{
		client:         anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		circuitBreaker: circuitbreaker.New(circuitbreaker.GenerationAPIConfig("claude-api")),
		config:         cfg,
	}
}

// Name identifies this provider in logs and metrics.
func (c *Claude) Name() string { return "claude" }

// Generate renders one structured completion and validates it against the
// request's output schema. Rate-limit responses surface as retry.ErrRateLimited
// so the caller's retry policy can distinguish them; every other provider
// failure is fatal for this call.
func (c *Claude) Generate(ctx context.Context, req Request) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.doGenerate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(json.RawMessage), nil
}

// doGenerate performs the actual API call without circuit breaker wrapping.
func (c *Claude) doGenerate(ctx context.Context, req Request) (json.RawMessage, error) {
	requestID := uuid.New().String()
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}

	prompt := WithSchema(req.Prompt, req.OutputSchema)

	slog.InfoContext(ctx, "starting structured generation",
		slog.String("request_id", requestID),
		slog.String("provider", "claude"),
		slog.String("flow", req.Flow),
		slog.Int("prompt_length", len(prompt)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.RecordGeneration("claude", req.Flow, false, duration)
		slog.ErrorContext(ctx, "generation failed",
			slog.String("request_id", requestID),
			slog.String("flow", req.Flow),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))

		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("claude api: %w", retry.ErrRateLimited)
		}
		return nil, fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		metrics.RecordGeneration("claude", req.Flow, false, duration)
		return nil, ErrEmptyResponse
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		metrics.RecordGeneration("claude", req.Flow, false, duration)
		return nil, fmt.Errorf("claude api returned unexpected content type")
	}

	doc, err := parseStructured(textBlock.Text, req.OutputSchema)
	if err != nil {
		metrics.RecordGeneration("claude", req.Flow, false, duration)
		slog.WarnContext(ctx, "generation response rejected",
			slog.String("request_id", requestID),
			slog.String("flow", req.Flow),
			slog.Any("error", err))
		return nil, err
	}

	metrics.RecordGeneration("claude", req.Flow, true, duration)
	slog.InfoContext(ctx, "structured generation completed",
		slog.String("request_id", requestID),
		slog.String("flow", req.Flow),
		slog.Int("response_bytes", len(doc)),
		slog.Duration("duration", duration))

	return doc, nil
}
