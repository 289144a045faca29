package generation

import (
	"context"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"rfpforge/internal/platform/metrics"
	dErrors "rfpforge/pkg/domain-errors"
)

// Near-deterministic decoding: two calls with identical input should be
// semantically consistent, though exact reproducibility is not guaranteed.
const temperature = 0.2

// maxOutputTokens bounds the completion; generous for the 1500-word target.
const maxOutputTokens = 4096

// completer is the slice of the OpenAI client the adapter uses; tests swap in
// a stub.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Adapter is the generation client. A nil inner client (no credential)
// reports ErrUnavailable on every call.
type Adapter struct {
	client  completer
	model   string
	timeout time.Duration
	sem     *semaphore.Weighted
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type AdapterOption func(*Adapter)

func WithTimeout(d time.Duration) AdapterOption {
	return func(a *Adapter) { a.timeout = d }
}

// WithMaxInFlight caps concurrent outstanding calls to the provider.
func WithMaxInFlight(n int64) AdapterOption {
	return func(a *Adapter) { a.sem = semaphore.NewWeighted(n) }
}

func WithMetrics(m *metrics.Metrics) AdapterOption {
	return func(a *Adapter) { a.metrics = m }
}

// NewAdapter builds the adapter. An empty apiKey disables remote generation.
func NewAdapter(apiKey, model string, logger *slog.Logger, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		model:   model,
		timeout: 45 * time.Second,
		sem:     semaphore.NewWeighted(4),
		tracer:  otel.Tracer("rfpforge/generation"),
		logger:  logger,
	}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate performs one prompt/completion round trip. It does not retry: the
// call is user-triggered and synchronous, and the caller substitutes the
// deterministic fallback on failure.
func (a *Adapter) Generate(ctx context.Context, req Request) (string, error) {
	if a.client == nil {
		return "", dErrors.Wrap(ErrUnavailable, dErrors.CodeUnavailable, "generation provider not configured")
	}

	if err := a.sem.Acquire(ctx, 1); err != nil {
		return "", dErrors.Wrap(ErrFailed, dErrors.CodeUnavailable, "generation capacity unavailable")
	}
	defer a.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	ctx, span := a.tracer.Start(ctx, "generation.complete",
		trace.WithAttributes(
			attribute.String("gen.model", a.model),
			attribute.Int("gen.compliance_count", len(req.ComplianceLabels)),
		))
	defer span.End()

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: temperature,
		MaxTokens:   maxOutputTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
	})
	a.metrics.ObserveGeneration(time.Since(start))
	if err != nil {
		span.RecordError(err)
		a.logger.WarnContext(ctx, "generation call failed",
			"model", a.model,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return "", dErrors.Wrap(ErrFailed, dErrors.CodeUnavailable, "generation call failed")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", dErrors.Wrap(ErrFailed, dErrors.CodeUnavailable, "generation returned no content")
	}

	span.SetAttributes(attribute.Int("gen.completion_tokens", resp.Usage.CompletionTokens))
	return resp.Choices[0].Message.Content, nil
}
