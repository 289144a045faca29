package rfp

import (
	"context"
	"log/slog"

	"rfpforge/internal/catalog"
	"rfpforge/internal/generation"
	"rfpforge/internal/platform/metrics"
)

// Generator is the remote generation port. The concrete adapter lives in
// internal/generation.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (string, error)
}

// ContentBuilder produces the document body for an intake: remote generation
// when available, deterministic templating otherwise. Build never fails; a
// failed generation attempt degrades to fallback content rather than
// dropping the request.
type ContentBuilder struct {
	generator Generator
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewContentBuilder(generator Generator, logger *slog.Logger, m *metrics.Metrics) *ContentBuilder {
	return &ContentBuilder{generator: generator, logger: logger, metrics: m}
}

// Build returns the document content and whether it came from the remote
// generator (false means the deterministic fallback was used).
func (b *ContentBuilder) Build(ctx context.Context, intake Intake) (string, bool) {
	req := generation.Request{
		Title:               intake.Title,
		Objective:           intake.Objective,
		AuthorityLabel:      catalog.AcquisitionTypeLabel(intake.AcquisitionType),
		ClassificationLabel: catalog.SecurityLevelLabel(intake.SecurityLevel),
		ComplianceLabels:    catalog.ComplianceLabels(intake.ComplianceRequirements),
	}

	if b.generator != nil {
		content, err := b.generator.Generate(ctx, req)
		if err == nil {
			return content, true
		}
		b.logger.WarnContext(ctx, "remote generation unavailable, using fallback template",
			"title", intake.Title,
			"error", err,
		)
	}

	if b.metrics != nil {
		b.metrics.GenerationFallbacks.Inc()
	}
	return fallbackContent(intake, req), false
}
