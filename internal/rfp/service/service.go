// Package service orchestrates RFP document creation and retrieval:
// validation, content building, registry insertion, and audit recording.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rfpforge/internal/audit"
	"rfpforge/internal/platform/metrics"
	"rfpforge/internal/rfp"
	dErrors "rfpforge/pkg/domain-errors"
	"rfpforge/pkg/sentinel"
)

// AuditRecorder records best-effort audit events.
type AuditRecorder interface {
	Record(ctx context.Context, actorID string, action audit.Action, details, origin string)
}

// Service orchestrates the document lifecycle.
type Service struct {
	store    rfp.Store
	builder  *rfp.ContentBuilder
	recorder AuditRecorder
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(store rfp.Store, builder *rfp.ContentBuilder, recorder AuditRecorder, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, builder: builder, recorder: recorder, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the intake, builds content, and registers the document.
// Validation failures produce no document and no audit event; generation
// failures still produce a document with fallback content.
func (s *Service) Generate(ctx context.Context, ownerID string, intake rfp.Intake, origin string) (*rfp.Document, error) {
	intake.Normalize()
	if err := intake.Validate(); err != nil {
		return nil, err
	}

	content, generated := s.builder.Build(ctx, intake)

	now := time.Now()
	doc := &rfp.Document{
		ID:                     uuid.NewString(),
		Title:                  intake.Title,
		Objective:              intake.Objective,
		AcquisitionType:        intake.AcquisitionType,
		SecurityLevel:          intake.SecurityLevel,
		ContractValue:          intake.ContractValue,
		ComplianceRequirements: intake.ComplianceRequirements,
		Status:                 rfp.StatusDraft,
		CreatedBy:              ownerID,
		CreatedAt:              now,
		UpdatedAt:              now,
		Content:                content,
	}

	if err := s.store.Create(ctx, doc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store RFP document")
	}

	s.recorder.Record(ctx, ownerID, audit.ActionRFPGenerated, "Generated RFP: "+intake.Title, origin)
	if s.metrics != nil {
		s.metrics.RFPsGenerated.Inc()
	}
	s.logger.InfoContext(ctx, "rfp generated",
		"rfp_id", doc.ID,
		"rfp_number", doc.Number,
		"generated", generated,
	)
	return doc, nil
}

// Get returns the document iff the requester created it.
func (s *Service) Get(ctx context.Context, id, requesterID string) (*rfp.Document, error) {
	doc, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "RFP not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load RFP")
	}
	if doc.CreatedBy != requesterID {
		return nil, dErrors.New(dErrors.CodeForbidden, "Access denied")
	}
	return doc, nil
}

// ListByOwner returns the owner's documents in insertion order.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]*rfp.Document, error) {
	docs, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list RFPs")
	}
	return docs, nil
}
