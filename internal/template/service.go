package template

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rfpforge/internal/audit"
	dErrors "rfpforge/pkg/domain-errors"
	"rfpforge/pkg/sentinel"
)

// AuditRecorder records best-effort audit events.
type AuditRecorder interface {
	Record(ctx context.Context, actorID string, action audit.Action, details, origin string)
}

// Service mediates template access and persistence.
type Service struct {
	store    Store
	recorder AuditRecorder
	logger   *slog.Logger
}

func NewService(store Store, recorder AuditRecorder, logger *slog.Logger) *Service {
	return &Service{store: store, recorder: recorder, logger: logger}
}

// Get returns a template by ID. Template access is audited.
func (s *Service) Get(ctx context.Context, id, actorID, origin string) (*Template, error) {
	tpl, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Template not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load template")
	}
	s.recorder.Record(ctx, actorID, audit.ActionTemplateAccess, "Template accessed: "+id, origin)
	return tpl, nil
}

// Save stores a user-defined template.
func (s *Service) Save(ctx context.Context, actorID string, req *SaveRequest, origin string) (*Template, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contractValue := req.ContractValue
	if contractValue == "" {
		contractValue = "simplified"
	}
	tpl := &Template{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Title:           req.Title,
		Objective:       req.Objective,
		AcquisitionType: req.AcquisitionType,
		SecurityLevel:   req.SecurityLevel,
		ContractValue:   contractValue,
		Compliance:      req.Compliance,
		CreatedBy:       actorID,
		CreatedAt:       time.Now(),
	}
	if err := s.store.Save(ctx, tpl); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save template")
	}

	s.recorder.Record(ctx, actorID, audit.ActionTemplateSaved, "Template saved: "+req.Name, origin)
	return tpl, nil
}
