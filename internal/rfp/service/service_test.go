package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"rfpforge/internal/audit"
	"rfpforge/internal/rfp"
	dErrors "rfpforge/pkg/domain-errors"
)

type recordedEvent struct {
	actorID string
	action  audit.Action
	details string
}

type fakeRecorder struct {
	events []recordedEvent
}

func (r *fakeRecorder) Record(_ context.Context, actorID string, action audit.Action, details, _ string) {
	r.events = append(r.events, recordedEvent{actorID: actorID, action: action, details: details})
}

func newService(recorder *fakeRecorder) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	builder := rfp.NewContentBuilder(nil, logger, nil)
	return New(rfp.NewInMemoryStore(), builder, recorder, logger)
}

func validIntake() rfp.Intake {
	return rfp.Intake{
		Title:           "Radar Upgrade",
		Objective:       "Modernize the array",
		AcquisitionType: "far",
		SecurityLevel:   "secret",
	}
}

func TestGenerateCreatesNumberedDraft(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := newService(recorder)

	doc, err := svc.Generate(context.Background(), "user-1", validIntake(), "127.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected document ID")
	}
	if want := fmt.Sprintf("RFP-%d-001", doc.CreatedAt.Year()); doc.Number != want {
		t.Fatalf("expected number %q, got %q", want, doc.Number)
	}
	if doc.Status != rfp.StatusDraft {
		t.Fatalf("expected draft status, got %q", doc.Status)
	}
	if doc.ContractValue != rfp.DefaultContractValue {
		t.Fatalf("expected defaulted contract value, got %q", doc.ContractValue)
	}
	if doc.Content == "" {
		t.Fatal("expected fallback content without a generator")
	}

	if len(recorder.events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(recorder.events))
	}
	event := recorder.events[0]
	if event.action != audit.ActionRFPGenerated {
		t.Fatalf("expected RFP_GENERATED event, got %q", event.action)
	}
	if !strings.Contains(event.details, "Radar Upgrade") {
		t.Fatalf("expected title in audit details, got %q", event.details)
	}
}

func TestGenerateRejectsIncompleteIntake(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := newService(recorder)

	_, err := svc.Generate(context.Background(), "user-1", rfp.Intake{Title: "Radar Upgrade"}, "127.0.0.1")
	if !dErrors.HasCode(err, dErrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(recorder.events) != 0 {
		t.Fatal("validation failure must not record an audit event")
	}

	docs, err := svc.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatal("validation failure must not create a document")
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc := newService(&fakeRecorder{})
	doc, err := svc.Generate(context.Background(), "owner", validIntake(), "127.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Get(context.Background(), doc.ID, "owner"); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	_, err = svc.Get(context.Background(), doc.ID, "intruder")
	if !dErrors.HasCode(err, dErrors.CodeForbidden) {
		t.Fatalf("expected forbidden for foreign document, got %v", err)
	}
}

func TestGetUnknownDocument(t *testing.T) {
	svc := newService(&fakeRecorder{})
	_, err := svc.Get(context.Background(), "missing", "owner")
	if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListByOwnerIsScoped(t *testing.T) {
	svc := newService(&fakeRecorder{})
	ctx := context.Background()

	if _, err := svc.Generate(ctx, "alpha", validIntake(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Generate(ctx, "beta", validIntake(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	docs, err := svc.ListByOwner(ctx, "alpha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].CreatedBy != "alpha" {
		t.Fatalf("expected only alpha's documents, got %d", len(docs))
	}
}
