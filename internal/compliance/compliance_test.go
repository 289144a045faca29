package compliance

import (
	"context"
	"testing"

	"rfpforge/internal/audit"
	"rfpforge/internal/rfp"
	dErrors "rfpforge/pkg/domain-errors"
	"rfpforge/pkg/sentinel"
)

type fakeFinder struct {
	docs map[string]*rfp.Document
}

func (f *fakeFinder) FindByID(_ context.Context, id string) (*rfp.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return doc, nil
}

type capturingRecorder struct {
	actions []audit.Action
}

func (r *capturingRecorder) Record(_ context.Context, _ string, action audit.Action, _, _ string) {
	r.actions = append(r.actions, action)
}

func newCheckService(docs map[string]*rfp.Document) (*Service, *capturingRecorder) {
	recorder := &capturingRecorder{}
	return NewService(&fakeFinder{docs: docs}, recorder), recorder
}

func fullDocument() *rfp.Document {
	return &rfp.Document{
		ID:                     "doc-1",
		AcquisitionType:        "far",
		SecurityLevel:          "cui",
		ComplianceRequirements: []string{"nist800171", "cmmc"},
	}
}

func TestCheckFullComplianceScore(t *testing.T) {
	svc, recorder := newCheckService(map[string]*rfp.Document{"doc-1": fullDocument()})

	result, err := svc.Check(context.Background(), "user-1", "doc-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.FARCompliance || !result.SecurityClauses || !result.EvaluationCriteria || !result.CMMCRequirements {
		t.Fatalf("expected all checks passing, got %+v", result)
	}
	if result.OverallScore != 100 {
		t.Fatalf("expected score 100, got %d", result.OverallScore)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
	if len(result.Recommendations) != 3 {
		t.Fatalf("expected fixed recommendations, got %v", result.Recommendations)
	}
	if len(recorder.actions) != 1 || recorder.actions[0] != audit.ActionComplianceCheck {
		t.Fatalf("expected COMPLIANCE_CHECK event, got %v", recorder.actions)
	}
}

func TestCheckWithoutCMMCWarns(t *testing.T) {
	doc := fullDocument()
	doc.ComplianceRequirements = []string{"nist800171"}
	svc, _ := newCheckService(map[string]*rfp.Document{"doc-1": doc})

	result, err := svc.Check(context.Background(), "user-1", "doc-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CMMCRequirements {
		t.Fatal("expected cmmc_requirements=false")
	}
	if result.OverallScore != 85 {
		t.Fatalf("expected score 85 without CMMC, got %d", result.OverallScore)
	}
	if len(result.Warnings) != 1 || result.Warnings[0] != "CMMC requirements need review" {
		t.Fatalf("expected CMMC warning, got %v", result.Warnings)
	}
}

func TestCheckUnknownDocument(t *testing.T) {
	svc, recorder := newCheckService(nil)
	_, err := svc.Check(context.Background(), "user-1", "missing", "")
	if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(recorder.actions) != 0 {
		t.Fatal("failed checks must not be audited")
	}
}

func TestCheckEmptyID(t *testing.T) {
	svc, _ := newCheckService(nil)
	_, err := svc.Check(context.Background(), "user-1", "", "")
	if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found for empty ID, got %v", err)
	}
}
