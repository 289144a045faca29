// Package compliance performs a lightweight review of a generated RFP. The
// checks are heuristic field inspections, not a regulatory engine; the
// response shape is the contract.
package compliance

import (
	"context"
	"errors"
	"slices"

	"rfpforge/internal/audit"
	"rfpforge/internal/rfp"
	dErrors "rfpforge/pkg/domain-errors"
	"rfpforge/pkg/sentinel"
)

// Result is the compliance review payload.
type Result struct {
	FARCompliance      bool     `json:"far_compliance"`
	SecurityClauses    bool     `json:"security_clauses"`
	EvaluationCriteria bool     `json:"evaluation_criteria"`
	CMMCRequirements   bool     `json:"cmmc_requirements"`
	OverallScore       int      `json:"overall_score"`
	Warnings           []string `json:"warnings"`
	Recommendations    []string `json:"recommendations"`
}

// DocumentFinder looks up a document without ownership enforcement; the
// check only requires that the RFP exists.
type DocumentFinder interface {
	FindByID(ctx context.Context, id string) (*rfp.Document, error)
}

// AuditRecorder records best-effort audit events.
type AuditRecorder interface {
	Record(ctx context.Context, actorID string, action audit.Action, details, origin string)
}

// Service runs compliance checks against stored documents.
type Service struct {
	documents DocumentFinder
	recorder  AuditRecorder
}

func NewService(documents DocumentFinder, recorder AuditRecorder) *Service {
	return &Service{documents: documents, recorder: recorder}
}

// Check reviews the document's declared fields and scores them.
func (s *Service) Check(ctx context.Context, actorID, rfpID, origin string) (*Result, error) {
	if rfpID == "" {
		return nil, dErrors.New(dErrors.CodeNotFound, "RFP not found")
	}
	doc, err := s.documents.FindByID(ctx, rfpID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "RFP not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load RFP")
	}

	result := &Result{
		FARCompliance:      doc.AcquisitionType != "",
		SecurityClauses:    doc.SecurityLevel != "",
		EvaluationCriteria: true, // both generation paths mandate the weighted criteria
		CMMCRequirements:   slices.Contains(doc.ComplianceRequirements, "cmmc"),
		Recommendations: []string{
			"Review CMMC certification requirements",
			"Ensure all security controls are properly documented",
			"Verify evaluation weights sum to 100%",
		},
	}

	score := 55
	for _, ok := range []bool{result.FARCompliance, result.SecurityClauses, result.EvaluationCriteria} {
		if ok {
			score += 10
		}
	}
	if result.CMMCRequirements {
		score += 15
	} else {
		result.Warnings = append(result.Warnings, "CMMC requirements need review")
	}
	result.OverallScore = score

	s.recorder.Record(ctx, actorID, audit.ActionComplianceCheck, "Compliance check for RFP: "+rfpID, origin)
	return result, nil
}
