package chat

import (
	"context"
	"strings"
	"testing"

	"rfpforge/internal/audit"
	dErrors "rfpforge/pkg/domain-errors"
)

type capturingRecorder struct {
	details []string
}

func (r *capturingRecorder) Record(_ context.Context, _ string, _ audit.Action, details, _ string) {
	r.details = append(r.details, details)
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	svc := NewService(&capturingRecorder{})
	_, _, err := svc.Send(context.Background(), "user-1", "   ", "")
	if !dErrors.HasCode(err, dErrors.CodeBadRequest) {
		t.Fatalf("expected bad request for empty message, got %v", err)
	}
}

func TestSendAppendsConversationPair(t *testing.T) {
	svc := NewService(&capturingRecorder{})

	response, history, err := svc.Send(context.Background(), "user-1", "tell me about cmmc", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(response, "Cybersecurity Maturity Model Certification") {
		t.Fatalf("expected CMMC response, got %q", response)
	}
	if len(history) != 2 {
		t.Fatalf("expected user+ai history pair, got %d entries", len(history))
	}
	if history[0].Type != "user" || history[1].Type != "ai" {
		t.Fatalf("expected user then ai entries, got %q, %q", history[0].Type, history[1].Type)
	}
	if history[1].Message != response {
		t.Fatal("expected ai entry to carry the response")
	}
}

func TestSendKeepsPerUserHistory(t *testing.T) {
	svc := NewService(&capturingRecorder{})
	ctx := context.Background()

	if _, _, err := svc.Send(ctx, "alpha", "far question", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.Send(ctx, "beta", "ota question", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, history, err := svc.Send(ctx, "alpha", "another far question", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("expected alpha's 4 entries, got %d", len(history))
	}
}

func TestSendAuditsTruncatedMessage(t *testing.T) {
	recorder := &capturingRecorder{}
	svc := NewService(recorder)

	long := strings.Repeat("x", 80)
	if _, _, err := svc.Send(context.Background(), "user-1", long, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recorder.details) != 1 {
		t.Fatalf("expected one audit event, got %d", len(recorder.details))
	}
	want := "User chat: " + strings.Repeat("x", 50) + "..."
	if recorder.details[0] != want {
		t.Fatalf("expected %q, got %q", want, recorder.details[0])
	}
}
