package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"rfpforge/internal/audit"
	"rfpforge/internal/rfp"
)

type fakeDocuments struct {
	docs []*rfp.Document
}

func (f *fakeDocuments) ListByOwner(_ context.Context, ownerID string) ([]*rfp.Document, error) {
	var out []*rfp.Document
	for _, doc := range f.docs {
		if doc.CreatedBy == ownerID {
			out = append(out, doc)
		}
	}
	return out, nil
}

type fakeActivity struct {
	events []audit.Event
}

func (f *fakeActivity) ListByActor(context.Context, string) ([]audit.Event, error) {
	return f.events, nil
}

func newDashboard(docs []*rfp.Document, events []audit.Event) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(&fakeDocuments{docs: docs}, &fakeActivity{events: events}, logger)
}

func makeDocs(owner string, n int, status rfp.Status) []*rfp.Document {
	docs := make([]*rfp.Document, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, &rfp.Document{
			ID:        fmt.Sprintf("doc-%d", i),
			Number:    fmt.Sprintf("RFP-2026-%03d", i+1),
			Status:    status,
			CreatedBy: owner,
		})
	}
	return docs
}

func TestSummaryCountsByStatus(t *testing.T) {
	docs := append(makeDocs("user-1", 3, rfp.StatusDraft), &rfp.Document{
		ID: "approved-1", Status: rfp.StatusApproved, CreatedBy: "user-1",
	})
	svc := newDashboard(docs, nil)

	stats, _, err := svc.Summary(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRFPs != 4 {
		t.Fatalf("expected 4 total, got %d", stats.TotalRFPs)
	}
	if stats.DraftRFPs != 3 {
		t.Fatalf("expected 3 drafts, got %d", stats.DraftRFPs)
	}
	if stats.ApprovedRFPs != 1 {
		t.Fatalf("expected 1 approved, got %d", stats.ApprovedRFPs)
	}
}

func TestSummaryLimitsRecentDocuments(t *testing.T) {
	svc := newDashboard(makeDocs("user-1", 8, rfp.StatusDraft), nil)

	stats, recent, err := svc.Summary(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRFPs != 8 {
		t.Fatalf("expected total unaffected by limit, got %d", stats.TotalRFPs)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent documents, got %d", len(recent))
	}
	// The newest documents are at the tail of insertion order.
	if recent[len(recent)-1].ID != "doc-7" {
		t.Fatalf("expected the latest document last, got %q", recent[len(recent)-1].ID)
	}
}

func TestSummaryLimitsRecentActivity(t *testing.T) {
	events := make([]audit.Event, 7)
	for i := range events {
		events[i] = audit.Event{Timestamp: time.Now(), ActorID: "user-1", Action: audit.ActionChatMessage}
	}
	svc := newDashboard(nil, events)

	stats, _, err := svc.Summary(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.RecentActivity) != 5 {
		t.Fatalf("expected 5 recent events, got %d", len(stats.RecentActivity))
	}
}

func TestSummaryEmptyUser(t *testing.T) {
	svc := newDashboard(nil, nil)
	stats, recent, err := svc.Summary(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRFPs != 0 || len(recent) != 0 {
		t.Fatal("expected empty summary for unknown user")
	}
}
