// Package dashboard aggregates a user's documents and recent activity into
// the summary the frontend renders on login.
package dashboard

import (
	"context"
	"log/slog"

	"rfpforge/internal/audit"
	"rfpforge/internal/rfp"
	dErrors "rfpforge/pkg/domain-errors"
)

// Stats summarizes one user's activity.
type Stats struct {
	TotalRFPs      int           `json:"total_rfps"`
	DraftRFPs      int           `json:"draft_rfps"`
	ApprovedRFPs   int           `json:"approved_rfps"`
	RecentActivity []audit.Event `json:"recent_activity"`
}

// DocumentLister lists a user's documents in insertion order.
type DocumentLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*rfp.Document, error)
}

// ActivityLister returns a user's audit events newest-first.
type ActivityLister interface {
	ListByActor(ctx context.Context, actorID string) ([]audit.Event, error)
}

// Service computes the dashboard summary.
type Service struct {
	documents DocumentLister
	activity  ActivityLister
	logger    *slog.Logger
}

func NewService(documents DocumentLister, activity ActivityLister, logger *slog.Logger) *Service {
	return &Service{documents: documents, activity: activity, logger: logger}
}

const recentLimit = 5

// Summary returns the user's stats and their most recent documents.
func (s *Service) Summary(ctx context.Context, userID string) (*Stats, []*rfp.Document, error) {
	docs, err := s.documents.ListByOwner(ctx, userID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load RFPs")
	}

	events, err := s.activity.ListByActor(ctx, userID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load activity")
	}
	if len(events) > recentLimit {
		events = events[:recentLimit]
	}

	stats := &Stats{
		TotalRFPs:      len(docs),
		RecentActivity: events,
	}
	for _, doc := range docs {
		switch doc.Status {
		case rfp.StatusDraft:
			stats.DraftRFPs++
		case rfp.StatusApproved:
			stats.ApprovedRFPs++
		}
	}

	recent := docs
	if len(recent) > recentLimit {
		recent = recent[len(recent)-recentLimit:]
	}
	return stats, recent, nil
}
