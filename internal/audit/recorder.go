// Package audit records one event per state-changing action. Recording is
// best-effort: failures are logged and must never abort the triggering
// operation.
package audit

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"rfpforge/internal/platform/metrics"
)

// Sink receives a copy of every recorded event, beyond the primary store.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Recorder appends events to the store and fans them out to an optional sink
// through a bounded buffer drained by Worker.
type Recorder struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	outbox  chan Event
}

type Option func(*Recorder)

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Recorder) { r.metrics = m }
}

// WithOutbox enables sink fan-out through a buffer of the given size.
func WithOutbox(size int) Option {
	return func(r *Recorder) { r.outbox = make(chan Event, size) }
}

func NewRecorder(store Store, logger *slog.Logger, opts ...Option) *Recorder {
	r := &Recorder{store: store, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends an audit event. Fire-and-forget: any failure is logged and
// swallowed so the triggering action still succeeds.
func (r *Recorder) Record(ctx context.Context, actorID string, action Action, details, origin string) {
	event := Event{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		Details:       details,
		OriginAddress: origin,
	}

	if err := r.store.Append(ctx, event); err != nil {
		r.logger.ErrorContext(ctx, "audit append failed",
			"action", string(action),
			"actor_id", actorID,
			"error", err,
		)
	}

	if r.outbox == nil {
		return
	}
	select {
	case r.outbox <- event:
	default:
		// Never block a request on a slow sink.
		if r.metrics != nil {
			r.metrics.AuditEventsDropped.Inc()
		}
		r.logger.WarnContext(ctx, "audit outbox full, event dropped",
			"action", string(action),
		)
	}
}

// ListByActor returns the actor's events newest-first.
func (r *Recorder) ListByActor(ctx context.Context, actorID string) ([]Event, error) {
	events, err := r.store.ListByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events, nil
}

// Outbox exposes the fan-out channel for the worker. Nil when fan-out is
// disabled.
func (r *Recorder) Outbox() <-chan Event {
	return r.outbox
}
