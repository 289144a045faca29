package audit

import "context"

// Store persists audit events. Implementations must be safe for concurrent
// use; insertion order per actor must be preserved.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByActor(ctx context.Context, actorID string) ([]Event, error)
}
