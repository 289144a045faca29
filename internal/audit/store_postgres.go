package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PostgresStore persists audit events in the audit_events table. It uses the
// standard database/sql surface so the handle can be shared with migration
// tooling.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_events (id, created_at, actor_id, action, details, origin_address)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), event.Timestamp.UTC(), event.ActorID, string(event.Action), event.Details, event.OriginAddress,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByActor(ctx context.Context, actorID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT created_at, actor_id, action, details, origin_address
		   FROM audit_events
		  WHERE actor_id = $1
		  ORDER BY created_at ASC`,
		actorID,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e  Event
			ts time.Time
			a  string
		)
		if err := rows.Scan(&ts, &e.ActorID, &a, &e.Details, &e.OriginAddress); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Timestamp = ts
		e.Action = Action(a)
		events = append(events, e)
	}
	return events, rows.Err()
}
