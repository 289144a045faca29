// Package store defines the persistence ports for users and sessions, with
// in-memory defaults and a Redis-backed session store for multi-instance
// deployments.
package store

import (
	"context"

	"github.com/google/uuid"

	"rfpforge/internal/auth"
)

// UserStore persists fabricated identities.
type UserStore interface {
	Create(ctx context.Context, user *auth.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

// SessionStore persists live sessions. Delete revokes a session; missing
// sessions surface sentinel.ErrNotFound.
type SessionStore interface {
	Create(ctx context.Context, session *auth.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*auth.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
