package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a fabricated identity. Authentication is simulated: any submitted
// email is accepted and assigned an identity; CAC/email/demo methods return
// canned personas.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Clearance  string    `json:"clearance"`
	AuthMethod string    `json:"auth_method"`
}

// Session ties a bearer token to a user until logout or expiry.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// VerifyRequest is the intake for the verify endpoint. Email is the only
// required field.
type VerifyRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	AuthMethod string `json:"authMethod"`
	Role       string `json:"role"`
}

// Result is returned from every successful authentication.
type Result struct {
	User    *User
	Token   string
	Message string
}
