// Package service implements the simulated identity surface. Every
// authentication method succeeds and fabricates an identity; the rest of the
// system trusts the resulting caller ID completely.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"rfpforge/internal/audit"
	"rfpforge/internal/auth"
	"rfpforge/internal/auth/store"
	"rfpforge/internal/platform/metrics"
	dErrors "rfpforge/pkg/domain-errors"
	"rfpforge/pkg/sentinel"
)

// TokenIssuer mints session bearer tokens.
type TokenIssuer interface {
	GenerateSessionToken(userID, sessionID uuid.UUID, expiresIn time.Duration) (string, error)
}

// AuditRecorder records best-effort audit events.
type AuditRecorder interface {
	Record(ctx context.Context, actorID string, action audit.Action, details, origin string)
}

// Origin carries caller network metadata for audit trails.
type Origin struct {
	Address   string
	UserAgent string
}

// Service orchestrates session creation and revocation.
type Service struct {
	users      store.UserStore
	sessions   store.SessionStore
	tokens     TokenIssuer
	recorder   AuditRecorder
	logger     *slog.Logger
	metrics    *metrics.Metrics
	sessionTTL time.Duration
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) { s.sessionTTL = ttl }
}

func New(users store.UserStore, sessions store.SessionStore, tokens TokenIssuer, recorder AuditRecorder, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		recorder:   recorder,
		logger:     logger,
		sessionTTL: 8 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Verify accepts a frontend-asserted identity and creates a session for it.
func (s *Service) Verify(ctx context.Context, req *auth.VerifyRequest, origin Origin) (*auth.Result, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Email required")
	}

	name := req.Name
	if name == "" {
		name = "Unknown User"
	}
	method := req.AuthMethod
	if method == "" {
		method = "unknown"
	}
	role := req.Role
	if role == "" {
		role = "User"
	}
	clearance := "Secret"
	if method == "demo" {
		clearance = "Demo"
	}

	user := &auth.User{
		ID:         uuid.New(),
		Name:       name,
		Email:      req.Email,
		Role:       role,
		Clearance:  clearance,
		AuthMethod: method,
	}

	details := fmt.Sprintf("Session created for %s%s", user.Email, clientSuffix(origin.UserAgent))
	return s.establish(ctx, user, audit.ActionSessionCreated, details, "Session verified", origin)
}

// CAC simulates Common Access Card authentication.
func (s *Service) CAC(ctx context.Context, origin Origin) (*auth.Result, error) {
	user := &auth.User{
		ID:         uuid.New(),
		Name:       "John Smith",
		Email:      "john.smith@defense.gov",
		Role:       "Contracting Officer",
		Clearance:  "Secret",
		AuthMethod: "CAC",
	}
	return s.establish(ctx, user, audit.ActionCACAuth, "User authenticated via CAC", "Successfully authenticated via CAC", origin)
}

// Email simulates secure email authentication.
func (s *Service) Email(ctx context.Context, origin Origin) (*auth.Result, error) {
	user := &auth.User{
		ID:         uuid.New(),
		Name:       "Jane Doe",
		Email:      "jane.doe@army.mil",
		Role:       "Contracting Specialist",
		Clearance:  "Confidential",
		AuthMethod: "Email",
	}
	return s.establish(ctx, user, audit.ActionEmailAuth, "User authenticated via secure email", "Successfully authenticated via secure email", origin)
}

// Demo creates a demo session for development.
func (s *Service) Demo(ctx context.Context, origin Origin) (*auth.Result, error) {
	user := &auth.User{
		ID:         uuid.New(),
		Name:       "Demo User",
		Email:      "demo@defense.gov",
		Role:       "Contracting Officer",
		Clearance:  "Demo",
		AuthMethod: "Demo",
	}
	return s.establish(ctx, user, audit.ActionDemoAuth, "Demo mode activated", "Demo mode activated", origin)
}

func (s *Service) establish(ctx context.Context, user *auth.User, action audit.Action, details, message string, origin Origin) (*auth.Result, error) {
	if err := s.users.Create(ctx, user); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Session verification failed")
	}

	now := time.Now()
	session := &auth.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Session verification failed")
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, session.ID, s.sessionTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Session verification failed")
	}

	s.recorder.Record(ctx, user.ID.String(), action, details, origin.Address)
	if s.metrics != nil {
		s.metrics.SessionsCreated.Inc()
	}
	return &auth.Result{User: user, Token: token, Message: message}, nil
}

// Status returns the user for a live session.
func (s *Service) Status(ctx context.Context, userID, sessionID string) (*auth.User, error) {
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}
	if _, err := s.sessions.FindByID(ctx, sid); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}
	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unknown user")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return user, nil
}

// Logout revokes the session. Revoking an already-gone session is not an
// error.
func (s *Service) Logout(ctx context.Context, userID, sessionID string, origin Origin) error {
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}
	if err := s.sessions.Delete(ctx, sid); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke session")
	}
	s.recorder.Record(ctx, userID, audit.ActionLogout, "User logged out", origin.Address)
	return nil
}

// SessionExists implements middleware.SessionChecker.
func (s *Service) SessionExists(ctx context.Context, sessionID string) bool {
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return false
	}
	_, err = s.sessions.FindByID(ctx, sid)
	return err == nil
}

// clientSuffix renders " (Browser on OS)" from a User-Agent header, or ""
// when the header is absent or unparseable.
func clientSuffix(uaHeader string) string {
	if uaHeader == "" {
		return ""
	}
	ua := useragent.New(uaHeader)
	browser, _ := ua.Browser()
	os := ua.OS()
	if browser == "" || os == "" {
		return ""
	}
	return fmt.Sprintf(" (%s on %s)", browser, os)
}
