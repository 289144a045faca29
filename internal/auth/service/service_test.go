package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"rfpforge/internal/audit"
	"rfpforge/internal/auth"
	"rfpforge/internal/auth/store"
	dErrors "rfpforge/pkg/domain-errors"
)

type fakeTokens struct {
	lastSessionID uuid.UUID
}

func (f *fakeTokens) GenerateSessionToken(_, sessionID uuid.UUID, _ time.Duration) (string, error) {
	f.lastSessionID = sessionID
	return "token-" + sessionID.String(), nil
}

type capturingRecorder struct {
	actions []audit.Action
	details []string
}

func (r *capturingRecorder) Record(_ context.Context, _ string, action audit.Action, details, _ string) {
	r.actions = append(r.actions, action)
	r.details = append(r.details, details)
}

func newAuthService(recorder *capturingRecorder) (*Service, *fakeTokens) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := &fakeTokens{}
	return New(store.NewInMemoryUserStore(), store.NewInMemorySessionStore(), tokens, recorder, logger), tokens
}

func TestVerifyRequiresEmail(t *testing.T) {
	svc, _ := newAuthService(&capturingRecorder{})
	_, err := svc.Verify(context.Background(), &auth.VerifyRequest{Name: "No Email"}, Origin{})
	if !dErrors.HasCode(err, dErrors.CodeBadRequest) {
		t.Fatalf("expected bad request without email, got %v", err)
	}
}

func TestVerifyFillsIdentityDefaults(t *testing.T) {
	recorder := &capturingRecorder{}
	svc, _ := newAuthService(recorder)

	res, err := svc.Verify(context.Background(), &auth.VerifyRequest{Email: "someone@example.mil"}, Origin{Address: "10.0.0.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.User.Name != "Unknown User" {
		t.Fatalf("expected default name, got %q", res.User.Name)
	}
	if res.User.Role != "User" {
		t.Fatalf("expected default role, got %q", res.User.Role)
	}
	if res.User.Clearance != "Secret" {
		t.Fatalf("expected Secret clearance for non-demo method, got %q", res.User.Clearance)
	}
	if res.Token == "" {
		t.Fatal("expected session token")
	}
	if len(recorder.actions) != 1 || recorder.actions[0] != audit.ActionSessionCreated {
		t.Fatalf("expected SESSION_CREATED event, got %v", recorder.actions)
	}
	if !strings.Contains(recorder.details[0], "someone@example.mil") {
		t.Fatalf("expected email in audit details, got %q", recorder.details[0])
	}
}

func TestVerifyDemoMethodGetsDemoClearance(t *testing.T) {
	svc, _ := newAuthService(&capturingRecorder{})
	res, err := svc.Verify(context.Background(), &auth.VerifyRequest{Email: "d@example.mil", AuthMethod: "demo"}, Origin{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.User.Clearance != "Demo" {
		t.Fatalf("expected Demo clearance, got %q", res.User.Clearance)
	}
}

func TestCannedIdentities(t *testing.T) {
	tests := []struct {
		name   string
		login  func(*Service) (*auth.Result, error)
		email  string
		role   string
		action audit.Action
	}{
		{
			name:   "cac",
			login:  func(s *Service) (*auth.Result, error) { return s.CAC(context.Background(), Origin{}) },
			email:  "john.smith@defense.gov",
			role:   "Contracting Officer",
			action: audit.ActionCACAuth,
		},
		{
			name:   "email",
			login:  func(s *Service) (*auth.Result, error) { return s.Email(context.Background(), Origin{}) },
			email:  "jane.doe@army.mil",
			role:   "Contracting Specialist",
			action: audit.ActionEmailAuth,
		},
		{
			name:   "demo",
			login:  func(s *Service) (*auth.Result, error) { return s.Demo(context.Background(), Origin{}) },
			email:  "demo@defense.gov",
			role:   "Contracting Officer",
			action: audit.ActionDemoAuth,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := &capturingRecorder{}
			svc, _ := newAuthService(recorder)

			res, err := tc.login(svc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.User.Email != tc.email {
				t.Fatalf("expected email %q, got %q", tc.email, res.User.Email)
			}
			if res.User.Role != tc.role {
				t.Fatalf("expected role %q, got %q", tc.role, res.User.Role)
			}
			if len(recorder.actions) != 1 || recorder.actions[0] != tc.action {
				t.Fatalf("expected %q event, got %v", tc.action, recorder.actions)
			}
		})
	}
}

func TestStatusReturnsUserForLiveSession(t *testing.T) {
	svc, tokens := newAuthService(&capturingRecorder{})
	res, err := svc.Demo(context.Background(), Origin{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := svc.Status(context.Background(), res.User.ID.String(), tokens.lastSessionID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != res.User.Email {
		t.Fatalf("expected same user, got %q", user.Email)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	recorder := &capturingRecorder{}
	svc, tokens := newAuthService(recorder)
	res, err := svc.Demo(context.Background(), Origin{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sessionID := tokens.lastSessionID.String()
	if !svc.SessionExists(context.Background(), sessionID) {
		t.Fatal("expected live session before logout")
	}

	if err := svc.Logout(context.Background(), res.User.ID.String(), sessionID, Origin{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.SessionExists(context.Background(), sessionID) {
		t.Fatal("expected session revoked after logout")
	}

	// Revoking again is not an error.
	if err := svc.Logout(context.Background(), res.User.ID.String(), sessionID, Origin{}); err != nil {
		t.Fatalf("repeat logout must succeed, got %v", err)
	}
}

func TestSessionExistsRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService(&capturingRecorder{})
	if svc.SessionExists(context.Background(), "not-a-uuid") {
		t.Fatal("expected false for malformed session ID")
	}
	if svc.SessionExists(context.Background(), uuid.NewString()) {
		t.Fatal("expected false for unknown session ID")
	}
}
