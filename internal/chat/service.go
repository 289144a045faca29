package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"rfpforge/internal/audit"
	dErrors "rfpforge/pkg/domain-errors"
)

// Message is one chat history entry, user- or assistant-authored.
type Message struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditRecorder records best-effort audit events.
type AuditRecorder interface {
	Record(ctx context.Context, actorID string, action audit.Action, details, origin string)
}

// Service keeps per-user chat history and answers from the rule table.
type Service struct {
	mu       sync.Mutex
	history  map[string][]Message
	recorder AuditRecorder
}

func NewService(recorder AuditRecorder) *Service {
	return &Service{
		history:  make(map[string][]Message),
		recorder: recorder,
	}
}

// Send appends the user message, computes the canned response, and returns
// the response along with the full history.
func (s *Service) Send(ctx context.Context, userID, message, origin string) (string, []Message, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", nil, dErrors.New(dErrors.CodeBadRequest, "Message cannot be empty")
	}

	response := Respond(message)
	now := time.Now()

	s.mu.Lock()
	s.history[userID] = append(s.history[userID],
		Message{Type: "user", Message: message, Timestamp: now},
		Message{Type: "ai", Message: response, Timestamp: now},
	)
	history := append([]Message{}, s.history[userID]...)
	s.mu.Unlock()

	s.recorder.Record(ctx, userID, audit.ActionChatMessage, "User chat: "+truncate(message, 50), origin)
	return response, history, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s + "..."
	}
	return s[:n] + "..."
}
