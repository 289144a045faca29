// Package handler exposes the authentication endpoints. The verify/CAC/
// email/demo routes are public; status and logout require a session token.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rfpforge/internal/auth"
	"rfpforge/internal/auth/service"
	"rfpforge/internal/platform/middleware"
	"rfpforge/internal/transport/shared"
	dErrors "rfpforge/pkg/domain-errors"
)

// Service is the subset of auth operations the handler needs.
type Service interface {
	Verify(ctx context.Context, req *auth.VerifyRequest, origin service.Origin) (*auth.Result, error)
	CAC(ctx context.Context, origin service.Origin) (*auth.Result, error)
	Email(ctx context.Context, origin service.Origin) (*auth.Result, error)
	Demo(ctx context.Context, origin service.Origin) (*auth.Result, error)
	Status(ctx context.Context, userID, sessionID string) (*auth.User, error)
	Logout(ctx context.Context, userID, sessionID string, origin service.Origin) error
}

type Handler struct {
	auth   Service
	logger *slog.Logger
}

func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{auth: auth, logger: logger}
}

// RegisterPublic mounts the routes that create sessions.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/api/auth/verify", h.handleVerify)
	r.Post("/api/auth/cac", h.handleCAC)
	r.Post("/api/auth/email", h.handleEmail)
	r.Post("/api/auth/demo", h.handleDemo)
}

// RegisterProtected mounts the routes that require a live session.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/api/auth/status", h.handleStatus)
	r.Post("/api/auth/logout", h.handleLogout)
}

func origin(r *http.Request) service.Origin {
	return service.Origin{Address: r.RemoteAddr, UserAgent: r.UserAgent()}
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	res, err := h.auth.Verify(r.Context(), &req, origin(r))
	if err != nil {
		h.writeAuthError(w, r, "verify failed", err)
		return
	}
	h.writeResult(w, res)
}

func (h *Handler) handleCAC(w http.ResponseWriter, r *http.Request) {
	res, err := h.auth.CAC(r.Context(), origin(r))
	if err != nil {
		h.writeAuthError(w, r, "cac auth failed", err)
		return
	}
	h.writeResult(w, res)
}

func (h *Handler) handleEmail(w http.ResponseWriter, r *http.Request) {
	res, err := h.auth.Email(r.Context(), origin(r))
	if err != nil {
		h.writeAuthError(w, r, "email auth failed", err)
		return
	}
	h.writeResult(w, res)
}

func (h *Handler) handleDemo(w http.ResponseWriter, r *http.Request) {
	res, err := h.auth.Demo(r.Context(), origin(r))
	if err != nil {
		h.writeAuthError(w, r, "demo auth failed", err)
		return
	}
	h.writeResult(w, res)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.auth.Status(ctx, middleware.GetUserID(ctx), middleware.GetSessionID(ctx))
	if err != nil {
		shared.WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          user,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.auth.Logout(ctx, middleware.GetUserID(ctx), middleware.GetSessionID(ctx), origin(r)); err != nil {
		h.writeAuthError(w, r, "logout failed", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h *Handler) writeResult(w http.ResponseWriter, res *auth.Result) {
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    res.User,
		"token":   res.Token,
		"message": res.Message,
	})
}

func (h *Handler) writeAuthError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if !dErrors.HasCode(err, dErrors.CodeBadRequest) {
		h.logger.ErrorContext(r.Context(), msg,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
	}
	shared.WriteError(w, err)
}
