package compliance

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rfpforge/internal/platform/middleware"
	"rfpforge/internal/transport/shared"
	dErrors "rfpforge/pkg/domain-errors"
)

// Handler exposes the compliance check endpoint. Requires a session.
type Handler struct {
	compliance *Service
	logger     *slog.Logger
}

func NewHandler(compliance *Service, logger *slog.Logger) *Handler {
	return &Handler{compliance: compliance, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/compliance/check", h.handleCheck)
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		RFPID string `json:"rfp_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.compliance.Check(ctx, middleware.GetUserID(ctx), req.RFPID, r.RemoteAddr)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"compliance_results": result,
	})
}
