package template

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rfpforge/internal/platform/middleware"
	"rfpforge/internal/transport/shared"
	dErrors "rfpforge/pkg/domain-errors"
)

// Handler exposes the template endpoints. All routes require a session.
type Handler struct {
	templates *Service
	logger    *slog.Logger
}

func NewHandler(templates *Service, logger *slog.Logger) *Handler {
	return &Handler{templates: templates, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/templates/{id}", h.handleGet)
	r.Post("/api/templates", h.handleSave)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tpl, err := h.templates.Get(ctx, chi.URLParam(r, "id"), middleware.GetUserID(ctx), r.RemoteAddr)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"template": tpl})
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	tpl, err := h.templates.Save(ctx, middleware.GetUserID(ctx), &req, r.RemoteAddr)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeValidation) {
			h.logger.ErrorContext(ctx, "template save failed",
				"request_id", middleware.GetRequestID(ctx),
				"error", err,
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, map[string]any{
		"success":     true,
		"template_id": tpl.ID,
		"message":     "Template saved successfully",
	})
}
