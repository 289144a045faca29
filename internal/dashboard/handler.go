package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rfpforge/internal/audit"
	"rfpforge/internal/platform/middleware"
	"rfpforge/internal/rfp"
	"rfpforge/internal/transport/shared"
)

// Handler exposes the dashboard endpoint. Requires a session.
type Handler struct {
	dashboard *Service
	logger    *slog.Logger
}

func NewHandler(dashboard *Service, logger *slog.Logger) *Handler {
	return &Handler{dashboard: dashboard, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/dashboard", h.handleSummary)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, recent, err := h.dashboard.Summary(ctx, middleware.GetUserID(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard summary failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}
	if recent == nil {
		recent = []*rfp.Document{}
	}
	if stats.RecentActivity == nil {
		stats.RecentActivity = []audit.Event{}
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"stats":       stats,
		"recent_rfps": recent,
	})
}
