package audit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rfpforge/internal/platform/middleware"
	"rfpforge/internal/transport/shared"
	dErrors "rfpforge/pkg/domain-errors"
)

// Handler exposes the per-user audit trail. Requires a session.
type Handler struct {
	recorder *Recorder
	logger   *slog.Logger
}

func NewHandler(recorder *Recorder, logger *slog.Logger) *Handler {
	return &Handler{recorder: recorder, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/audit", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := h.recorder.ListByActor(ctx, middleware.GetUserID(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "audit list failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit logs"))
		return
	}
	if events == nil {
		events = []Event{}
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"audit_logs": events})
}
