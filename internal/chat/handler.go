package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rfpforge/internal/platform/middleware"
	"rfpforge/internal/transport/shared"
	dErrors "rfpforge/pkg/domain-errors"
)

// Handler exposes the chat endpoint. Requires a session.
type Handler struct {
	chat   *Service
	logger *slog.Logger
}

func NewHandler(chat *Service, logger *slog.Logger) *Handler {
	return &Handler{chat: chat, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	response, history, err := h.chat.Send(ctx, middleware.GetUserID(ctx), req.Message, r.RemoteAddr)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"response":     response,
		"chat_history": history,
	})
}
