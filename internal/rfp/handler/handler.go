// Package handler exposes the RFP endpoints. All routes require a session.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rfpforge/internal/platform/middleware"
	"rfpforge/internal/rfp"
	"rfpforge/internal/transport/shared"
	dErrors "rfpforge/pkg/domain-errors"
)

// Service is the subset of RFP operations the handler needs.
type Service interface {
	Generate(ctx context.Context, ownerID string, intake rfp.Intake, origin string) (*rfp.Document, error)
	Get(ctx context.Context, id, requesterID string) (*rfp.Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*rfp.Document, error)
}

type Handler struct {
	rfps   Service
	logger *slog.Logger
}

func New(rfps Service, logger *slog.Logger) *Handler {
	return &Handler{rfps: rfps, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/rfp/generate", h.handleGenerate)
	r.Get("/api/rfp/{id}", h.handleGet)
	r.Get("/api/rfp", h.handleList)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var intake rfp.Intake
	if err := json.NewDecoder(r.Body).Decode(&intake); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	doc, err := h.rfps.Generate(ctx, middleware.GetUserID(ctx), intake, r.RemoteAddr)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeValidation) {
			h.logger.ErrorContext(ctx, "rfp generation failed",
				"request_id", middleware.GetRequestID(ctx),
				"error", err,
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"rfp_id":     doc.ID,
		"rfp_number": doc.Number,
		"content":    doc.Content,
		"message":    "RFP generated successfully",
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc, err := h.rfps.Get(ctx, chi.URLParam(r, "id"), middleware.GetUserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"rfp": doc})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	docs, err := h.rfps.ListByOwner(ctx, middleware.GetUserID(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "rfp list failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}
	if docs == nil {
		docs = []*rfp.Document{}
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"rfps": docs})
}
