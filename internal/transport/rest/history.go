package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

type historyService interface {
	Append(ctx context.Context, companionID uuid.UUID) error
	Recent(ctx context.Context, limit int) ([]domain.Companion, error)
	RecentByUser(ctx context.Context, limit int) ([]domain.Companion, error)
}

// HistoryHandler serves session history endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// Append handles POST /companions/{id}/sessions, called when a voice session
// with the companion ends.
func (h *HistoryHandler) Append(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.Append(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// Recent handles GET /sessions/recent?limit=.
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	companions, err := h.svc.Recent(r.Context(), intQueryParam(r.URL.Query().Get("limit")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"companions": toCompanionList(companions)})
}

// Mine handles GET /me/sessions?limit=.
func (h *HistoryHandler) Mine(w http.ResponseWriter, r *http.Request) {
	companions, err := h.svc.RecentByUser(r.Context(), intQueryParam(r.URL.Query().Get("limit")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"companions": toCompanionList(companions)})
}
