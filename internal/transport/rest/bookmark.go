package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

type bookmarkService interface {
	Add(ctx context.Context, companionID uuid.UUID, path string) error
	Remove(ctx context.Context, companionID uuid.UUID, path string) error
	ListCompanions(ctx context.Context) ([]domain.Companion, error)
}

// BookmarkHandler serves bookmark endpoints.
type BookmarkHandler struct {
	svc bookmarkService
	log *slog.Logger
}

// NewBookmarkHandler creates a BookmarkHandler.
func NewBookmarkHandler(svc bookmarkService, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, log: logger.With("handler", "bookmark")}
}

// bookmarkRequest carries the page path whose cached copy should be dropped
// after the mutation. An empty body is fine; no page is invalidated then.
type bookmarkRequest struct {
	Path string `json:"path"`
}

func decodeBookmarkPath(r *http.Request) string {
	var req bookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ""
	}
	return req.Path
}

// Add handles POST /companions/{id}/bookmark.
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.Add(r.Context(), id, decodeBookmarkPath(r)); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Remove handles DELETE /companions/{id}/bookmark.
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.Remove(r.Context(), id, decodeBookmarkPath(r)); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// List handles GET /me/bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	companions, err := h.svc.ListCompanions(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"companions": toCompanionList(companions)})
}
