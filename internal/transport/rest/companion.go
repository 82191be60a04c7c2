package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
	companionsvc "github.com/heartmarshall/companions-backend/internal/service/companion"
)

type companionService interface {
	Search(ctx context.Context, input companionsvc.SearchInput) ([]domain.Companion, error)
	Create(ctx context.Context, input companionsvc.CreateInput) (*domain.Companion, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Companion, error)
	ListByAuthor(ctx context.Context) ([]domain.Companion, error)
	CanCreate(ctx context.Context) (companionsvc.Quota, error)
}

// CompanionHandler serves companion library endpoints.
type CompanionHandler struct {
	svc companionService
	log *slog.Logger
}

// NewCompanionHandler creates a CompanionHandler.
func NewCompanionHandler(svc companionService, logger *slog.Logger) *CompanionHandler {
	return &CompanionHandler{svc: svc, log: logger.With("handler", "companion")}
}

type companionResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Subject         string `json:"subject"`
	Topic           string `json:"topic"`
	Voice           string `json:"voice"`
	Style           string `json:"style"`
	DurationMinutes int    `json:"durationMinutes"`
	AuthorID        string `json:"authorId"`
	CreatedAt       string `json:"createdAt"`
}

func toCompanionResponse(c domain.Companion) companionResponse {
	return companionResponse{
		ID:              c.ID.String(),
		Name:            c.Name,
		Subject:         c.Subject.String(),
		Topic:           c.Topic,
		Voice:           c.Voice.String(),
		Style:           c.Style.String(),
		DurationMinutes: c.DurationMinutes,
		AuthorID:        c.AuthorID.String(),
		CreatedAt:       c.CreatedAt.Format("2006-01-02T15:04:05.999999Z07:00"),
	}
}

func toCompanionList(companions []domain.Companion) []companionResponse {
	out := make([]companionResponse, 0, len(companions))
	for _, c := range companions {
		out = append(out, toCompanionResponse(c))
	}
	return out
}

// List handles GET /companions?subject=&topic=&page=&limit=.
func (h *CompanionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	companions, err := h.svc.Search(r.Context(), companionsvc.SearchInput{
		Subject: q.Get("subject"),
		Topic:   q.Get("topic"),
		Page:    intQueryParam(q.Get("page")),
		Limit:   intQueryParam(q.Get("limit")),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"companions": toCompanionList(companions)})
}

// Get handles GET /companions/{id}.
func (h *CompanionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	companion, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCompanionResponse(*companion))
}

type createCompanionRequest struct {
	Name            string `json:"name"`
	Subject         string `json:"subject"`
	Topic           string `json:"topic"`
	Voice           string `json:"voice"`
	Style           string `json:"style"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Create handles POST /companions.
func (h *CompanionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCompanionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	companion, err := h.svc.Create(r.Context(), companionsvc.CreateInput{
		Name:            req.Name,
		Subject:         domain.Subject(req.Subject),
		Topic:           req.Topic,
		Voice:           domain.Voice(req.Voice),
		Style:           domain.Style(req.Style),
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCompanionResponse(*companion))
}

// Quota handles GET /companions/quota.
func (h *CompanionHandler) Quota(w http.ResponseWriter, r *http.Request) {
	quota, err := h.svc.CanCreate(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"allowed":   quota.Allowed,
		"unlimited": quota.Unlimited,
		"cap":       quota.Cap,
		"used":      quota.Used,
	})
}

// Mine handles GET /me/companions.
func (h *CompanionHandler) Mine(w http.ResponseWriter, r *http.Request) {
	companions, err := h.svc.ListByAuthor(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"companions": toCompanionList(companions)})
}

// intQueryParam parses a numeric query parameter; malformed or absent values
// become zero and fall back to service defaults.
func intQueryParam(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
