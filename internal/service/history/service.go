// Package history implements the session history use cases: appending a
// record when a voice session ends and listing recently used companions.
package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

type historyRepo interface {
	Append(ctx context.Context, s *domain.SessionRecord) error
	Recent(ctx context.Context, limit int) ([]domain.Companion, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Companion, error)
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// Service provides session history operations.
type Service struct {
	history      historyRepo
	cache        cacheInvalidator
	defaultLimit int
	maxLimit     int
	log          *slog.Logger
}

// NewService creates a new history service. defaultLimit is used when a
// caller passes no limit; maxLimit caps what a caller may request.
func NewService(log *slog.Logger, history historyRepo, cache cacheInvalidator, defaultLimit, maxLimit int) *Service {
	return &Service{
		history:      history,
		cache:        cache,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		log:          log.With("service", "history"),
	}
}

// clampLimit applies the default and bounds for listing limits.
func (s *Service) clampLimit(limit int) int {
	if limit < 1 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}
