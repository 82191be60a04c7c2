// Package bookmark implements bookmarking of library companions.
//
// Add and Remove follow a deliberate policy: when the caller carries no
// identity they succeed silently without touching the store. The UI shows
// bookmark toggles to anonymous visitors and treats the tap as a no-op.
package bookmark

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

type bookmarkRepo interface {
	Add(ctx context.Context, b *domain.Bookmark) error
	Remove(ctx context.Context, companionID, userID uuid.UUID) error
	ListCompanions(ctx context.Context, userID uuid.UUID) ([]domain.Companion, error)
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// Service provides bookmark operations.
type Service struct {
	bookmarks bookmarkRepo
	cache     cacheInvalidator
	log       *slog.Logger
}

// NewService creates a new bookmark service.
func NewService(log *slog.Logger, bookmarks bookmarkRepo, cache cacheInvalidator) *Service {
	return &Service{
		bookmarks: bookmarks,
		cache:     cache,
		log:       log.With("service", "bookmark"),
	}
}

// invalidate signals the page cache after a committed mutation. A failed
// signal is logged, never returned: the row change has already happened and
// the cache entry expires on its own.
func (s *Service) invalidate(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.cache.Invalidate(ctx, path); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}
