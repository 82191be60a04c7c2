package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
	"github.com/heartmarshall/companions-backend/pkg/ctxutil"
)

// Append records a completed voice session for the authenticated user.
// Every completed session appends one row; repeats are not deduplicated.
// Unlike bookmarks there is no anonymous fallback: a session cannot end for
// a user who never started one.
func (s *Service) Append(ctx context.Context, companionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if companionID == uuid.Nil {
		return domain.NewValidationError("companion_id", "required")
	}

	err := s.history.Append(ctx, &domain.SessionRecord{
		ID:          uuid.New(),
		CompanionID: companionID,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}

	// The home page shows recent sessions; drop its cached copy.
	if err := s.cache.Invalidate(ctx, "/"); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed",
			slog.String("path", "/"),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "session recorded",
		slog.String("user_id", userID.String()),
		slog.String("companion_id", companionID.String()),
	)

	return nil
}
