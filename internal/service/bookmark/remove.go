package bookmark

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
	"github.com/heartmarshall/companions-backend/pkg/ctxutil"
)

// Remove deletes the user's bookmarks for a companion and invalidates the
// cached page at path. Only rows matching both the companion and the caller
// are removed. Anonymous callers succeed without any effect; removing a
// bookmark that does not exist is not an error.
func (s *Service) Remove(ctx context.Context, companionID uuid.UUID, path string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}

	if companionID == uuid.Nil {
		return domain.NewValidationError("companion_id", "required")
	}

	if err := s.bookmarks.Remove(ctx, companionID, userID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}

	s.invalidate(ctx, path)

	s.log.InfoContext(ctx, "bookmark removed",
		slog.String("user_id", userID.String()),
		slog.String("companion_id", companionID.String()),
	)

	return nil
}
