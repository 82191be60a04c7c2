package bookmark

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
	"github.com/heartmarshall/companions-backend/pkg/ctxutil"
)

// Add bookmarks a companion for the authenticated user and invalidates the
// cached page at path. Anonymous callers succeed without any effect.
func (s *Service) Add(ctx context.Context, companionID uuid.UUID, path string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}

	if companionID == uuid.Nil {
		return domain.NewValidationError("companion_id", "required")
	}

	err := s.bookmarks.Add(ctx, &domain.Bookmark{
		ID:          uuid.New(),
		CompanionID: companionID,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}

	s.invalidate(ctx, path)

	s.log.InfoContext(ctx, "bookmark added",
		slog.String("user_id", userID.String()),
		slog.String("companion_id", companionID.String()),
	)

	return nil
}
