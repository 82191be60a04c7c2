package history

import (
	"context"
	"fmt"

	"github.com/heartmarshall/companions-backend/internal/domain"
	"github.com/heartmarshall/companions-backend/pkg/ctxutil"
)

// Recent returns the companions from the newest sessions across all users,
// one entry per session, newest first. Open to anonymous callers.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Companion, error) {
	companions, err := s.history.Recent(ctx, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}

	return companions, nil
}

// RecentByUser returns the companions from the authenticated user's newest
// sessions, one entry per session, newest first.
func (s *Service) RecentByUser(ctx context.Context, limit int) ([]domain.Companion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	companions, err := s.history.RecentByUser(ctx, userID, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent sessions by user: %w", err)
	}

	return companions, nil
}
