package bookmark

import (
	"context"
	"fmt"

	"github.com/heartmarshall/companions-backend/internal/domain"
	"github.com/heartmarshall/companions-backend/pkg/ctxutil"
)

// ListCompanions returns the companions the authenticated user has
// bookmarked, most recently bookmarked first. Unlike Add and Remove, reading
// bookmarks has no anonymous fallback.
func (s *Service) ListCompanions(ctx context.Context) ([]domain.Companion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	companions, err := s.bookmarks.ListCompanions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarked companions: %w", err)
	}

	return companions, nil
}
