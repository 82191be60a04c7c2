package companion

import (
	"context"
	"fmt"

	"github.com/heartmarshall/companions-backend/internal/domain"
	"github.com/heartmarshall/companions-backend/pkg/ctxutil"
)

// ListByAuthor returns the companions authored by the authenticated user,
// newest first.
func (s *Service) ListByAuthor(ctx context.Context) ([]domain.Companion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	companions, err := s.companions.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list companions by author: %w", err)
	}

	return companions, nil
}
