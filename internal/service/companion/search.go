package companion

import (
	"context"
	"fmt"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

// Search returns one page of the companion library matching the input terms.
// Works for anonymous callers; identity plays no role in visibility.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.Companion, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	companions, err := s.companions.Find(ctx, domain.CompanionFilter{
		Subject: input.Subject,
		Topic:   input.Topic,
		Page:    page,
		Limit:   s.clampPageSize(input.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("search companions: %w", err)
	}

	return companions, nil
}
