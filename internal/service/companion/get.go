package companion

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

// Get returns a single companion by id.
// Store failures other than not-found are logged and surfaced as
// domain.ErrNotFound: the detail page treats every miss the same way, and the
// real cause is preserved in the log.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Companion, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	companion, err := s.companions.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "get companion failed",
				slog.String("companion_id", id.String()),
				slog.Any("error", err),
			)
		}
		return nil, domain.ErrNotFound
	}

	return companion, nil
}
