package companion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
	"github.com/heartmarshall/companions-backend/pkg/ctxutil"
)

// Create inserts a new companion authored by the authenticated user,
// enforcing the creation quota of the user's subscription.
//
// The quota check and the insert are deliberately not one atomic step:
// concurrent creates by the same user can overshoot the cap by a small
// margin, which is acceptable for this feature.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Companion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	quota, err := s.resolveQuota(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !quota.Allowed {
		return nil, fmt.Errorf("companion limit reached (cap %d): %w", quota.Cap, domain.ErrForbidden)
	}

	companion, err := s.companions.Create(ctx, &domain.Companion{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(input.Name),
		Subject:         input.Subject,
		Topic:           strings.TrimSpace(input.Topic),
		Voice:           input.Voice,
		Style:           input.Style,
		DurationMinutes: input.DurationMinutes,
		AuthorID:        userID,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create companion: %w", err)
	}

	s.log.InfoContext(ctx, "companion created",
		slog.String("user_id", userID.String()),
		slog.String("companion_id", companion.ID.String()),
		slog.String("subject", companion.Subject.String()),
	)

	return companion, nil
}
