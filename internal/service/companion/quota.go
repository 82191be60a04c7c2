package companion

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
	"github.com/heartmarshall/companions-backend/pkg/ctxutil"
)

// Quota describes the caller's companion creation allowance.
type Quota struct {
	Allowed   bool
	Unlimited bool
	Cap       int
	Used      int
}

// CanCreate reports whether the authenticated user may create another
// companion under their current subscription.
func (s *Service) CanCreate(ctx context.Context) (Quota, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Quota{}, domain.ErrUnauthorized
	}

	return s.resolveQuota(ctx, userID)
}

// resolveQuota loads the subscription and the current companion count and
// applies the entitlement ladder. A missing subscription row is a valid
// zero-quota state. Any store error propagates: an undeterminable quota is
// never an allow.
func (s *Service) resolveQuota(ctx context.Context, userID uuid.UUID) (Quota, error) {
	sub, err := s.subscriptions.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		sub = &domain.Subscription{UserID: userID}
	case err != nil:
		return Quota{}, fmt.Errorf("load subscription: %w", err)
	}

	capacity, unlimited := sub.CreationCap()

	used, err := s.companions.CountByAuthor(ctx, userID)
	if err != nil {
		return Quota{}, fmt.Errorf("count companions: %w", err)
	}

	if unlimited {
		return Quota{Allowed: true, Unlimited: true, Used: used}, nil
	}

	return Quota{
		Allowed: used < capacity,
		Cap:     capacity,
		Used:    used,
	}, nil
}
