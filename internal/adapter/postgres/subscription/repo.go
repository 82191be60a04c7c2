// Package subscription implements the subscription repository using PostgreSQL.
package subscription

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/companions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/companions-backend/internal/domain"
)

// Repo provides subscription lookups backed by PostgreSQL.
// Subscription rows are written by the billing sync job, not by this service.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByUserIDSQL = `
SELECT user_id, plan, features, updated_at
FROM subscriptions
WHERE user_id = $1`

// GetByUserID returns the user's subscription state.
// Returns domain.ErrNotFound when the user has no subscription row.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		sub      domain.Subscription
		plan     string
		features []string
	)

	err := querier.QueryRow(ctx, getByUserIDSQL, userID).
		Scan(&sub.UserID, &plan, &features, &sub.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "subscription", userID)
	}

	sub.Plan = domain.Plan(plan)
	sub.Features = make([]domain.Feature, 0, len(features))
	for _, f := range features {
		sub.Features = append(sub.Features, domain.Feature(f))
	}

	return &sub, nil
}
