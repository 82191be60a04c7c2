// Package companion implements the companion library use cases: search,
// creation with entitlement-based quota, and per-author listings.
package companion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

type companionRepo interface {
	Create(ctx context.Context, c *domain.Companion) (*domain.Companion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Companion, error)
	Find(ctx context.Context, filter domain.CompanionFilter) ([]domain.Companion, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Companion, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}

type subscriptionRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
}

// Service provides companion library operations.
type Service struct {
	companions    companionRepo
	subscriptions subscriptionRepo
	log           *slog.Logger

	defaultPageSize int
	maxPageSize     int
}

// NewService creates a new companion service. defaultPageSize applies when a
// search request carries no limit; maxPageSize caps what a caller may request.
func NewService(log *slog.Logger, companions companionRepo, subscriptions subscriptionRepo, defaultPageSize, maxPageSize int) *Service {
	return &Service{
		companions:      companions,
		subscriptions:   subscriptions,
		log:             log.With("service", "companion"),
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

func (s *Service) clampPageSize(limit int) int {
	if limit < 1 {
		return s.defaultPageSize
	}
	if limit > s.maxPageSize {
		return s.maxPageSize
	}
	return limit
}
