package companion

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

// Hand-written mocks in the moq shape: one Func field per method plus a
// Calls accessor.

type companionRepoMock struct {
	mu sync.Mutex

	CreateFunc        func(ctx context.Context, c *domain.Companion) (*domain.Companion, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Companion, error)
	FindFunc          func(ctx context.Context, filter domain.CompanionFilter) ([]domain.Companion, error)
	ListByAuthorFunc  func(ctx context.Context, authorID uuid.UUID) ([]domain.Companion, error)
	CountByAuthorFunc func(ctx context.Context, authorID uuid.UUID) (int, error)

	createCalls        []*domain.Companion
	findCalls          []domain.CompanionFilter
	countByAuthorCalls []uuid.UUID
}

func (m *companionRepoMock) Create(ctx context.Context, c *domain.Companion) (*domain.Companion, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *companionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Companion, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *companionRepoMock) Find(ctx context.Context, filter domain.CompanionFilter) ([]domain.Companion, error) {
	m.mu.Lock()
	m.findCalls = append(m.findCalls, filter)
	m.mu.Unlock()
	return m.FindFunc(ctx, filter)
}

func (m *companionRepoMock) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Companion, error) {
	return m.ListByAuthorFunc(ctx, authorID)
}

func (m *companionRepoMock) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	m.mu.Lock()
	m.countByAuthorCalls = append(m.countByAuthorCalls, authorID)
	m.mu.Unlock()
	return m.CountByAuthorFunc(ctx, authorID)
}

func (m *companionRepoMock) CreateCalls() []*domain.Companion {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *companionRepoMock) FindCalls() []domain.CompanionFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findCalls
}

func (m *companionRepoMock) CountByAuthorCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countByAuthorCalls
}

type subscriptionRepoMock struct {
	mu sync.Mutex

	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)

	getByUserIDCalls []uuid.UUID
}

func (m *subscriptionRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	m.mu.Lock()
	m.getByUserIDCalls = append(m.getByUserIDCalls, userID)
	m.mu.Unlock()
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *subscriptionRepoMock) GetByUserIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getByUserIDCalls
}
