package bookmark

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

type bookmarkRepoMock struct {
	mu sync.Mutex

	AddFunc            func(ctx context.Context, b *domain.Bookmark) error
	RemoveFunc         func(ctx context.Context, companionID, userID uuid.UUID) error
	ListCompanionsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Companion, error)

	addCalls    []*domain.Bookmark
	removeCalls []struct{ CompanionID, UserID uuid.UUID }
}

func (m *bookmarkRepoMock) Add(ctx context.Context, b *domain.Bookmark) error {
	m.mu.Lock()
	m.addCalls = append(m.addCalls, b)
	m.mu.Unlock()
	return m.AddFunc(ctx, b)
}

func (m *bookmarkRepoMock) Remove(ctx context.Context, companionID, userID uuid.UUID) error {
	m.mu.Lock()
	m.removeCalls = append(m.removeCalls, struct{ CompanionID, UserID uuid.UUID }{companionID, userID})
	m.mu.Unlock()
	return m.RemoveFunc(ctx, companionID, userID)
}

func (m *bookmarkRepoMock) ListCompanions(ctx context.Context, userID uuid.UUID) ([]domain.Companion, error) {
	return m.ListCompanionsFunc(ctx, userID)
}

func (m *bookmarkRepoMock) AddCalls() []*domain.Bookmark {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addCalls
}

func (m *bookmarkRepoMock) RemoveCalls() []struct{ CompanionID, UserID uuid.UUID } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeCalls
}

type cacheInvalidatorMock struct {
	mu sync.Mutex

	InvalidateFunc func(ctx context.Context, path string) error

	invalidateCalls []string
}

func (m *cacheInvalidatorMock) Invalidate(ctx context.Context, path string) error {
	m.mu.Lock()
	m.invalidateCalls = append(m.invalidateCalls, path)
	m.mu.Unlock()
	return m.InvalidateFunc(ctx, path)
}

func (m *cacheInvalidatorMock) InvalidateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.invalidateCalls
}
