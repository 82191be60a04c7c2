package history

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

type historyRepoMock struct {
	mu sync.Mutex

	AppendFunc       func(ctx context.Context, s *domain.SessionRecord) error
	RecentFunc       func(ctx context.Context, limit int) ([]domain.Companion, error)
	RecentByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Companion, error)

	appendCalls       []*domain.SessionRecord
	recentCalls       []int
	recentByUserCalls []struct {
		UserID uuid.UUID
		Limit  int
	}
}

func (m *historyRepoMock) Append(ctx context.Context, s *domain.SessionRecord) error {
	m.mu.Lock()
	m.appendCalls = append(m.appendCalls, s)
	m.mu.Unlock()
	return m.AppendFunc(ctx, s)
}

func (m *historyRepoMock) Recent(ctx context.Context, limit int) ([]domain.Companion, error) {
	m.mu.Lock()
	m.recentCalls = append(m.recentCalls, limit)
	m.mu.Unlock()
	return m.RecentFunc(ctx, limit)
}

func (m *historyRepoMock) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Companion, error) {
	m.mu.Lock()
	m.recentByUserCalls = append(m.recentByUserCalls, struct {
		UserID uuid.UUID
		Limit  int
	}{userID, limit})
	m.mu.Unlock()
	return m.RecentByUserFunc(ctx, userID, limit)
}

func (m *historyRepoMock) AppendCalls() []*domain.SessionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendCalls
}

func (m *historyRepoMock) RecentCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recentCalls
}

func (m *historyRepoMock) RecentByUserCalls() []struct {
	UserID uuid.UUID
	Limit  int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recentByUserCalls
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
