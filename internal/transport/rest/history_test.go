package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

type historyServiceMock struct {
	AppendFunc       func(ctx context.Context, companionID uuid.UUID) error
	RecentFunc       func(ctx context.Context, limit int) ([]domain.Companion, error)
	RecentByUserFunc func(ctx context.Context, limit int) ([]domain.Companion, error)
}

func (m *historyServiceMock) Append(ctx context.Context, companionID uuid.UUID) error {
	return m.AppendFunc(ctx, companionID)
}

func (m *historyServiceMock) Recent(ctx context.Context, limit int) ([]domain.Companion, error) {
	return m.RecentFunc(ctx, limit)
}

func (m *historyServiceMock) RecentByUser(ctx context.Context, limit int) ([]domain.Companion, error) {
	return m.RecentByUserFunc(ctx, limit)
}

func TestHistoryHandler_Append(t *testing.T) {
	t.Parallel()

	companionID := uuid.New()
	var gotID uuid.UUID

	svc := &historyServiceMock{
		AppendFunc: func(ctx context.Context, id uuid.UUID) error {
			gotID = id
			return nil
		},
	}

	h := NewHistoryHandler(svc, testLogger())
	req := httptest.NewRequest(http.MethodPost, "/companions/"+companionID.String()+"/sessions", nil)
	req.SetPathValue("id", companionID.String())
	rec := httptest.NewRecorder()

	h.Append(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, companionID, gotID)
}

func TestHistoryHandler_Append_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := &historyServiceMock{
		AppendFunc: func(ctx context.Context, id uuid.UUID) error {
			return domain.ErrUnauthorized
		},
	}

	h := NewHistoryHandler(svc, testLogger())
	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/companions/"+id+"/sessions", nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	h.Append(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHistoryHandler_Recent_PassesLimit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	svc := &historyServiceMock{
		RecentFunc: func(ctx context.Context, limit int) ([]domain.Companion, error) {
			gotLimit = limit
			return []domain.Companion{sampleCompanion()}, nil
		},
	}

	h := NewHistoryHandler(svc, testLogger())
	req := httptest.NewRequest(http.MethodGet, "/sessions/recent?limit=3", nil)
	rec := httptest.NewRecorder()

	h.Recent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, gotLimit)
}

func TestHistoryHandler_Mine(t *testing.T) {
	t.Parallel()

	svc := &historyServiceMock{
		RecentByUserFunc: func(ctx context.Context, limit int) ([]domain.Companion, error) {
			return []domain.Companion{sampleCompanion()}, nil
		},
	}

	h := NewHistoryHandler(svc, testLogger())
	req := httptest.NewRequest(http.MethodGet, "/me/sessions", nil)
	rec := httptest.NewRecorder()

	h.Mine(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "companions")
}
